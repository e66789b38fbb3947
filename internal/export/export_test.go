package export

import (
	"strings"
	"testing"
	"time"

	"hisab/internal/core"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, 9, 1, 14, 30, 0, 0, time.UTC)
	got := Filename(core.CategoryPersonal, now)
	if got != "personal_transactions_2025-09-01.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
	got = Filename(core.CategoryBusiness, now)
	if got != "business_transactions_2025-09-01.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestReportSingleIncome(t *testing.T) {
	txns := []core.Transaction{{
		ID:          1,
		Description: "Salary",
		Amount:      core.Money{Cents: 100000},
		Kind:        core.KindIncome,
		Date:        core.NewDate(2025, 9, 1),
	}}

	want := "PERSONAL TRANSACTIONS SUMMARY\n" +
		"\n" +
		"INCOME TRANSACTIONS\n" +
		"Date,Description,Amount (RS)\n" +
		"01/09/2025,\"Salary\",1000.00\n" +
		",\"TOTAL INCOME\",1000.00\n" +
		"\n" +
		"EXPENSE TRANSACTIONS\n" +
		"Date,Description,Amount (RS)\n" +
		",\"TOTAL EXPENSES\",0.00\n" +
		"\n" +
		"BALANCE SUMMARY\n" +
		",\"Total Income\",1000.00\n" +
		",\"Total Expenses\",0.00\n" +
		",\"Net Profit\",1000.00\n"

	got := Report(core.CategoryPersonal, txns)
	if got != want {
		t.Fatalf("report mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestReportNetLossUsesAbsoluteBalance(t *testing.T) {
	txns := []core.Transaction{
		{ID: 1, Description: "Sales", Amount: core.Money{Cents: 50000}, Kind: core.KindIncome, Date: core.NewDate(2025, 9, 1)},
		{ID: 2, Description: "Stock", Amount: core.Money{Cents: 70000}, Kind: core.KindExpense, Date: core.NewDate(2025, 9, 2)},
	}

	got := Report(core.CategoryBusiness, txns)
	if !strings.HasPrefix(got, "BUSINESS TRANSACTIONS SUMMARY\n") {
		t.Fatalf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "01/09/2025,\"Sales\",500.00\n") {
		t.Fatalf("missing income row:\n%s", got)
	}
	if !strings.Contains(got, "02/09/2025,\"Stock\",700.00\n") {
		t.Fatalf("missing expense row:\n%s", got)
	}
	if !strings.Contains(got, ",\"Net Loss\",200.00\n") {
		t.Fatalf("expected absolute net loss row:\n%s", got)
	}
}

func TestReportPreservesInsertionOrderWithinGroups(t *testing.T) {
	txns := []core.Transaction{
		{ID: 1, Description: "First", Amount: core.Money{Cents: 100}, Kind: core.KindExpense, Date: core.NewDate(2025, 9, 1)},
		{ID: 2, Description: "Second", Amount: core.Money{Cents: 200}, Kind: core.KindIncome, Date: core.NewDate(2025, 9, 1)},
		{ID: 3, Description: "Third", Amount: core.Money{Cents: 300}, Kind: core.KindExpense, Date: core.NewDate(2025, 9, 1)},
	}

	got := Report(core.CategoryPersonal, txns)
	first := strings.Index(got, "\"First\"")
	third := strings.Index(got, "\"Third\"")
	if first == -1 || third == -1 || first > third {
		t.Fatalf("expense order not preserved:\n%s", got)
	}
}
