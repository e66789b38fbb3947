// Package export renders a ledger's transactions as the CSV summary
// report offered for download. It is a pure function of ledger state;
// writing the result anywhere is the caller's concern.
package export

import (
	"fmt"
	"strings"
	"time"

	"hisab/internal/core"
)

// Filename returns the download name for a category's export,
// e.g. "personal_transactions_2025-09-01.csv".
func Filename(category core.Category, now time.Time) string {
	return fmt.Sprintf("%s_transactions_%s.csv", category, now.Format("2006-01-02"))
}

// Report builds the CSV summary for the given transactions. The caller
// guarantees the sequence is non-empty; both groups preserve insertion
// order.
func Report(category core.Category, txns []core.Transaction) string {
	var incomes, expenses []core.Transaction
	for _, t := range txns {
		if t.Kind == core.KindIncome {
			incomes = append(incomes, t)
		} else {
			expenses = append(expenses, t)
		}
	}
	stats := core.Summarize(txns)

	var b strings.Builder
	fmt.Fprintf(&b, "%s TRANSACTIONS SUMMARY\n\n", strings.ToUpper(string(category)))

	b.WriteString("INCOME TRANSACTIONS\n")
	b.WriteString("Date,Description,Amount (RS)\n")
	for _, t := range incomes {
		fmt.Fprintf(&b, "%s,\"%s\",%s\n", t.Date, t.Description, t.Amount)
	}
	fmt.Fprintf(&b, ",\"TOTAL INCOME\",%s\n\n", stats.TotalIncome)

	b.WriteString("EXPENSE TRANSACTIONS\n")
	b.WriteString("Date,Description,Amount (RS)\n")
	for _, t := range expenses {
		fmt.Fprintf(&b, "%s,\"%s\",%s\n", t.Date, t.Description, t.Amount)
	}
	fmt.Fprintf(&b, ",\"TOTAL EXPENSES\",%s\n\n", stats.TotalExpense)

	b.WriteString("BALANCE SUMMARY\n")
	fmt.Fprintf(&b, ",\"Total Income\",%s\n", stats.TotalIncome)
	fmt.Fprintf(&b, ",\"Total Expenses\",%s\n", stats.TotalExpense)
	label := "Net Profit"
	if stats.Status == core.StatusLoss {
		label = "Net Loss"
	}
	fmt.Fprintf(&b, ",\"%s\",%s\n", label, stats.Balance.Abs())

	return b.String()
}
