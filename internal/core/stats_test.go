package core

import "testing"

func tx(id int64, desc string, cents int64, kind Kind) Transaction {
	return Transaction{
		ID:          id,
		Description: desc,
		Amount:      Money{Cents: cents},
		Kind:        kind,
		Date:        NewDate(2025, 1, 2),
	}
}

func TestSummarize(t *testing.T) {
	txns := []Transaction{
		tx(1, "Salary", 100000, KindIncome),
		tx(2, "Rent", 40000, KindExpense),
	}
	s := Summarize(txns)
	if s.Count != 2 {
		t.Fatalf("count: expected 2, got %d", s.Count)
	}
	if s.TotalIncome.Cents != 100000 {
		t.Fatalf("income: expected 100000, got %d", s.TotalIncome.Cents)
	}
	if s.TotalExpense.Cents != 40000 {
		t.Fatalf("expense: expected 40000, got %d", s.TotalExpense.Cents)
	}
	if s.Balance.Cents != 60000 {
		t.Fatalf("balance: expected 60000, got %d", s.Balance.Cents)
	}
	if s.Status != StatusProfit {
		t.Fatalf("expected profit, got %s", s.Status)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.TotalIncome.Cents != 0 || s.TotalExpense.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	// Zero balance counts as profit, not loss.
	if s.Status != StatusProfit {
		t.Fatalf("expected profit for zero balance, got %s", s.Status)
	}
}

func TestSummarizeLoss(t *testing.T) {
	s := Summarize([]Transaction{tx(1, "Rent", 40000, KindExpense)})
	if s.Balance.Cents != -40000 || s.Status != StatusLoss {
		t.Fatalf("expected -40000 loss, got %d %s", s.Balance.Cents, s.Status)
	}
}

func TestCompare(t *testing.T) {
	a := []Transaction{
		tx(1, "Salary", 100000, KindIncome),
		tx(2, "Rent", 40000, KindExpense),
	}
	b := []Transaction{
		tx(3, "Sales", 50000, KindIncome),
		tx(4, "Stock", 70000, KindExpense),
	}

	r := Compare(CategoryPersonal, a, CategoryBusiness, b)

	if r.A.Category != CategoryPersonal || r.B.Category != CategoryBusiness {
		t.Fatalf("labels wrong: %+v", r)
	}
	if r.A.Stats.Balance.Cents != 60000 || r.A.Stats.Status != StatusProfit {
		t.Fatalf("side A: %+v", r.A.Stats)
	}
	if r.B.Stats.Balance.Cents != -20000 || r.B.Stats.Status != StatusLoss {
		t.Fatalf("side B: %+v", r.B.Stats)
	}
	if r.Combined.Count != 4 {
		t.Fatalf("combined count: expected 4, got %d", r.Combined.Count)
	}
	if r.Combined.TotalIncome.Cents != 150000 {
		t.Fatalf("combined income: expected 150000, got %d", r.Combined.TotalIncome.Cents)
	}
	if r.Combined.TotalExpense.Cents != 110000 {
		t.Fatalf("combined expense: expected 110000, got %d", r.Combined.TotalExpense.Cents)
	}
	if r.Combined.Balance.Cents != 40000 || r.Combined.Status != StatusProfit {
		t.Fatalf("combined balance: %+v", r.Combined)
	}

	// Argument order affects labels only, not arithmetic.
	swapped := Compare(CategoryBusiness, b, CategoryPersonal, a)
	if swapped.Combined != r.Combined {
		t.Fatalf("comparison arithmetic not commutative: %+v vs %+v", swapped.Combined, r.Combined)
	}
}
