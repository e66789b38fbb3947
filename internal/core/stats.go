package core

const (
	StatusProfit Status = "profit"
	StatusLoss   Status = "loss"
)

type (
	// Status is the derived profit/loss signal of a balance.
	Status string

	// Statistics holds derived totals. Never persisted; always
	// recomputed from the underlying transactions on demand.
	Statistics struct {
		Count        int
		TotalIncome  Money
		TotalExpense Money
		Balance      Money
		Status       Status
	}

	// LedgerSummary labels one side of a cross-ledger comparison.
	LedgerSummary struct {
		Category Category
		Stats    Statistics
	}

	// ComparisonReport combines two ledgers' statistics. Argument order
	// matters only for labeling; the combined arithmetic is commutative.
	ComparisonReport struct {
		A        LedgerSummary
		B        LedgerSummary
		Combined Statistics
	}
)

// Summarize computes derived statistics over any transaction sequence.
// It is the single source of truth for totals: a ledger's own
// statistics and the cross-ledger comparison both go through it.
func Summarize(txns []Transaction) Statistics {
	var income, expense int64
	for _, t := range txns {
		switch t.Kind {
		case KindIncome:
			income += t.Amount.Cents
		case KindExpense:
			expense += t.Amount.Cents
		}
	}
	return newStatistics(len(txns), income, expense)
}

// Compare summarizes both sequences and their combination.
func Compare(aCat Category, a []Transaction, bCat Category, b []Transaction) ComparisonReport {
	sa := Summarize(a)
	sb := Summarize(b)
	return ComparisonReport{
		A:        LedgerSummary{Category: aCat, Stats: sa},
		B:        LedgerSummary{Category: bCat, Stats: sb},
		Combined: newStatistics(
			sa.Count+sb.Count,
			sa.TotalIncome.Cents+sb.TotalIncome.Cents,
			sa.TotalExpense.Cents+sb.TotalExpense.Cents,
		),
	}
}

func newStatistics(count int, incomeCents, expenseCents int64) Statistics {
	balance := incomeCents - expenseCents
	status := StatusProfit
	if balance < 0 {
		status = StatusLoss
	}
	return Statistics{
		Count:        count,
		TotalIncome:  Money{Cents: incomeCents},
		TotalExpense: Money{Cents: expenseCents},
		Balance:      Money{Cents: balance},
		Status:       status,
	}
}
