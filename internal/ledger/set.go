package ledger

import "hisab/internal/core"

// Set holds the two category ledgers an application works with.
type Set struct {
	Personal *Ledger
	Business *Ledger
}

func (s *Set) Get(category core.Category) (*Ledger, bool) {
	switch category {
	case core.CategoryPersonal:
		return s.Personal, true
	case core.CategoryBusiness:
		return s.Business, true
	}
	return nil, false
}

// Compare produces the side-by-side report over both ledgers' current
// transactions.
func (s *Set) Compare() core.ComparisonReport {
	return core.Compare(
		core.CategoryPersonal, s.Personal.txns,
		core.CategoryBusiness, s.Business.txns,
	)
}
