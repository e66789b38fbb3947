package core

import (
	"errors"
	"strings"
	"time"
)

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"

	CategoryPersonal Category = "personal"
	CategoryBusiness Category = "business"
)

type (
	// Kind distinguishes money coming in from money going out.
	// "Revenue"/"Cost" labels for business ledgers are presentation
	// aliases only and never appear in the data model.
	Kind string

	// Category identifies one of the two independent ledgers.
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one recorded income or expense event. IDs are
	// unique within a ledger; the date is stamped at creation and
	// never changes through edits.
	Transaction struct {
		ID          int64
		Description string
		Amount      Money
		Kind        Kind
		Date        Date
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidCategory  = errors.New("invalid ledger category")
)

// displayDateLayout matches the en-GB style the rest of the system
// renders and persists: day/month/year, zero padded.
const displayDateLayout = "02/01/2006"

func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

func (c Category) IsValid() bool {
	return c == CategoryPersonal || c == CategoryBusiness
}

// StorageKey returns the persistence key owned by this category's
// ledger. The two ledgers never contend for the same key.
func (c Category) StorageKey() string {
	return string(c) + "Transactions"
}

func (c Category) String() string {
	return string(c)
}

// Categories lists every ledger category in a stable order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryBusiness}
}

// ParseCategory validates a raw category string from an external caller.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ParseKind validates a raw kind string from an external caller.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Today returns the current calendar date, truncated to midnight UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a day/month/year display string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(displayDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String formats the date as day/month/year for display and persistence.
func (d Date) String() string {
	return d.Format(displayDateLayout)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Kind.IsValid() {
		return ErrInvalidKind
	}
	if t.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}
