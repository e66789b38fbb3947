// Package ledger implements the transaction ledger: one instance per
// category owning an ordered transaction sequence, with every mutating
// command persisting the full resulting state before returning.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hisab/internal/core"
	"hisab/internal/export"
	applog "hisab/internal/log"
	"hisab/internal/storage"
)

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrNotConfirmed = errors.New("operation not confirmed")
	ErrEmptyLedger  = errors.New("no transactions to export")
	ErrCorruptState = errors.New("persisted ledger state unreadable")
)

// ChangeOp names the mutation that triggered a change notification.
type ChangeOp string

const (
	OpCreate ChangeOp = "create"
	OpEdit   ChangeOp = "edit"
	OpDelete ChangeOp = "delete"
	OpClear  ChangeOp = "clear"
)

// Change describes one successful mutation. TransactionID is zero for
// clear-all.
type Change struct {
	Category      core.Category
	Op            ChangeOp
	TransactionID int64
}

// ChangeNotifier is the observation port: the ledger calls it after
// each successful mutation. Notifier failures are logged, never
// propagated to the caller, since the mutation already happened.
type ChangeNotifier interface {
	LedgerChanged(ctx context.Context, ch Change) error
}

// Ledger owns the ordered transaction sequence for one category and is
// the sole writer of its persisted state. Operations are synchronous;
// there is no internal locking because the model is single-writer.
type Ledger struct {
	category  core.Category
	store     storage.Store
	notifiers []ChangeNotifier

	txns   []core.Transaction
	lastID int64
}

// Open constructs the ledger for a category by loading its persisted
// state. A missing key yields an empty ledger. A malformed value also
// yields an empty, fully usable ledger, with ErrCorruptState returned
// so the caller may log the data loss and continue.
func Open(ctx context.Context, category core.Category, store storage.Store, notifiers ...ChangeNotifier) (*Ledger, error) {
	if !category.IsValid() {
		return nil, core.ErrInvalidCategory
	}

	l := &Ledger{
		category:  category,
		store:     store,
		notifiers: notifiers,
	}

	value, ok, err := store.Get(ctx, category.StorageKey())
	if err != nil {
		return nil, fmt.Errorf("load ledger %s: %w", category, err)
	}
	if !ok {
		return l, nil
	}

	txns, err := decodeTransactions(value)
	if err != nil {
		slog.WarnContext(ctx, "Persisted ledger state unreadable, starting empty",
			applog.FieldCategory, category,
			applog.FieldError, err)
		return l, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	l.txns = txns
	for _, t := range txns {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
	return l, nil
}

func (l *Ledger) Category() core.Category {
	return l.category
}

// Transactions returns a copy of the sequence in insertion order.
func (l *Ledger) Transactions() []core.Transaction {
	out := make([]core.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

func (l *Ledger) Count() int {
	return len(l.txns)
}

// Statistics recomputes derived totals from the current sequence.
// No caching: at user-entered data scale correctness wins over speed.
func (l *Ledger) Statistics() core.Statistics {
	return core.Summarize(l.txns)
}

// Create validates the input, appends a new transaction stamped with
// today's date and a fresh id, persists, and notifies observers.
func (l *Ledger) Create(ctx context.Context, description, amount string, kind core.Kind) (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{
		ID:          l.nextID(),
		Description: strings.TrimSpace(description),
		Amount:      core.Money{Cents: cents},
		Kind:        kind,
		Date:        core.Today(),
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	l.txns = append(l.txns, t)
	if err := l.persist(ctx); err != nil {
		l.txns = l.txns[:len(l.txns)-1]
		return core.Transaction{}, err
	}

	l.notify(ctx, OpCreate, t.ID)
	return t, nil
}

// Edit updates description and amount of an existing transaction in
// place. Kind and date never change through an edit.
func (l *Ledger) Edit(ctx context.Context, id int64, description, amount string) (core.Transaction, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return core.Transaction{}, ErrNotFound
	}

	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Transaction{}, err
	}

	updated := l.txns[idx]
	updated.Description = strings.TrimSpace(description)
	updated.Amount = core.Money{Cents: cents}
	if err := updated.Validate(); err != nil {
		return core.Transaction{}, err
	}

	previous := l.txns[idx]
	l.txns[idx] = updated
	if err := l.persist(ctx); err != nil {
		l.txns[idx] = previous
		return core.Transaction{}, err
	}

	l.notify(ctx, OpEdit, id)
	return updated, nil
}

// Delete removes the transaction with the given id. The operation is
// irreversible, so the caller must have obtained confirmation; an
// unconfirmed call changes nothing. A second delete of the same id
// reports ErrNotFound without altering statistics.
func (l *Ledger) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	idx := l.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	removed := l.txns[idx]
	l.txns = append(l.txns[:idx], l.txns[idx+1:]...)
	if err := l.persist(ctx); err != nil {
		l.txns = append(l.txns[:idx], append([]core.Transaction{removed}, l.txns[idx:]...)...)
		return err
	}

	l.notify(ctx, OpDelete, id)
	return nil
}

// ClearAll empties the sequence and persists the empty state. Like
// Delete it trusts that confirmation already happened upstream.
func (l *Ledger) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	previous := l.txns
	l.txns = nil
	if err := l.persist(ctx); err != nil {
		l.txns = previous
		return err
	}

	l.notify(ctx, OpClear, 0)
	return nil
}

// Export renders the CSV summary report and its download filename.
func (l *Ledger) Export(now time.Time) (filename, content string, err error) {
	if len(l.txns) == 0 {
		return "", "", ErrEmptyLedger
	}
	return export.Filename(l.category, now), export.Report(l.category, l.txns), nil
}

func (l *Ledger) indexOf(id int64) int {
	for i, t := range l.txns {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID synthesizes a time-of-creation id, bumped past the previous
// one so ids stay unique even within the same millisecond.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) persist(ctx context.Context) error {
	value, err := encodeTransactions(l.txns)
	if err != nil {
		return fmt.Errorf("encode ledger %s: %w", l.category, err)
	}
	if err := l.store.Set(ctx, l.category.StorageKey(), value); err != nil {
		return fmt.Errorf("persist ledger %s: %w", l.category, err)
	}
	return nil
}

func (l *Ledger) notify(ctx context.Context, op ChangeOp, id int64) {
	ch := Change{Category: l.category, Op: op, TransactionID: id}
	for _, n := range l.notifiers {
		if err := n.LedgerChanged(ctx, ch); err != nil {
			slog.ErrorContext(ctx, "Change notification failed",
				applog.FieldCategory, l.category,
				applog.FieldOperation, op,
				applog.FieldTransaction, id,
				applog.FieldError, err)
		}
	}
}
