// Package worker keeps the spreadsheet mirror in sync with persisted
// ledger state.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hisab/internal/core"
	"hisab/internal/ledger"
	"hisab/internal/notify"
	"hisab/internal/storage"
)

// SheetWriter is what the mirror needs from the spreadsheet client.
type SheetWriter interface {
	ReplaceTransactions(ctx context.Context, category core.Category, txns []core.Transaction) error
}

// Mirror pushes full ledger snapshots to the spreadsheet. Change
// messages only say which category moved; the snapshot is always
// re-read from the store, so mirroring is idempotent.
type Mirror struct {
	store  storage.Store
	sheets SheetWriter
}

func NewMirror(store storage.Store, sheets SheetWriter) *Mirror {
	return &Mirror{
		store:  store,
		sheets: sheets,
	}
}

// HandleChange mirrors the category named by a change message.
func (m *Mirror) HandleChange(ctx context.Context, msg *notify.ChangeMessage) error {
	if !msg.Category.IsValid() {
		return fmt.Errorf("unknown category in change message: %q", msg.Category)
	}
	return m.syncCategory(ctx, msg.Category)
}

// ResyncAll mirrors every category. Run periodically to heal missed
// messages.
func (m *Mirror) ResyncAll(ctx context.Context) error {
	for _, category := range core.Categories() {
		if err := m.syncCategory(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirror) syncCategory(ctx context.Context, category core.Category) error {
	l, err := ledger.Open(ctx, category, m.store)
	if err != nil {
		if !errors.Is(err, ledger.ErrCorruptState) {
			return fmt.Errorf("load ledger %s: %w", category, err)
		}
		// Unreadable state mirrors as empty rather than blocking the
		// queue on a message that can never succeed.
		slog.WarnContext(ctx, "Mirroring empty snapshot over unreadable state",
			"category", category,
			"error", err)
	}

	if err := m.sheets.ReplaceTransactions(ctx, category, l.Transactions()); err != nil {
		return fmt.Errorf("mirror ledger %s: %w", category, err)
	}
	return nil
}
