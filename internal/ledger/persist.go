package ledger

import (
	"encoding/json"
	"fmt"

	"hisab/internal/core"
)

// record is the persisted wire shape of one transaction. Amounts are
// stored as decimal numbers and dates as dd/mm/yyyy strings, matching
// the historical export format of this data.
type record struct {
	ID     int64   `json:"id"`
	Desc   string  `json:"desc"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Date   string  `json:"date"`
}

func encodeTransactions(txns []core.Transaction) (string, error) {
	records := make([]record, 0, len(txns))
	for _, t := range txns {
		records = append(records, record{
			ID:     t.ID,
			Desc:   t.Description,
			Amount: t.Amount.Units(),
			Type:   string(t.Kind),
			Date:   t.Date.String(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTransactions(value string) ([]core.Transaction, error) {
	var records []record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode ledger state: %w", err)
	}

	txns := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		kind, err := core.ParseKind(r.Type)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cents, err := core.CentsFromNumber(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		date, err := core.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		t := core.Transaction{
			ID:          r.ID,
			Description: r.Desc,
			Amount:      core.Money{Cents: cents},
			Kind:        kind,
			Date:        date,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}
