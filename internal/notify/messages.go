package notify

import (
	"encoding/json"
	"time"

	"hisab/internal/core"
	"hisab/internal/ledger"
)

// ChangeMessage tells the mirror worker that a ledger changed.
// Deliberately lightweight: the worker re-reads the full ledger state
// from storage, so a lost update is healed by the next message.
type ChangeMessage struct {
	Category      core.Category   `json:"category"`
	Op            ledger.ChangeOp `json:"op"`
	TransactionID int64           `json:"transaction_id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

func NewChangeMessage(ch ledger.Change) *ChangeMessage {
	return &ChangeMessage{
		Category:      ch.Category,
		Op:            ch.Op,
		TransactionID: ch.TransactionID,
		Timestamp:     time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
