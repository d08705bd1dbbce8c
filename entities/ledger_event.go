package entities

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEvent records a single registry mutation.
type LedgerEvent struct {
	TxID    uuid.UUID      `json:"tx_id"`
	Kind    string         `json:"kind"` // batch_created, batch_transferred, batch_status_updated
	BatchID string         `json:"batch_id"`
	Actor   string         `json:"actor"`
	At      time.Time      `json:"at"`
	Details map[string]any `json:"details,omitempty"`
}
