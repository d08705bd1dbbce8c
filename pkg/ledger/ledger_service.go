package ledger

import (
	"FarmToFork-Backend/entities"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KindBatchCreated       = "batch_created"
	KindBatchTransferred   = "batch_transferred"
	KindBatchStatusUpdated = "batch_status_updated"

	DefaultBufferSize = 200
)

type (
	// LedgerService stands in for the chain writes of the portal. Events are logged
	// and kept in a bounded ring; nothing is chained or replicated.
	LedgerService interface {
		Record(ctx context.Context, kind string, batchID string, actor string, details map[string]any) entities.LedgerEvent
		Recent(ctx context.Context, limit int) []entities.LedgerEvent
	}

	ledgerService struct {
		logger *zap.Logger
		now    func() time.Time

		mu     sync.Mutex
		events []entities.LedgerEvent
		next   int
		full   bool
	}
)

func NewLedgerService(logger *zap.Logger, size int, now func() time.Time) LedgerService {
	if logger == nil {
		logger = zap.L()
	}
	if size <= 0 {
		size = DefaultBufferSize
	}
	if now == nil {
		now = time.Now
	}
	return &ledgerService{
		logger: logger.Named("ledger"),
		now:    now,
		events: make([]entities.LedgerEvent, size),
	}
}

func (s *ledgerService) Record(ctx context.Context, kind string, batchID string, actor string, details map[string]any) entities.LedgerEvent {
	event := entities.LedgerEvent{
		TxID:    uuid.New(),
		Kind:    kind,
		BatchID: batchID,
		Actor:   actor,
		At:      s.now().UTC(),
		Details: details,
	}

	s.mu.Lock()
	s.events[s.next] = event
	s.next = (s.next + 1) % len(s.events)
	if s.next == 0 {
		s.full = true
	}
	s.mu.Unlock()

	s.logger.Info("ledger write",
		zap.String("tx_id", event.TxID.String()),
		zap.String("kind", kind),
		zap.String("batch_id", batchID),
		zap.String("actor", actor),
		zap.Any("details", details),
	)
	return event
}

// Recent returns up to limit events, newest first. A non-positive limit returns everything held.
func (s *ledgerService) Recent(ctx context.Context, limit int) []entities.LedgerEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.next
	if s.full {
		held = len(s.events)
	}
	if limit <= 0 || limit > held {
		limit = held
	}

	result := make([]entities.LedgerEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.events)) % len(s.events)
		result = append(result, s.events[idx])
	}
	return result
}
