package batch

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// TimestampLayout matches the ISO 8601 form used in transfer records.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type (
	// Handoff describes a custody change. An empty Status lets the owner name decide.
	Handoff struct {
		To       string
		Location string
		Status   string
	}

	// BatchRepository is the session-wide batch registry. Lookups report misses through
	// the boolean and never return errors.
	BatchRepository interface {
		AddBatch(ctx context.Context, data entities.ProduceBatch) entities.ProduceBatch
		TransferBatch(ctx context.Context, batchID string, handoff Handoff) (entities.ProduceBatch, bool)
		GetBatchByID(ctx context.Context, id string) (entities.ProduceBatch, bool)
		UpdateBatchStatus(ctx context.Context, batchID string, status string) (updated entities.ProduceBatch, previous string, ok bool)
		GetBatches(ctx context.Context, filter domain.BatchFilter) []entities.ProduceBatch
		Count(ctx context.Context) int
	}

	batchRepository struct {
		mu    sync.RWMutex
		state registryState
		now   func() time.Time
	}
)

func NewBatchRepository(now func() time.Time) BatchRepository {
	if now == nil {
		now = time.Now
	}
	return &batchRepository{now: now}
}

func (r *batchRepository) AddBatch(ctx context.Context, data entities.ProduceBatch) entities.ProduceBatch {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, created := r.state.withBatch(data)
	r.state = next
	return created.Clone()
}

func (r *batchRepository) TransferBatch(ctx context.Context, batchID string, handoff Handoff) (entities.ProduceBatch, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, updated, ok := r.state.withTransfer(batchID, handoff, r.now())
	if !ok {
		return entities.ProduceBatch{}, false
	}
	r.state = next
	return updated.Clone(), true
}

func (r *batchRepository) GetBatchByID(ctx context.Context, id string) (entities.ProduceBatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.state.indexOf(id)
	if idx < 0 {
		return entities.ProduceBatch{}, false
	}
	return r.state.batches[idx].Clone(), true
}

// UpdateBatchStatus also reports the status the batch held just before the override.
func (r *batchRepository) UpdateBatchStatus(ctx context.Context, batchID string, status string) (entities.ProduceBatch, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.state.indexOf(batchID)
	if idx < 0 {
		return entities.ProduceBatch{}, "", false
	}
	previous := r.state.batches[idx].Status

	next, updated, _ := r.state.withStatus(batchID, status)
	r.state = next
	return updated.Clone(), previous, true
}

func (r *batchRepository) GetBatches(ctx context.Context, filter domain.BatchFilter) []entities.ProduceBatch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.ProduceBatch, 0, len(r.state.batches))
	for _, b := range r.state.batches {
		if filter.Status != "" && filter.Status != "all" && b.Status != filter.Status {
			continue
		}
		if filter.FarmerID != "" && b.FarmerID != filter.FarmerID {
			continue
		}
		if filter.Owner != "" && !strings.EqualFold(b.CurrentOwner, filter.Owner) {
			continue
		}
		result = append(result, b.Clone())
	}
	return result
}

func (r *batchRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.batches)
}

// StatusForOwner is the owner-name rule applied when a transfer carries no explicit status.
func StatusForOwner(owner string) string {
	if strings.Contains(strings.ToLower(owner), "retail") {
		return domain.StatusRetail
	}
	return domain.StatusDistributed
}

// registryState is treated as a value: every with* method returns a new state and leaves
// the receiver untouched.
type registryState struct {
	batches []entities.ProduceBatch
}

func (s registryState) indexOf(id string) int {
	for i := range s.batches {
		if s.batches[i].ID == id {
			return i
		}
	}
	return -1
}

func (s registryState) replaced(idx int, b entities.ProduceBatch) registryState {
	batches := make([]entities.ProduceBatch, len(s.batches))
	copy(batches, s.batches)
	batches[idx] = b
	return registryState{batches: batches}
}

func (s registryState) withBatch(data entities.ProduceBatch) (registryState, entities.ProduceBatch) {
	created := data
	created.ID = fmt.Sprintf("BTH%03d", len(s.batches)+1)
	created.Transfers = []entities.Transfer{}
	created.Status = domain.StatusHarvested
	created.CurrentOwner = created.FarmerName

	batches := make([]entities.ProduceBatch, len(s.batches), len(s.batches)+1)
	copy(batches, s.batches)
	batches = append(batches, created)
	return registryState{batches: batches}, created
}

func (s registryState) withTransfer(batchID string, handoff Handoff, at time.Time) (registryState, entities.ProduceBatch, bool) {
	idx := s.indexOf(batchID)
	if idx < 0 {
		return s, entities.ProduceBatch{}, false
	}

	b := s.batches[idx].Clone()
	b.Transfers = append(b.Transfers, entities.Transfer{
		ID:        fmt.Sprintf("T%d", len(b.Transfers)+1),
		From:      b.CurrentOwner,
		To:        handoff.To,
		Timestamp: at.UTC().Format(TimestampLayout),
		Location:  handoff.Location,
		Status:    domain.TransferStatusCompleted,
	})
	b.CurrentOwner = handoff.To
	if handoff.Status != "" {
		b.Status = handoff.Status
	} else {
		b.Status = StatusForOwner(handoff.To)
	}

	return s.replaced(idx, b), b, true
}

func (s registryState) withStatus(batchID string, status string) (registryState, entities.ProduceBatch, bool) {
	idx := s.indexOf(batchID)
	if idx < 0 {
		return s, entities.ProduceBatch{}, false
	}

	b := s.batches[idx].Clone()
	b.Status = status
	return s.replaced(idx, b), b, true
}
