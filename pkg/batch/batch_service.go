package batch

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/insight"
	"FarmToFork-Backend/pkg/ledger"
	"context"
	"time"
)

type (
	BatchService interface {
		CreateBatch(ctx context.Context, req domain.CreateBatchRequest, farmer entities.User) (domain.BatchResponse, error)
		GetBatches(ctx context.Context, filter domain.BatchFilter) ([]domain.BatchResponse, error)
		GetBatchByID(ctx context.Context, id string) (domain.BatchResponse, error)
		TransferBatch(ctx context.Context, id string, req domain.TransferBatchRequest, actor entities.User) (domain.BatchResponse, error)
		UpdateBatchStatus(ctx context.Context, id string, req domain.UpdateBatchStatusRequest, actor entities.User) (domain.BatchResponse, error)
		GetBatchInsights(ctx context.Context, id string) (domain.MLInsights, error)
	}

	batchService struct {
		batchRepository BatchRepository
		ledgerService   ledger.LedgerService
		insightService  insight.InsightService
	}
)

func NewBatchService(batchRepository BatchRepository, ledgerService ledger.LedgerService, insightService insight.InsightService) BatchService {
	return &batchService{
		batchRepository: batchRepository,
		ledgerService:   ledgerService,
		insightService:  insightService,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, req domain.CreateBatchRequest, farmer entities.User) (domain.BatchResponse, error) {
	if _, err := time.Parse(domain.HarvestDateLayout, req.HarvestDate); err != nil {
		return domain.BatchResponse{}, domain.ErrInvalidHarvestDate
	}

	created := s.batchRepository.AddBatch(ctx, entities.ProduceBatch{
		CropType:     req.CropType,
		HarvestDate:  req.HarvestDate,
		Quantity:     req.Quantity,
		Price:        req.Price,
		FarmerID:     farmer.ID,
		FarmerName:   farmer.Name,
		Status:       domain.StatusHarvested,
		CurrentOwner: farmer.Name,
		Location:     req.Location,
	})

	s.ledgerService.Record(ctx, ledger.KindBatchCreated, created.ID, farmer.Name, map[string]any{
		"crop_type": created.CropType,
		"quantity":  created.Quantity,
		"price":     created.Price,
	})

	return ToBatchResponse(created), nil
}

func (s *batchService) GetBatches(ctx context.Context, filter domain.BatchFilter) ([]domain.BatchResponse, error) {
	batches := s.batchRepository.GetBatches(ctx, filter)

	response := make([]domain.BatchResponse, 0, len(batches))
	for _, b := range batches {
		response = append(response, ToBatchResponse(b))
	}
	return response, nil
}

func (s *batchService) GetBatchByID(ctx context.Context, id string) (domain.BatchResponse, error) {
	b, ok := s.batchRepository.GetBatchByID(ctx, id)
	if !ok {
		return domain.BatchResponse{}, domain.ErrBatchNotFound
	}
	return ToBatchResponse(b), nil
}

func (s *batchService) TransferBatch(ctx context.Context, id string, req domain.TransferBatchRequest, actor entities.User) (domain.BatchResponse, error) {
	handoff := Handoff{
		To:       req.To,
		Location: req.Location,
	}

	switch req.ToRole {
	case "":
	case domain.RoleDistributor:
		handoff.Status = domain.StatusDistributed
	case domain.RoleRetailer:
		handoff.Status = domain.StatusRetail
	default:
		return domain.BatchResponse{}, domain.ErrInvalidTransferRole
	}

	updated, ok := s.batchRepository.TransferBatch(ctx, id, handoff)
	if !ok {
		return domain.BatchResponse{}, domain.ErrBatchNotFound
	}

	last := updated.Transfers[len(updated.Transfers)-1]
	s.ledgerService.Record(ctx, ledger.KindBatchTransferred, updated.ID, actor.Name, map[string]any{
		"transfer_id": last.ID,
		"from":        last.From,
		"to":          last.To,
		"location":    last.Location,
		"status":      updated.Status,
	})

	return ToBatchResponse(updated), nil
}

func (s *batchService) UpdateBatchStatus(ctx context.Context, id string, req domain.UpdateBatchStatusRequest, actor entities.User) (domain.BatchResponse, error) {
	if !isKnownStatus(req.Status) {
		return domain.BatchResponse{}, domain.ErrInvalidBatchStatus
	}

	updated, previous, ok := s.batchRepository.UpdateBatchStatus(ctx, id, req.Status)
	if !ok {
		return domain.BatchResponse{}, domain.ErrBatchNotFound
	}

	s.ledgerService.Record(ctx, ledger.KindBatchStatusUpdated, updated.ID, actor.Name, map[string]any{
		"from_status": previous,
		"to_status":   updated.Status,
	})

	return ToBatchResponse(updated), nil
}

// GetBatchInsights recomputes insights from the current registry record on every call.
func (s *batchService) GetBatchInsights(ctx context.Context, id string) (domain.MLInsights, error) {
	b, ok := s.batchRepository.GetBatchByID(ctx, id)
	if !ok {
		return domain.MLInsights{}, domain.ErrBatchNotFound
	}
	return s.insightService.Generate(b), nil
}

func ToBatchResponse(b entities.ProduceBatch) domain.BatchResponse {
	transfers := make([]domain.TransferResponse, 0, len(b.Transfers))
	for _, t := range b.Transfers {
		transfers = append(transfers, domain.TransferResponse{
			ID:        t.ID,
			From:      t.From,
			To:        t.To,
			Timestamp: t.Timestamp,
			Location:  t.Location,
			Status:    t.Status,
		})
	}

	return domain.BatchResponse{
		ID:           b.ID,
		CropType:     b.CropType,
		HarvestDate:  b.HarvestDate,
		Quantity:     b.Quantity,
		Price:        b.Price,
		FarmerID:     b.FarmerID,
		FarmerName:   b.FarmerName,
		Status:       b.Status,
		CurrentOwner: b.CurrentOwner,
		Location:     b.Location,
		Transfers:    transfers,
	}
}

func isKnownStatus(status string) bool {
	switch status {
	case domain.StatusHarvested, domain.StatusDistributed, domain.StatusRetail, domain.StatusSold:
		return true
	}
	return false
}
