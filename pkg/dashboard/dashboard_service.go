package dashboard

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/insight"
	"FarmToFork-Backend/pkg/ledger"
	"FarmToFork-Backend/pkg/user"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentEventLimit = 20

type (
	DashboardService interface {
		GetDashboard(ctx context.Context, u entities.User) (domain.DashboardResponse, error)
		GetRegulatorReport(ctx context.Context) (domain.RegulatorReport, error)
	}

	dashboardService struct {
		batchRepository batch.BatchRepository
		insightService  insight.InsightService
		ledgerService   ledger.LedgerService
		now             func() time.Time
	}
)

func NewDashboardService(batchRepository batch.BatchRepository, insightService insight.InsightService, ledgerService ledger.LedgerService, now func() time.Time) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		batchRepository: batchRepository,
		insightService:  insightService,
		ledgerService:   ledgerService,
		now:             now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, u entities.User) (domain.DashboardResponse, error) {
	res := domain.DashboardResponse{
		Role: u.Role,
		User: user.ToUserResponse(u),
	}

	var batches []entities.ProduceBatch
	switch u.Role {
	case domain.RoleFarmer:
		batches = s.batchRepository.GetBatches(ctx, domain.BatchFilter{FarmerID: u.ID})
	case domain.RoleDistributor:
		batches = s.batchRepository.GetBatches(ctx, domain.BatchFilter{Status: domain.StatusDistributed})
		pickup := s.batchRepository.GetBatches(ctx, domain.BatchFilter{Status: domain.StatusHarvested})
		res.Available = s.summarize(pickup, nil)
	case domain.RoleRetailer:
		batches = append(
			s.batchRepository.GetBatches(ctx, domain.BatchFilter{Status: domain.StatusRetail}),
			s.batchRepository.GetBatches(ctx, domain.BatchFilter{Status: domain.StatusSold})...,
		)
	case domain.RoleConsumer:
		batches = s.batchRepository.GetBatches(ctx, domain.BatchFilter{Status: domain.StatusRetail})
	case domain.RoleRegulator:
		batches = s.batchRepository.GetBatches(ctx, domain.BatchFilter{})
		res.RiskCounts = newRiskCounts()
		res.RecentEvents = s.recentEvents(ctx)
	default:
		return domain.DashboardResponse{}, domain.ErrUserNotAllowed
	}

	res.Batches = s.summarize(batches, res.RiskCounts)
	res.Stats = computeStats(batches)
	return res, nil
}

func (s *dashboardService) GetRegulatorReport(ctx context.Context) (domain.RegulatorReport, error) {
	batches := s.batchRepository.GetBatches(ctx, domain.BatchFilter{})
	counts := newRiskCounts()
	summaries := s.summarize(batches, counts)

	flagged := make([]domain.BatchSummary, 0)
	for _, sum := range summaries {
		if sum.RiskLevel != domain.RiskLow {
			flagged = append(flagged, sum)
		}
	}

	now := s.now().UTC()
	return domain.RegulatorReport{
		ReportID:       fmt.Sprintf("RPT-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8])),
		GeneratedAt:    now,
		TotalBatches:   len(batches),
		FlaggedBatches: len(flagged),
		RiskCounts:     counts,
		Flagged:        flagged,
	}, nil
}

// summarize attaches grade and risk to each batch, tallying risk levels into counts when non-nil.
func (s *dashboardService) summarize(batches []entities.ProduceBatch, counts map[string]int) []domain.BatchSummary {
	out := make([]domain.BatchSummary, 0, len(batches))
	for _, b := range batches {
		in := s.insightService.Generate(b)
		if counts != nil {
			counts[in.Fraud.RiskLevel]++
		}
		out = append(out, domain.BatchSummary{
			BatchResponse: batch.ToBatchResponse(b),
			QualityGrade:  in.Quality.Grade,
			RiskLevel:     in.Fraud.RiskLevel,
		})
	}
	return out
}

func (s *dashboardService) recentEvents(ctx context.Context) []domain.LedgerEventResponse {
	events := s.ledgerService.Recent(ctx, recentEventLimit)
	out := make([]domain.LedgerEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, domain.LedgerEventResponse{
			TxID:    e.TxID.String(),
			Kind:    e.Kind,
			BatchID: e.BatchID,
			Actor:   e.Actor,
			At:      e.At,
			Details: e.Details,
		})
	}
	return out
}

func newRiskCounts() map[string]int {
	return map[string]int{
		domain.RiskLow:    0,
		domain.RiskMedium: 0,
		domain.RiskHigh:   0,
	}
}

func computeStats(batches []entities.ProduceBatch) domain.DashboardStats {
	quantity := decimal.Zero
	value := decimal.Zero
	byStatus := map[string]int{
		domain.StatusHarvested:   0,
		domain.StatusDistributed: 0,
		domain.StatusRetail:      0,
		domain.StatusSold:        0,
	}

	for _, b := range batches {
		q := decimal.NewFromFloat(b.Quantity)
		quantity = quantity.Add(q)
		value = value.Add(q.Mul(decimal.NewFromFloat(b.Price)))
		byStatus[b.Status]++
	}

	return domain.DashboardStats{
		TotalBatches:   len(batches),
		TotalQuantity:  quantity.InexactFloat64(),
		EstimatedValue: value.Round(2).InexactFloat64(),
		ByStatus:       byStatus,
	}
}
