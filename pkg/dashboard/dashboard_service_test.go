package dashboard

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/insight"
	"FarmToFork-Backend/pkg/ledger"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type constRandom float64

func (r constRandom) Float64() float64 { return float64(r) }

var (
	testNow = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	farmer    = entities.User{ID: "1", Name: "Rajesh Kumar", Role: domain.RoleFarmer}
	regulator = entities.User{ID: "5", Name: "Food Safety Authority", Role: domain.RoleRegulator}
)

// newFixture builds a registry with:
// BTH001 harvested (farmer 1), BTH002 distributed (farmer 1), BTH003 retail (farmer 7, large and overpriced),
// BTH004 sold (farmer 1).
func newFixture(t *testing.T) DashboardService {
	t.Helper()
	ctx := context.Background()
	clock := func() time.Time { return testNow }

	repo := batch.NewBatchRepository(clock)
	ledgerService := ledger.NewLedgerService(zap.NewNop(), 50, clock)
	insightService := insight.NewInsightService(constRandom(0.5), clock)
	svc := batch.NewBatchService(repo, ledgerService, insightService)

	other := entities.User{ID: "7", Name: "Other Farmer", Role: domain.RoleFarmer}
	reqs := []struct {
		owner entities.User
		req   domain.CreateBatchRequest
	}{
		{farmer, domain.CreateBatchRequest{CropType: "Sweet Corn", HarvestDate: "2024-01-18", Quantity: 100, Price: 20, Location: "Nashik"}},
		{farmer, domain.CreateBatchRequest{CropType: "Fresh Spinach", HarvestDate: "2024-01-10", Quantity: 50, Price: 30.5, Location: "Haryana"}},
		{other, domain.CreateBatchRequest{CropType: "Sweet Corn", HarvestDate: "2023-12-01", Quantity: 900, Price: 60, Location: "Bihar"}},
		{farmer, domain.CreateBatchRequest{CropType: "Red Onions", HarvestDate: "2024-01-19", Quantity: 10, Price: 15, Location: "Nashik"}},
	}
	for _, r := range reqs {
		_, err := svc.CreateBatch(ctx, r.req, r.owner)
		require.NoError(t, err)
	}

	_, err := svc.TransferBatch(ctx, "BTH002", domain.TransferBatchRequest{To: "Priya Logistics", Location: "Delhi"}, farmer)
	require.NoError(t, err)
	_, err = svc.TransferBatch(ctx, "BTH003", domain.TransferBatchRequest{To: "FreshMart Retail", Location: "Delhi"}, other)
	require.NoError(t, err)
	_, err = svc.UpdateBatchStatus(ctx, "BTH004", domain.UpdateBatchStatusRequest{Status: domain.StatusSold}, regulator)
	require.NoError(t, err)

	return NewDashboardService(repo, insightService, ledgerService, clock)
}

func ids(summaries []domain.BatchSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func TestGetDashboard_ByRole(t *testing.T) {
	svc := newFixture(t)

	tests := []struct {
		user      entities.User
		batches   []string
		available []string
	}{
		{user: farmer, batches: []string{"BTH001", "BTH002", "BTH004"}},
		{user: entities.User{ID: "2", Role: domain.RoleDistributor}, batches: []string{"BTH002"}, available: []string{"BTH001"}},
		{user: entities.User{ID: "4", Role: domain.RoleRetailer}, batches: []string{"BTH003", "BTH004"}},
		{user: entities.User{ID: "3", Role: domain.RoleConsumer}, batches: []string{"BTH003"}},
		{user: regulator, batches: []string{"BTH001", "BTH002", "BTH003", "BTH004"}},
	}

	for _, tt := range tests {
		t.Run(tt.user.Role, func(t *testing.T) {
			res, err := svc.GetDashboard(context.Background(), tt.user)
			require.NoError(t, err)

			assert.Equal(t, tt.user.Role, res.Role)
			assert.Equal(t, tt.batches, ids(res.Batches))
			if tt.available != nil {
				assert.Equal(t, tt.available, ids(res.Available))
			} else {
				assert.Nil(t, res.Available)
			}
		})
	}
}

func TestGetDashboard_FarmerStats(t *testing.T) {
	res, err := newFixture(t).GetDashboard(context.Background(), farmer)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Stats.TotalBatches)
	assert.Equal(t, 160.0, res.Stats.TotalQuantity)
	// 100*20 + 50*30.5 + 10*15
	assert.Equal(t, 3675.0, res.Stats.EstimatedValue)
	assert.Equal(t, map[string]int{
		domain.StatusHarvested:   1,
		domain.StatusDistributed: 1,
		domain.StatusRetail:      0,
		domain.StatusSold:        1,
	}, res.Stats.ByStatus)
	assert.Nil(t, res.RiskCounts)
}

func TestGetDashboard_Regulator(t *testing.T) {
	res, err := newFixture(t).GetDashboard(context.Background(), regulator)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{domain.RiskLow: 3, domain.RiskMedium: 0, domain.RiskHigh: 1}, res.RiskCounts)
	require.Len(t, res.RecentEvents, 7)
	assert.Equal(t, ledger.KindBatchStatusUpdated, res.RecentEvents[0].Kind)
	assert.Equal(t, "BTH004", res.RecentEvents[0].BatchID)

	for _, b := range res.Batches {
		if b.ID == "BTH003" {
			assert.Equal(t, domain.RiskHigh, b.RiskLevel)
			assert.Equal(t, domain.GradeC, b.QualityGrade)
		}
	}
}

func TestGetDashboard_UnknownRole(t *testing.T) {
	_, err := newFixture(t).GetDashboard(context.Background(), entities.User{ID: "9", Role: "auditor"})
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetRegulatorReport(t *testing.T) {
	report, err := newFixture(t).GetRegulatorReport(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^RPT-20240120-[0-9A-F]{8}$`), report.ReportID)
	assert.True(t, testNow.Equal(report.GeneratedAt))
	assert.Equal(t, 4, report.TotalBatches)
	assert.Equal(t, 1, report.FlaggedBatches)
	require.Len(t, report.Flagged, 1)
	assert.Equal(t, "BTH003", report.Flagged[0].ID)
	assert.Equal(t, 3, report.RiskCounts[domain.RiskLow])
}
