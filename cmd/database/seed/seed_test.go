package seed

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/insight"
	"FarmToFork-Backend/pkg/ledger"
	"FarmToFork-Backend/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRegistry() (batch.BatchRepository, batch.BatchService) {
	repo := batch.NewBatchRepository(nil)
	svc := batch.NewBatchService(repo, ledger.NewLedgerService(zap.NewNop(), 0, nil), insight.NewInsightService(nil, nil))
	return repo, svc
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	repo, svc := newRegistry()
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Run(ctx, repo, svc, user.NewUserRepository(), now))
	require.Equal(t, len(demoBatches), repo.Count(ctx))

	tomatoes, ok := repo.GetBatchByID(ctx, "BTH001")
	require.True(t, ok)
	assert.Equal(t, "Organic Tomatoes", tomatoes.CropType)
	assert.Equal(t, "2024-01-17", tomatoes.HarvestDate)
	assert.Equal(t, "FreshMart Retail", tomatoes.CurrentOwner)
	assert.Equal(t, domain.StatusRetail, tomatoes.Status)
	require.Len(t, tomatoes.Transfers, 2)
	assert.Equal(t, "Rajesh Kumar", tomatoes.Transfers[0].From)
	assert.Equal(t, "Priya Logistics", tomatoes.Transfers[1].From)

	spinach, _ := repo.GetBatchByID(ctx, "BTH002")
	assert.Equal(t, domain.StatusDistributed, spinach.Status)

	corn, _ := repo.GetBatchByID(ctx, "BTH003")
	assert.Equal(t, domain.StatusHarvested, corn.Status)
	assert.Equal(t, "1", corn.FarmerID)
}

func TestRun_SkipsPopulatedRegistry(t *testing.T) {
	ctx := context.Background()
	repo, svc := newRegistry()
	repo.AddBatch(ctx, entities.ProduceBatch{CropType: "Basmati Rice", FarmerName: "x"})

	require.NoError(t, Run(ctx, repo, svc, user.NewUserRepository(), time.Now()))
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestRun_NeedsFarmer(t *testing.T) {
	ctx := context.Background()
	repo, svc := newRegistry()
	users := user.NewUserRepository(entities.User{ID: "5", Name: "Regulator", Role: domain.RoleRegulator})

	err := Run(ctx, repo, svc, users, time.Now())
	assert.Error(t, err)
	assert.Equal(t, 0, repo.Count(ctx))
}
