package seed

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/user"
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

type demoBatch struct {
	cropType  string
	ageDays   int
	quantity  float64
	price     float64
	location  string
	transfers []domain.TransferBatchRequest
}

var demoBatches = []demoBatch{
	{
		cropType: "Organic Tomatoes",
		ageDays:  3,
		quantity: 500,
		price:    45,
		location: "Punjab, India",
		transfers: []domain.TransferBatchRequest{
			{To: "Priya Logistics", Location: "Delhi Distribution Center", ToRole: domain.RoleDistributor},
			{To: "FreshMart Retail", Location: "FreshMart Store, Delhi", ToRole: domain.RoleRetailer},
		},
	},
	{
		cropType: "Fresh Spinach",
		ageDays:  1,
		quantity: 200,
		price:    30,
		location: "Haryana, India",
		transfers: []domain.TransferBatchRequest{
			{To: "Priya Logistics", Location: "Gurgaon Hub", ToRole: domain.RoleDistributor},
		},
	},
	{
		cropType: "Sweet Corn",
		ageDays:  10,
		quantity: 750,
		price:    25,
		location: "Maharashtra, India",
	},
}

// Run fills an empty registry with the demo batches, owned by the directory's first farmer.
// It does nothing when the registry already holds batches.
func Run(ctx context.Context, repo batch.BatchRepository, batchService batch.BatchService, users user.UserRepository, now time.Time) error {
	if repo.Count(ctx) > 0 {
		return nil
	}

	farmer, distributor, retailer, err := demoActors(ctx, users)
	if err != nil {
		return err
	}
	actors := map[string]entities.User{
		domain.RoleDistributor: distributor,
		domain.RoleRetailer:    retailer,
	}

	for _, d := range demoBatches {
		created, err := batchService.CreateBatch(ctx, domain.CreateBatchRequest{
			CropType:    d.cropType,
			HarvestDate: now.AddDate(0, 0, -d.ageDays).Format(domain.HarvestDateLayout),
			Quantity:    d.quantity,
			Price:       d.price,
			Location:    d.location,
		}, farmer)
		if err != nil {
			return eris.Wrapf(err, "seed: create %s", d.cropType)
		}

		// each handoff is made by whoever currently holds the batch
		holder := farmer
		for _, t := range d.transfers {
			if _, err := batchService.TransferBatch(ctx, created.ID, t, holder); err != nil {
				return eris.Wrapf(err, "seed: transfer %s", created.ID)
			}
			holder = actors[t.ToRole]
		}
	}

	zap.L().Info("seed: demo batches loaded", zap.Int("count", len(demoBatches)))
	return nil
}

func demoActors(ctx context.Context, users user.UserRepository) (farmer, distributor, retailer entities.User, err error) {
	for _, u := range users.GetUsers(ctx) {
		switch u.Role {
		case domain.RoleFarmer:
			if farmer.ID == "" {
				farmer = u
			}
		case domain.RoleDistributor:
			if distributor.ID == "" {
				distributor = u
			}
		case domain.RoleRetailer:
			if retailer.ID == "" {
				retailer = u
			}
		}
	}
	if farmer.ID == "" {
		return farmer, distributor, retailer, eris.New("seed: directory has no farmer account")
	}
	return farmer, distributor, retailer, nil
}
