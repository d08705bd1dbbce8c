package user

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"context"
	"strings"
)

// demoDirectory is the fixed set of accounts the login screen matches against.
var demoDirectory = []entities.User{
	{ID: "1", Name: "Rajesh Kumar", Email: "farmer@demo.com", Role: domain.RoleFarmer},
	{ID: "2", Name: "Priya Logistics", Email: "distributor@demo.com", Role: domain.RoleDistributor},
	{ID: "3", Name: "Anita Sharma", Email: "consumer@demo.com", Role: domain.RoleConsumer},
	{ID: "4", Name: "FreshMart Retail", Email: "retailer@demo.com", Role: domain.RoleRetailer},
	{ID: "5", Name: "Food Safety Authority", Email: "regulator@demo.com", Role: domain.RoleRegulator},
}

type (
	UserRepository interface {
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUsers(ctx context.Context) []entities.User
	}

	userRepository struct {
		users []entities.User
	}
)

// NewUserRepository serves the given accounts, or the demo directory when none are given.
func NewUserRepository(users ...entities.User) UserRepository {
	if len(users) == 0 {
		users = demoDirectory
	}
	dir := make([]entities.User, len(users))
	copy(dir, users)
	return &userRepository{users: dir}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetUsers(ctx context.Context) []entities.User {
	out := make([]entities.User, len(r.users))
	copy(out, r.users)
	return out
}
