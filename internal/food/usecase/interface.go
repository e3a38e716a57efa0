// Package usecase defines the food listing use cases and the repository contract they
// depend on.
package usecase

import (
	"context"

	foodDomain "github.com/foodshare/server/internal/food/domain"
)

// FoodRepository defines the interface for Food persistence operations.
type FoodRepository interface {
	List(ctx context.Context, filter foodDomain.ListFilter) ([]*foodDomain.Food, error)
	ListByDonor(ctx context.Context, donorEmail string) ([]*foodDomain.Food, error)
	Get(ctx context.Context, id string) (*foodDomain.Food, error)
	Create(ctx context.Context, food *foodDomain.Food) error
	Update(ctx context.Context, id string, update *foodDomain.FoodUpdate) (*foodDomain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error)
}

// FoodUseCase defines the interface for food listing business logic.
type FoodUseCase interface {
	// List returns the public catalogue: available listings only.
	List(ctx context.Context, filter foodDomain.ListFilter) ([]*foodDomain.Food, error)
	// ListByDonor returns the listings of an already authorized owner.
	ListByDonor(ctx context.Context, donorEmail string) ([]*foodDomain.Food, error)
	Get(ctx context.Context, id string) (*foodDomain.Food, error)
	// Create stores a new listing. Status is always reset to available.
	Create(ctx context.Context, food *foodDomain.Food) error
	Update(ctx context.Context, id string, update *foodDomain.FoodUpdate) (*foodDomain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error)
}
