// Package usecase defines the food request use cases.
package usecase

import (
	"context"

	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
)

// FoodRequestRepository defines the interface for FoodRequest persistence operations.
type FoodRequestRepository interface {
	Create(ctx context.Context, request *requestDomain.FoodRequest) error
	ListByUser(ctx context.Context, userEmail string) ([]*requestDomain.FoodRequest, error)
}

// FoodRequestUseCase defines the interface for food request business logic.
type FoodRequestUseCase interface {
	// Create stores a request. An absent RequestDate is stamped with the current time.
	Create(ctx context.Context, request *requestDomain.FoodRequest) error
	// ListByUser returns the requests of an already authorized owner.
	ListByUser(ctx context.Context, userEmail string) ([]*requestDomain.FoodRequest, error)
}
