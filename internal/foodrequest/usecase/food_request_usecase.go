package usecase

import (
	"context"
	"time"

	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/value"
)

// foodRequestUseCase implements FoodRequestUseCase on top of a FoodRequestRepository.
type foodRequestUseCase struct {
	requestRepo FoodRequestRepository
	now         func() time.Time
}

// Create stamps an absent request date with the current time before inserting.
func (f *foodRequestUseCase) Create(ctx context.Context, request *requestDomain.FoodRequest) error {
	if request.RequestDate.IsZero() {
		request.RequestDate = value.DateOf(f.now().Truncate(time.Millisecond))
	}
	return f.requestRepo.Create(ctx, request)
}

// ListByUser delegates to the repository.
func (f *foodRequestUseCase) ListByUser(
	ctx context.Context,
	userEmail string,
) ([]*requestDomain.FoodRequest, error) {
	return f.requestRepo.ListByUser(ctx, userEmail)
}

// NewFoodRequestUseCase creates a new FoodRequestUseCase.
func NewFoodRequestUseCase(requestRepo FoodRequestRepository) FoodRequestUseCase {
	return &foodRequestUseCase{
		requestRepo: requestRepo,
		now:         time.Now,
	}
}
