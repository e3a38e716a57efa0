package usecase

import (
	"context"
	"time"

	foodDomain "github.com/foodshare/server/internal/food/domain"
)

// foodUseCase implements FoodUseCase on top of a FoodRepository.
type foodUseCase struct {
	foodRepo FoodRepository
	now      func() time.Time
}

// List delegates to the repository.
func (f *foodUseCase) List(ctx context.Context, filter foodDomain.ListFilter) ([]*foodDomain.Food, error) {
	return f.foodRepo.List(ctx, filter)
}

// ListByDonor delegates to the repository.
func (f *foodUseCase) ListByDonor(ctx context.Context, donorEmail string) ([]*foodDomain.Food, error) {
	return f.foodRepo.ListByDonor(ctx, donorEmail)
}

// Get delegates to the repository.
func (f *foodUseCase) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	return f.foodRepo.Get(ctx, id)
}

// Create forces the available status and stamps the creation time before inserting.
func (f *foodUseCase) Create(ctx context.Context, food *foodDomain.Food) error {
	food.Status = foodDomain.StatusAvailable
	food.CreatedAt = f.now().UTC().Truncate(time.Millisecond)
	return f.foodRepo.Create(ctx, food)
}

// Update rejects empty updates before reaching the repository.
func (f *foodUseCase) Update(
	ctx context.Context,
	id string,
	update *foodDomain.FoodUpdate,
) (*foodDomain.UpdateResult, error) {
	if update.IsEmpty() {
		return nil, foodDomain.ErrEmptyUpdate
	}
	return f.foodRepo.Update(ctx, id, update)
}

// Delete delegates to the repository.
func (f *foodUseCase) Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error) {
	return f.foodRepo.Delete(ctx, id)
}

// NewFoodUseCase creates a new FoodUseCase.
func NewFoodUseCase(foodRepo FoodRepository) FoodUseCase {
	return &foodUseCase{
		foodRepo: foodRepo,
		now:      time.Now,
	}
}
