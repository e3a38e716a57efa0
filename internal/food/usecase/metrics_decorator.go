package usecase

import (
	"context"
	"time"

	foodDomain "github.com/foodshare/server/internal/food/domain"
	"github.com/foodshare/server/internal/metrics"
)

const metricsDomain = "foods"

// foodUseCaseWithMetrics decorates FoodUseCase with metrics instrumentation.
type foodUseCaseWithMetrics struct {
	next    FoodUseCase
	metrics metrics.BusinessMetrics
}

// NewFoodUseCaseWithMetrics wraps a FoodUseCase with metrics recording.
func NewFoodUseCaseWithMetrics(useCase FoodUseCase, m metrics.BusinessMetrics) FoodUseCase {
	return &foodUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *foodUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	f.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	f.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// List records metrics for catalogue listing.
func (f *foodUseCaseWithMetrics) List(
	ctx context.Context,
	filter foodDomain.ListFilter,
) ([]*foodDomain.Food, error) {
	start := time.Now()
	foods, err := f.next.List(ctx, filter)
	f.record(ctx, "food_list", start, err)
	return foods, err
}

// ListByDonor records metrics for owner listing.
func (f *foodUseCaseWithMetrics) ListByDonor(
	ctx context.Context,
	donorEmail string,
) ([]*foodDomain.Food, error) {
	start := time.Now()
	foods, err := f.next.ListByDonor(ctx, donorEmail)
	f.record(ctx, "food_list_by_donor", start, err)
	return foods, err
}

// Get records metrics for single listing retrieval.
func (f *foodUseCaseWithMetrics) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	start := time.Now()
	food, err := f.next.Get(ctx, id)
	f.record(ctx, "food_get", start, err)
	return food, err
}

// Create records metrics for listing creation.
func (f *foodUseCaseWithMetrics) Create(ctx context.Context, food *foodDomain.Food) error {
	start := time.Now()
	err := f.next.Create(ctx, food)
	f.record(ctx, "food_create", start, err)
	return err
}

// Update records metrics for partial updates.
func (f *foodUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	update *foodDomain.FoodUpdate,
) (*foodDomain.UpdateResult, error) {
	start := time.Now()
	res, err := f.next.Update(ctx, id, update)
	f.record(ctx, "food_update", start, err)
	return res, err
}

// Delete records metrics for deletion.
func (f *foodUseCaseWithMetrics) Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error) {
	start := time.Now()
	res, err := f.next.Delete(ctx, id)
	f.record(ctx, "food_delete", start, err)
	return res, err
}
