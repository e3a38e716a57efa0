package usecase

import (
	"context"
	"time"

	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/metrics"
)

// foodRequestUseCaseWithMetrics decorates FoodRequestUseCase with metrics instrumentation.
type foodRequestUseCaseWithMetrics struct {
	next    FoodRequestUseCase
	metrics metrics.BusinessMetrics
}

// NewFoodRequestUseCaseWithMetrics wraps a FoodRequestUseCase with metrics recording.
func NewFoodRequestUseCaseWithMetrics(useCase FoodRequestUseCase, m metrics.BusinessMetrics) FoodRequestUseCase {
	return &foodRequestUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for request creation.
func (f *foodRequestUseCaseWithMetrics) Create(ctx context.Context, request *requestDomain.FoodRequest) error {
	start := time.Now()
	err := f.next.Create(ctx, request)

	status := metrics.Status(err)

	f.metrics.RecordOperation(ctx, "requests", "request_create", status)
	f.metrics.RecordDuration(ctx, "requests", "request_create", time.Since(start), status)

	return err
}

// ListByUser records metrics for owner listing.
func (f *foodRequestUseCaseWithMetrics) ListByUser(
	ctx context.Context,
	userEmail string,
) ([]*requestDomain.FoodRequest, error) {
	start := time.Now()
	requests, err := f.next.ListByUser(ctx, userEmail)

	status := metrics.Status(err)

	f.metrics.RecordOperation(ctx, "requests", "request_list_by_user", status)
	f.metrics.RecordDuration(ctx, "requests", "request_list_by_user", time.Since(start), status)

	return requests, err
}
