package usecase

import (
	"context"
	"time"

	authDomain "github.com/foodshare/server/internal/auth/domain"
	"github.com/foodshare/server/internal/metrics"
)

// gateUseCaseWithMetrics decorates GateUseCase with metrics instrumentation.
type gateUseCaseWithMetrics struct {
	next    GateUseCase
	metrics metrics.BusinessMetrics
}

// NewGateUseCaseWithMetrics wraps a GateUseCase with metrics recording.
func NewGateUseCaseWithMetrics(useCase GateUseCase, m metrics.BusinessMetrics) GateUseCase {
	return &gateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for identity verification.
func (g *gateUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (*authDomain.Claims, error) {
	start := time.Now()
	claims, err := g.next.Authenticate(ctx, authorizationHeader)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	g.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return claims, err
}
