// Package mocks provides mock implementations of the auth use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

// MockGateUseCase is a mock implementation of GateUseCase.
type MockGateUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of GateUseCase.
func (m *MockGateUseCase) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (*authDomain.Claims, error) {
	args := m.Called(ctx, authorizationHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}
