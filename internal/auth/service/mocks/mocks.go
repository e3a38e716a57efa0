// Package mocks provides mock implementations of the identity authority for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

// MockIdentityVerifier is a mock implementation of IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

// VerifyIDToken mocks the VerifyIDToken method of IdentityVerifier.
func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*authDomain.Claims, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}
