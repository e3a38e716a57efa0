// Package usecase implements the identity and ownership gates that protect
// owner-scoped routes.
package usecase

import (
	"context"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

// GateUseCase verifies the credential carried by a request.
type GateUseCase interface {
	// Authenticate parses an Authorization header value of the form "Bearer <token>",
	// verifies the token with the identity authority and returns the claim set.
	// Every failure wraps errors.ErrUnauthorized.
	Authenticate(ctx context.Context, authorizationHeader string) (*authDomain.Claims, error)
}
