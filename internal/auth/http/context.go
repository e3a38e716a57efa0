// Package http provides the gin adapters for the identity and ownership gates.
package http

import (
	"context"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

// claimsKey is a context key type for storing verified claims.
type claimsKey struct{}

// WithClaims stores a verified claim set in the context.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves the verified claim set from the context.
// Returns (claims, true) if present, or (nil, false) when no gate attached one.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok && claims != nil
}
