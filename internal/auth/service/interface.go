// Package service provides the identity authority integration used by the gate.
//
// Firebase ID tokens are RS256 JWTs signed with keys Google publishes as x509
// certificates. FirebaseVerifier checks signature and claims; KeySource serves the
// public keys and keeps them until the endpoint's max-age expires.
package service

import (
	"context"
	"crypto/rsa"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

// IdentityVerifier verifies an opaque credential with the identity authority.
type IdentityVerifier interface {
	// VerifyIDToken returns the verified claims or an error describing the rejection.
	// Callers must not expose the error to clients.
	VerifyIDToken(ctx context.Context, idToken string) (*authDomain.Claims, error)
}

// KeySource resolves a signing key id to its RSA public key.
type KeySource interface {
	PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error)
}
