package domain

import (
	"github.com/foodshare/server/internal/errors"
)

// Identity and ownership gate errors. Every credential failure wraps ErrUnauthorized so
// callers see one outcome regardless of the cause.
var (
	// ErrMissingCredential indicates the Authorization header is absent.
	ErrMissingCredential = errors.Wrap(errors.ErrUnauthorized, "missing authorization header")

	// ErrMalformedCredential indicates the header is not "Bearer <token>".
	ErrMalformedCredential = errors.Wrap(errors.ErrUnauthorized, "malformed authorization header")

	// ErrInvalidToken indicates the identity authority rejected the token.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid id token")

	// ErrMissingEmailClaim indicates a verified token that carries no email address.
	ErrMissingEmailClaim = errors.Wrap(errors.ErrUnauthorized, "id token has no email claim")

	// ErrNoClaims indicates the ownership check ran without a verified claim set.
	ErrNoClaims = errors.Wrap(errors.ErrUnauthorized, "no verified claims")

	// ErrOwnerMismatch indicates the email query parameter differs from the token email.
	ErrOwnerMismatch = errors.Wrap(errors.ErrForbidden, "email does not match verified identity")
)
