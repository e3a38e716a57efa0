package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	authDomain "github.com/foodshare/server/internal/auth/domain"
	authService "github.com/foodshare/server/internal/auth/service"
)

// bearerPrefix is the only accepted scheme marker, matched case-sensitively.
const bearerPrefix = "Bearer "

// gateUseCase implements GateUseCase on top of an IdentityVerifier.
type gateUseCase struct {
	verifier authService.IdentityVerifier
	timeout  time.Duration
	logger   *slog.Logger
}

// NewGateUseCase creates the identity gate. A zero timeout leaves the verifier call
// bounded only by the request context.
func NewGateUseCase(
	verifier authService.IdentityVerifier,
	timeout time.Duration,
	logger *slog.Logger,
) GateUseCase {
	return &gateUseCase{
		verifier: verifier,
		timeout:  timeout,
		logger:   logger,
	}
}

// Authenticate rejects missing or malformed headers before contacting the authority.
// Authority failures are logged at debug level and collapsed into ErrInvalidToken.
func (g *gateUseCase) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (*authDomain.Claims, error) {
	token, err := ParseBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	claims, err := g.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		g.logger.Debug("id token verification failed", slog.Any("error", err))
		return nil, authDomain.ErrInvalidToken
	}
	if claims == nil || claims.Email == "" {
		return nil, authDomain.ErrMissingEmailClaim
	}

	return claims, nil
}

// ParseBearerToken extracts <token> from "Bearer <token>". The token must be non-empty
// and contain no whitespace.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", authDomain.ErrMissingCredential
	}

	token, found := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !found || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", authDomain.ErrMalformedCredential
	}

	return token, nil
}

// AuthorizeOwner is the ownership gate. It takes the claim set produced by
// Authenticate and the caller-supplied email, and returns the approved owner email.
// A nil claim set fails closed with ErrNoClaims. The comparison is exact and
// case-sensitive.
func AuthorizeOwner(claims *authDomain.Claims, email string) (string, error) {
	if claims == nil || claims.Email == "" {
		return "", authDomain.ErrNoClaims
	}
	if email != claims.Email {
		return "", authDomain.ErrOwnerMismatch
	}
	return claims.Email, nil
}
