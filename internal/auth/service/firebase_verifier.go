package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/foodshare/server/internal/auth/domain"
)

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	maxSubjectLength     = 128
	// clockSkew matches the allowance of the Firebase Admin SDKs.
	clockSkew = 5 * time.Minute
)

// FirebaseVerifierConfig configures ID token verification for one Firebase project.
type FirebaseVerifierConfig struct {
	ProjectID string
	// Emulator accepts unsigned tokens minted by the Firebase Auth emulator.
	Emulator bool
	Now      func() time.Time
}

// firebaseClaims is the JWT payload of a Firebase ID token.
type firebaseClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	AuthTime      int64  `json:"auth_time"`
	Firebase      struct {
		SignInProvider string `json:"sign_in_provider"`
	} `json:"firebase"`
}

// FirebaseVerifier implements IdentityVerifier for Firebase Authentication ID tokens.
type FirebaseVerifier struct {
	projectID string
	issuer    string
	emulator  bool
	keys      KeySource
	now       func() time.Time
}

// NewFirebaseVerifier creates a verifier. keys may be nil only in emulator mode.
func NewFirebaseVerifier(cfg FirebaseVerifierConfig, keys KeySource) (*FirebaseVerifier, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("firebase project id is required")
	}
	if keys == nil && !cfg.Emulator {
		return nil, errors.New("firebase key source is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &FirebaseVerifier{
		projectID: cfg.ProjectID,
		issuer:    firebaseIssuerPrefix + cfg.ProjectID,
		emulator:  cfg.Emulator,
		keys:      keys,
		now:       cfg.Now,
	}, nil
}

// VerifyIDToken checks the token signature, audience, issuer, subject and time claims.
func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*authDomain.Claims, error) {
	if idToken == "" {
		return nil, errors.New("id token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(v.now),
	}

	var keyFunc jwt.Keyfunc
	if v.emulator {
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodNone.Alg()}))
		keyFunc = func(*jwt.Token) (any, error) {
			return jwt.UnsafeAllowNoneSignatureType, nil
		}
	} else {
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		keyFunc = func(token *jwt.Token) (any, error) {
			kid, _ := token.Header["kid"].(string)
			if kid == "" {
				return nil, errors.New("id token has no kid header")
			}
			return v.keys.PublicKey(ctx, kid)
		}
	}

	var parsed firebaseClaims
	if _, err := jwt.ParseWithClaims(idToken, &parsed, keyFunc, opts...); err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	if parsed.Subject == "" {
		return nil, errors.New("id token has an empty subject")
	}
	if len(parsed.Subject) > maxSubjectLength {
		return nil, fmt.Errorf("id token subject exceeds %d characters", maxSubjectLength)
	}

	var authTime time.Time
	if parsed.AuthTime != 0 {
		authTime = time.Unix(parsed.AuthTime, 0).UTC()
		if authTime.After(v.now().Add(clockSkew)) {
			return nil, errors.New("id token auth_time is in the future")
		}
	}

	claims := &authDomain.Claims{
		UID:            parsed.Subject,
		Email:          parsed.Email,
		EmailVerified:  parsed.EmailVerified,
		Name:           parsed.Name,
		Picture:        parsed.Picture,
		SignInProvider: parsed.Firebase.SignInProvider,
		Issuer:         parsed.Issuer,
		Audience:       v.projectID,
		AuthTime:       authTime,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time.UTC()
	}
	return claims, nil
}
