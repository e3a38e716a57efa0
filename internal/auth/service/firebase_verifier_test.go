package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "food-share-test"

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// generateTestKey creates an RSA key pair for signing test tokens.
func generateTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

// validClaims returns a claim set that passes every verifier check at testNow.
func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            "https://securetoken.google.com/" + testProjectID,
		"aud":            testProjectID,
		"sub":            "uid-123",
		"iat":            testNow.Add(-10 * time.Minute).Unix(),
		"exp":            testNow.Add(50 * time.Minute).Unix(),
		"auth_time":      testNow.Add(-10 * time.Minute).Unix(),
		"email":          "jane@example.com",
		"email_verified": true,
		"name":           "Jane Doe",
		"firebase":       map[string]any{"sign_in_provider": "password"},
	}
}

// signTestToken signs claims with RS256 and the given kid header.
func signTestToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func newTestVerifier(t *testing.T, key *rsa.PrivateKey) *FirebaseVerifier {
	t.Helper()
	verifier, err := NewFirebaseVerifier(
		FirebaseVerifierConfig{
			ProjectID: testProjectID,
			Now:       func() time.Time { return testNow },
		},
		StaticKeySource{"kid-1": &key.PublicKey},
	)
	require.NoError(t, err)
	return verifier
}

func TestNewFirebaseVerifier(t *testing.T) {
	t.Run("Error_MissingProjectID", func(t *testing.T) {
		_, err := NewFirebaseVerifier(FirebaseVerifierConfig{}, StaticKeySource{})
		assert.EqualError(t, err, "firebase project id is required")
	})

	t.Run("Error_MissingKeySource", func(t *testing.T) {
		_, err := NewFirebaseVerifier(FirebaseVerifierConfig{ProjectID: testProjectID}, nil)
		assert.EqualError(t, err, "firebase key source is required")
	})

	t.Run("Success_EmulatorWithoutKeys", func(t *testing.T) {
		verifier, err := NewFirebaseVerifier(
			FirebaseVerifierConfig{ProjectID: testProjectID, Emulator: true},
			nil,
		)
		require.NoError(t, err)
		assert.NotNil(t, verifier)
	})
}

func TestFirebaseVerifier_VerifyIDToken_Success(t *testing.T) {
	key := generateTestKey(t)
	verifier := newTestVerifier(t, key)

	token := signTestToken(t, key, "kid-1", validClaims())

	claims, err := verifier.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "password", claims.SignInProvider)
	assert.Equal(t, "https://securetoken.google.com/"+testProjectID, claims.Issuer)
	assert.Equal(t, testProjectID, claims.Audience)
	assert.Equal(t, testNow.Add(-10*time.Minute), claims.IssuedAt)
	assert.Equal(t, testNow.Add(50*time.Minute), claims.ExpiresAt)
	assert.Equal(t, testNow.Add(-10*time.Minute), claims.AuthTime)
}

func TestFirebaseVerifier_VerifyIDToken_Rejections(t *testing.T) {
	key := generateTestKey(t)
	otherKey := generateTestKey(t)
	verifier := newTestVerifier(t, key)

	withClaim := func(name string, value any) jwt.MapClaims {
		claims := validClaims()
		claims[name] = value
		return claims
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage string",
			token: "abc123",
		},
		{
			name:  "wrong audience",
			token: signTestToken(t, key, "kid-1", withClaim("aud", "another-project")),
		},
		{
			name:  "wrong issuer",
			token: signTestToken(t, key, "kid-1", withClaim("iss", "https://accounts.google.com")),
		},
		{
			name:  "expired",
			token: signTestToken(t, key, "kid-1", withClaim("exp", testNow.Add(-time.Hour).Unix())),
		},
		{
			name:  "missing expiration",
			token: signTestToken(t, key, "kid-1", withClaim("exp", nil)),
		},
		{
			name:  "issued in the future",
			token: signTestToken(t, key, "kid-1", withClaim("iat", testNow.Add(time.Hour).Unix())),
		},
		{
			name: "auth time in the future",
			token: signTestToken(
				t,
				key,
				"kid-1",
				withClaim("auth_time", testNow.Add(time.Hour).Unix()),
			),
		},
		{
			name:  "empty subject",
			token: signTestToken(t, key, "kid-1", withClaim("sub", "")),
		},
		{
			name:  "subject too long",
			token: signTestToken(t, key, "kid-1", withClaim("sub", strings.Repeat("a", 129))),
		},
		{
			name:  "missing kid",
			token: signTestToken(t, key, "", validClaims()),
		},
		{
			name:  "unknown kid",
			token: signTestToken(t, key, "kid-2", validClaims()),
		},
		{
			name:  "signed by another key",
			token: signTestToken(t, otherKey, "kid-1", validClaims()),
		},
		{
			name: "wrong algorithm",
			token: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
				token.Header["kid"] = "kid-1"
				signed, err := token.SignedString([]byte("shared-secret"))
				require.NoError(t, err)
				return signed
			}(),
		},
		{
			name: "unsigned token outside emulator",
			token: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims())
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyIDToken(context.Background(), tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestFirebaseVerifier_VerifyIDToken_Emulator(t *testing.T) {
	verifier, err := NewFirebaseVerifier(
		FirebaseVerifierConfig{
			ProjectID: testProjectID,
			Emulator:  true,
			Now:       func() time.Time { return testNow },
		},
		nil,
	)
	require.NoError(t, err)

	t.Run("Success_UnsignedToken", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims())
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := verifier.VerifyIDToken(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", claims.Email)
	})

	t.Run("Error_ClaimsStillChecked", func(t *testing.T) {
		claims := validClaims()
		claims["aud"] = "another-project"
		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.VerifyIDToken(context.Background(), signed)
		assert.Error(t, err)
	})
}
