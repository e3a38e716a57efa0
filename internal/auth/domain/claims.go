// Package domain defines the verified identity produced by the identity gate.
package domain

import "time"

// Claims is the verified principal extracted from a Firebase ID token. It lives for a
// single request and is never persisted.
type Claims struct {
	// UID is the Firebase user id (the token subject).
	UID string
	// Email is the address asserted by the identity authority, as stored there.
	Email string
	// EmailVerified reports whether the authority verified Email.
	EmailVerified bool
	// Name is the display name, when the provider supplies one.
	Name string
	// Picture is the avatar URL, when the provider supplies one.
	Picture string
	// SignInProvider is the Firebase sign-in method (e.g. "password", "google.com").
	SignInProvider string
	Issuer         string
	Audience       string
	IssuedAt       time.Time
	ExpiresAt      time.Time
	AuthTime       time.Time
}
