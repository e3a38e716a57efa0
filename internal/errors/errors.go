// Package errors holds the domain error kinds. Modules wrap them with their own
// sentinels and httputil maps each kind to an HTTP status.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds shared by the food, request and auth modules.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate key.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates a malformed id, query value or body field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing, malformed or rejected identity token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a verified caller asking for another owner's data.
	ErrForbidden = errors.New("forbidden")
)

// Wrap prefixes err with message, keeping err in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
