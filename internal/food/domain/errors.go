package domain

import (
	"github.com/foodshare/server/internal/errors"
)

// Food-specific error definitions.
var (
	// ErrFoodNotFound indicates no listing exists with the given id.
	ErrFoodNotFound = errors.Wrap(errors.ErrNotFound, "food not found")

	// ErrInvalidFoodID indicates the id is not a valid ObjectID.
	ErrInvalidFoodID = errors.Wrap(errors.ErrInvalidInput, "invalid food id")

	// ErrEmptyUpdate indicates a partial update without any field to set.
	ErrEmptyUpdate = errors.Wrap(errors.ErrInvalidInput, "update has no fields")
)
