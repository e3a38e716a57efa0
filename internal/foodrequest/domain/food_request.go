// Package domain defines the food request model: a user's claim on a shared listing.
package domain

import (
	"github.com/foodshare/server/internal/errors"
	"github.com/foodshare/server/internal/value"
)

// FoodRequest records a user asking for a listing. The listing details are copied at
// request time so the request stays readable after the listing changes.
type FoodRequest struct {
	ID             string
	FoodID         string
	FoodName       string
	FoodImage      string
	DonorName      string
	DonorEmail     string
	UserEmail      string
	PickupLocation string
	ExpireDate     value.Date
	RequestDate    value.Date
	Notes          string
}

// ErrRequestConflict indicates a request document with the same id already exists.
var ErrRequestConflict = errors.Wrap(errors.ErrConflict, "food request already exists")
