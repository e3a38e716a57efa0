// Package domain defines the food listing model shared by the food use cases,
// repositories and HTTP handlers.
package domain

import (
	"time"

	"github.com/foodshare/server/internal/value"
)

// StatusAvailable is the status every listing is created with and the only status the
// public catalogue shows.
const StatusAvailable = "available"

// Food is a listing shared by a donor.
type Food struct {
	// ID is the hex encoded ObjectID of the document.
	ID             string
	Name           string
	Image          string
	Quantity       value.Quantity
	PickupLocation string
	ExpireDate     value.Date
	Notes          string
	Status         string
	DonorName      string
	DonorEmail     string
	DonorImage     string
	CreatedAt      time.Time
}

// FoodUpdate is a partial update. Nil fields are left untouched.
type FoodUpdate struct {
	Name           *string
	Image          *string
	Quantity       *value.Quantity
	PickupLocation *string
	ExpireDate     *value.Date
	Notes          *string
	Status         *string
	DonorName      *string
	DonorEmail     *string
	DonorImage     *string
}

// IsEmpty reports whether the update sets no field.
func (u *FoodUpdate) IsEmpty() bool {
	return u == nil ||
		u.Name == nil &&
			u.Image == nil &&
			u.Quantity == nil &&
			u.PickupLocation == nil &&
			u.ExpireDate == nil &&
			u.Notes == nil &&
			u.Status == nil &&
			u.DonorName == nil &&
			u.DonorEmail == nil &&
			u.DonorImage == nil
}

// ListFilter narrows the public catalogue.
type ListFilter struct {
	// Search matches name case-insensitively as a literal substring.
	Search string
	// SortDesc orders by expire date, soonest last. Ascending otherwise.
	SortDesc bool
}

// UpdateResult reports the outcome of a partial update.
type UpdateResult struct {
	Acknowledged  bool
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}
