// Package dto provides data transfer objects for food HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	foodDomain "github.com/foodshare/server/internal/food/domain"
	customValidation "github.com/foodshare/server/internal/validation"
	"github.com/foodshare/server/internal/value"
)

// FoodIDParam binds the :id path segment.
type FoodIDParam struct {
	ID string `uri:"id"`
}

// Validate checks that the id is an ObjectID.
func (p *FoodIDParam) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required, customValidation.ObjectID),
	)
}

// ListFoodsQuery binds the catalogue query string.
type ListFoodsQuery struct {
	Search string `form:"search"`
	// Sort is "desc" for descending expire date; any other value sorts ascending.
	Sort string `form:"sort"`
}

// ToFilter converts the query into a repository filter.
func (q *ListFoodsQuery) ToFilter() foodDomain.ListFilter {
	return foodDomain.ListFilter{
		Search:   q.Search,
		SortDesc: q.Sort == "desc",
	}
}

// CreateFoodRequest contains the parameters for sharing a new listing. Fields are
// stored as sent. Status is not accepted: every new listing starts as available.
type CreateFoodRequest struct {
	Name           string         `json:"name"`
	Image          string         `json:"image"`
	Quantity       value.Quantity `json:"quantity"`
	PickupLocation string         `json:"pickupLocation"`
	ExpireDate     value.Date     `json:"expireDate"`
	Notes          string         `json:"notes"`
	DonorName      string         `json:"donorName"`
	DonorEmail     string         `json:"donorEmail"`
	DonorImage     string         `json:"donorImage"`
}

// ToDomain converts the request into a Food.
func (r *CreateFoodRequest) ToDomain() *foodDomain.Food {
	return &foodDomain.Food{
		Name:           r.Name,
		Image:          r.Image,
		Quantity:       r.Quantity,
		PickupLocation: r.PickupLocation,
		ExpireDate:     r.ExpireDate,
		Notes:          r.Notes,
		DonorName:      r.DonorName,
		DonorEmail:     r.DonorEmail,
		DonorImage:     r.DonorImage,
	}
}

// UpdateFoodRequest contains the fields of a partial update. Absent fields are kept.
type UpdateFoodRequest struct {
	Name           *string         `json:"name"`
	Image          *string         `json:"image"`
	Quantity       *value.Quantity `json:"quantity"`
	PickupLocation *string         `json:"pickupLocation"`
	ExpireDate     *value.Date     `json:"expireDate"`
	Notes          *string         `json:"notes"`
	Status         *string         `json:"status"`
	DonorName      *string         `json:"donorName"`
	DonorEmail     *string         `json:"donorEmail"`
	DonorImage     *string         `json:"donorImage"`
}

// ToDomain converts the request into a FoodUpdate.
func (r *UpdateFoodRequest) ToDomain() *foodDomain.FoodUpdate {
	return &foodDomain.FoodUpdate{
		Name:           r.Name,
		Image:          r.Image,
		Quantity:       r.Quantity,
		PickupLocation: r.PickupLocation,
		ExpireDate:     r.ExpireDate,
		Notes:          r.Notes,
		Status:         r.Status,
		DonorName:      r.DonorName,
		DonorEmail:     r.DonorEmail,
		DonorImage:     r.DonorImage,
	}
}
