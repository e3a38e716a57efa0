// Package dto provides data transfer objects for food request HTTP handling.
package dto

import (
	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/value"
)

// CreateFoodRequestRequest is the body of POST /requests. Fields are stored as sent.
type CreateFoodRequestRequest struct {
	FoodID         string     `json:"foodId"`
	FoodName       string     `json:"foodName"`
	FoodImage      string     `json:"foodImage"`
	DonorName      string     `json:"donorName"`
	DonorEmail     string     `json:"donorEmail"`
	UserEmail      string     `json:"userEmail"`
	PickupLocation string     `json:"pickupLocation"`
	ExpireDate     value.Date `json:"expireDate"`
	RequestDate    value.Date `json:"requestDate"`
	Notes          string     `json:"notes"`
}

// ToDomain converts the request into a FoodRequest.
func (r *CreateFoodRequestRequest) ToDomain() *requestDomain.FoodRequest {
	return &requestDomain.FoodRequest{
		FoodID:         r.FoodID,
		FoodName:       r.FoodName,
		FoodImage:      r.FoodImage,
		DonorName:      r.DonorName,
		DonorEmail:     r.DonorEmail,
		UserEmail:      r.UserEmail,
		PickupLocation: r.PickupLocation,
		ExpireDate:     r.ExpireDate,
		RequestDate:    r.RequestDate,
		Notes:          r.Notes,
	}
}
