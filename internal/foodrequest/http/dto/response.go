package dto

import (
	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/value"
)

// FoodRequestResponse represents a food request in API responses.
type FoodRequestResponse struct {
	ID             string     `json:"_id"`
	FoodID         string     `json:"foodId"`
	FoodName       string     `json:"foodName"`
	FoodImage      string     `json:"foodImage"`
	DonorName      string     `json:"donorName"`
	DonorEmail     string     `json:"donorEmail"`
	UserEmail      string     `json:"userEmail"`
	PickupLocation string     `json:"pickupLocation"`
	ExpireDate     value.Date `json:"expireDate,omitzero"`
	RequestDate    value.Date `json:"requestDate,omitzero"`
	Notes          string     `json:"notes"`
}

// InsertResponse reports a created document.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// MapFoodRequestsToResponse converts requests to API responses. An empty result encodes as [].
func MapFoodRequestsToResponse(requests []*requestDomain.FoodRequest) []FoodRequestResponse {
	responses := make([]FoodRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, FoodRequestResponse{
			ID:             r.ID,
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
		})
	}
	return responses
}
