package dto

import (
	"time"

	foodDomain "github.com/foodshare/server/internal/food/domain"
	"github.com/foodshare/server/internal/value"
)

// FoodResponse represents a listing in API responses. Field names match the stored
// document so clients see the same shape they posted.
type FoodResponse struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Image          string         `json:"image"`
	Quantity       value.Quantity `json:"quantity,omitzero"`
	PickupLocation string         `json:"pickupLocation"`
	ExpireDate     value.Date     `json:"expireDate,omitzero"`
	Notes          string         `json:"notes"`
	Status         string         `json:"status"`
	DonorName      string         `json:"donorName"`
	DonorEmail     string         `json:"donorEmail"`
	DonorImage     string         `json:"donorImage"`
	CreatedAt      time.Time      `json:"createdAt,omitzero"`
}

// InsertResponse reports a created document.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResponse reports a partial update.
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse reports a delete.
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MapFoodToResponse converts a domain food to an API response.
func MapFoodToResponse(food *foodDomain.Food) FoodResponse {
	return FoodResponse{
		ID:             food.ID,
		Name:           food.Name,
		Image:          food.Image,
		Quantity:       food.Quantity,
		PickupLocation: food.PickupLocation,
		ExpireDate:     food.ExpireDate,
		Notes:          food.Notes,
		Status:         food.Status,
		DonorName:      food.DonorName,
		DonorEmail:     food.DonorEmail,
		DonorImage:     food.DonorImage,
		CreatedAt:      food.CreatedAt,
	}
}

// MapFoodsToResponse converts listings to API responses. An empty result encodes as [].
func MapFoodsToResponse(foods []*foodDomain.Food) []FoodResponse {
	responses := make([]FoodResponse, 0, len(foods))
	for _, food := range foods {
		responses = append(responses, MapFoodToResponse(food))
	}
	return responses
}

// MapUpdateResultToResponse converts an update result to an API response.
func MapUpdateResultToResponse(res *foodDomain.UpdateResult) UpdateResponse {
	return UpdateResponse{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

// MapDeleteResultToResponse converts a delete result to an API response.
func MapDeleteResultToResponse(res *foodDomain.DeleteResult) DeleteResponse {
	return DeleteResponse{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}
}
