package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foodDomain "github.com/foodshare/server/internal/food/domain"
	"github.com/foodshare/server/internal/value"
)

func TestFoodIDParam_Validate(t *testing.T) {
	assert.NoError(t, (&FoodIDParam{ID: "665f1c2e8b3a4d0012345678"}).Validate())
	assert.Error(t, (&FoodIDParam{ID: ""}).Validate())
	assert.Error(t, (&FoodIDParam{ID: "665f1c2e"}).Validate())
}

func TestListFoodsQuery_ToFilter(t *testing.T) {
	assert.Equal(t, foodDomain.ListFilter{Search: "rice", SortDesc: true},
		(&ListFoodsQuery{Search: "rice", Sort: "desc"}).ToFilter())
	assert.Equal(t, foodDomain.ListFilter{}, (&ListFoodsQuery{Sort: "asc"}).ToFilter())
	assert.Equal(t, foodDomain.ListFilter{}, (&ListFoodsQuery{Sort: "DESC"}).ToFilter())
}

func TestCreateFoodRequest_ToDomain(t *testing.T) {
	var req CreateFoodRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Rice",
		"quantity": 2,
		"expireDate": "2026-10-25",
		"donorEmail": "jane@example.com"
	}`), &req))

	food := req.ToDomain()
	assert.Equal(t, "Rice", food.Name)
	assert.Equal(t, value.QuantityOf(2), food.Quantity)
	expireDate, ok := food.ExpireDate.Time()
	require.True(t, ok)
	assert.True(t, expireDate.Equal(time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, food.Status)

	assert.True(t, (&CreateFoodRequest{}).ToDomain().ExpireDate.IsZero())
}

func TestCreateFoodRequest_FreeFormValues(t *testing.T) {
	var req CreateFoodRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "   ",
		"quantity": "5",
		"expireDate": "tomorrow evening",
		"donorEmail": "jane"
	}`), &req))

	food := req.ToDomain()
	assert.Equal(t, "   ", food.Name)
	assert.Equal(t, value.QuantityText("5"), food.Quantity)
	assert.Equal(t, value.DateText("tomorrow evening"), food.ExpireDate)
	assert.Equal(t, "jane", food.DonorEmail)
}

func TestUpdateFoodRequest_ToDomain(t *testing.T) {
	var req UpdateFoodRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"quantity": 0,
		"expireDate": "2026-11-01",
		"notes": "",
		"status": " "
	}`), &req))

	update := req.ToDomain()
	require.NotNil(t, update.Quantity)
	assert.Equal(t, value.QuantityOf(0), *update.Quantity)
	require.NotNil(t, update.ExpireDate)
	expireDate, ok := update.ExpireDate.Time()
	require.True(t, ok)
	assert.True(t, expireDate.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, update.Notes)
	assert.Empty(t, *update.Notes)
	require.NotNil(t, update.Status)
	assert.Equal(t, " ", *update.Status)
	assert.Nil(t, update.Name)
	assert.False(t, update.IsEmpty())

	assert.True(t, (&UpdateFoodRequest{}).ToDomain().IsEmpty())
}
