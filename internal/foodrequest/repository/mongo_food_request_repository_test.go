package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/testutil"
	"github.com/foodshare/server/internal/value"
)

func newTestRequest(userEmail string, requestDate time.Time) *requestDomain.FoodRequest {
	return &requestDomain.FoodRequest{
		FoodID:         "665f1c2e8b3a4d0012345678",
		FoodName:       "Rice",
		DonorName:      "Jane",
		DonorEmail:     "jane@example.com",
		UserEmail:      userEmail,
		PickupLocation: "Dhaka",
		ExpireDate:     value.DateOf(time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)),
		RequestDate:    value.DateOf(requestDate),
		Notes:          "after 5pm",
	}
}

func TestNewMongoFoodRequestRepository(t *testing.T) {
	db := testutil.SetupMongoDB(t)

	repo := NewMongoFoodRequestRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MongoFoodRequestRepository{}, repo)
}

func TestMongoFoodRequestRepository_CreateAndListByUser(t *testing.T) {
	db := testutil.SetupMongoDB(t)
	repo := NewMongoFoodRequestRepository(db)
	ctx := context.Background()

	older := newTestRequest("john@example.com", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	newer := newTestRequest("john@example.com", time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))
	other := newTestRequest("mary@example.com", time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC))

	for _, request := range []*requestDomain.FoodRequest{older, newer, other} {
		require.NoError(t, repo.Create(ctx, request))
		require.NotEmpty(t, request.ID)
	}

	requests, err := repo.ListByUser(ctx, "john@example.com")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, newer, requests[0])
	assert.Equal(t, older, requests[1])

	requests, err = repo.ListByUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
}

func TestFoodRequestDocument_DecodesLooselyTypedFields(t *testing.T) {
	oid := bson.NewObjectID()
	data, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "foodId", Value: "665f1c2e8b3a4d0012345678"},
		{Key: "userEmail", Value: "john@example.com"},
		{Key: "expireDate", Value: "2025-07-01"},
		{Key: "requestDate", Value: int64(1751328000000)},
	})
	require.NoError(t, err)

	var doc foodRequestDocument
	require.NoError(t, bson.Unmarshal(data, &doc))

	request := doc.toDomain()
	assert.Equal(t, oid.Hex(), request.ID)
	assert.Equal(t, "john@example.com", request.UserEmail)
	assert.Equal(t, value.DateText("2025-07-01"), request.ExpireDate)
	assert.Equal(t, "1751328000000", request.RequestDate.String())
}
