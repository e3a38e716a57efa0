// Package repository implements food request persistence on MongoDB.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/foodshare/server/internal/database"
	apperrors "github.com/foodshare/server/internal/errors"
	requestDomain "github.com/foodshare/server/internal/foodrequest/domain"
	"github.com/foodshare/server/internal/value"
)

type foodRequestDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	FoodID         string        `bson:"foodId"`
	FoodName       string        `bson:"foodName"`
	FoodImage      string        `bson:"foodImage"`
	DonorName      string        `bson:"donorName"`
	DonorEmail     string        `bson:"donorEmail"`
	UserEmail      string        `bson:"userEmail"`
	PickupLocation string        `bson:"pickupLocation"`
	ExpireDate     value.Date    `bson:"expireDate,omitempty"`
	RequestDate    value.Date    `bson:"requestDate,omitempty"`
	Notes          string        `bson:"notes"`
}

func (d *foodRequestDocument) toDomain() *requestDomain.FoodRequest {
	return &requestDomain.FoodRequest{
		ID:             d.ID.Hex(),
		FoodID:         d.FoodID,
		FoodName:       d.FoodName,
		FoodImage:      d.FoodImage,
		DonorName:      d.DonorName,
		DonorEmail:     d.DonorEmail,
		UserEmail:      d.UserEmail,
		PickupLocation: d.PickupLocation,
		ExpireDate:     d.ExpireDate,
		RequestDate:    d.RequestDate,
		Notes:          d.Notes,
	}
}

// MongoFoodRequestRepository implements FoodRequest persistence for MongoDB.
type MongoFoodRequestRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodRequestRepository creates a repository over the requests collection of db.
func NewMongoFoodRequestRepository(db *mongo.Database) *MongoFoodRequestRepository {
	return &MongoFoodRequestRepository{
		collection: db.Collection(database.RequestsCollection),
	}
}

// Create inserts a request and sets request.ID to the generated ObjectID.
func (r *MongoFoodRequestRepository) Create(ctx context.Context, request *requestDomain.FoodRequest) error {
	doc := foodRequestDocument{
		ID:             bson.NewObjectID(),
		FoodID:         request.FoodID,
		FoodName:       request.FoodName,
		FoodImage:      request.FoodImage,
		DonorName:      request.DonorName,
		DonorEmail:     request.DonorEmail,
		UserEmail:      request.UserEmail,
		PickupLocation: request.PickupLocation,
		ExpireDate:     request.ExpireDate,
		RequestDate:    request.RequestDate,
		Notes:          request.Notes,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return requestDomain.ErrRequestConflict
		}
		return apperrors.Wrap(err, "failed to create food request")
	}

	request.ID = doc.ID.Hex()
	return nil
}

// ListByUser returns the requests made by userEmail, newest first.
func (r *MongoFoodRequestRepository) ListByUser(
	ctx context.Context,
	userEmail string,
) ([]*requestDomain.FoodRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{{Key: "userEmail", Value: userEmail}}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list food requests")
	}

	var docs []foodRequestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(err, "failed to list food requests")
	}

	requests := make([]*requestDomain.FoodRequest, 0, len(docs))
	for i := range docs {
		requests = append(requests, docs[i].toDomain())
	}
	return requests, nil
}
