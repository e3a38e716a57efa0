// Package repository implements food listing persistence on MongoDB.
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/foodshare/server/internal/database"
	apperrors "github.com/foodshare/server/internal/errors"
	foodDomain "github.com/foodshare/server/internal/food/domain"
	"github.com/foodshare/server/internal/value"
)

// foodDocument is the stored shape of a listing in the foods collection. Quantity and
// expireDate decode from any scalar so documents written by older clients still load.
type foodDocument struct {
	ID             bson.ObjectID  `bson:"_id,omitempty"`
	Name           string         `bson:"name"`
	Image          string         `bson:"image"`
	Quantity       value.Quantity `bson:"quantity,omitempty"`
	PickupLocation string         `bson:"pickupLocation"`
	ExpireDate     value.Date     `bson:"expireDate,omitempty"`
	Notes          string         `bson:"notes"`
	Status         string         `bson:"status"`
	DonorName      string         `bson:"donorName"`
	DonorEmail     string         `bson:"donorEmail"`
	DonorImage     string         `bson:"donorImage"`
	CreatedAt      time.Time      `bson:"createdAt,omitempty"`
}

func (d *foodDocument) toDomain() *foodDomain.Food {
	return &foodDomain.Food{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Image:          d.Image,
		Quantity:       d.Quantity,
		PickupLocation: d.PickupLocation,
		ExpireDate:     d.ExpireDate,
		Notes:          d.Notes,
		Status:         d.Status,
		DonorName:      d.DonorName,
		DonorEmail:     d.DonorEmail,
		DonorImage:     d.DonorImage,
		CreatedAt:      d.CreatedAt,
	}
}

// MongoFoodRepository implements Food persistence for MongoDB.
type MongoFoodRepository struct {
	collection *mongo.Collection
}

// List returns available listings, optionally filtered by name and ordered by expire date.
func (r *MongoFoodRepository) List(
	ctx context.Context,
	filter foodDomain.ListFilter,
) ([]*foodDomain.Food, error) {
	query := bson.D{{Key: "status", Value: foodDomain.StatusAvailable}}
	if filter.Search != "" {
		query = append(query, bson.E{
			Key:   "name",
			Value: bson.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"},
		})
	}

	order := 1
	if filter.SortDesc {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "expireDate", Value: order}})

	return r.find(ctx, query, opts, "failed to list foods")
}

// ListByDonor returns every listing created by donorEmail, regardless of status.
func (r *MongoFoodRepository) ListByDonor(
	ctx context.Context,
	donorEmail string,
) ([]*foodDomain.Food, error) {
	query := bson.D{{Key: "donorEmail", Value: donorEmail}}
	return r.find(ctx, query, options.Find(), "failed to list foods by donor")
}

// Get retrieves a listing by its hex id.
func (r *MongoFoodRepository) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, foodDomain.ErrInvalidFoodID
	}

	var doc foodDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, foodDomain.ErrFoodNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get food")
	}

	return doc.toDomain(), nil
}

// Create inserts a listing and sets food.ID to the generated ObjectID.
func (r *MongoFoodRepository) Create(ctx context.Context, food *foodDomain.Food) error {
	doc := foodDocument{
		ID:             bson.NewObjectID(),
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

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "food already exists")
		}
		return apperrors.Wrap(err, "failed to create food")
	}

	food.ID = doc.ID.Hex()
	return nil
}

// Update applies $set with the fields present in update.
func (r *MongoFoodRepository) Update(
	ctx context.Context,
	id string,
	update *foodDomain.FoodUpdate,
) (*foodDomain.UpdateResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, foodDomain.ErrInvalidFoodID
	}
	if update.IsEmpty() {
		return nil, foodDomain.ErrEmptyUpdate
	}

	res, err := r.collection.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: setDocument(update)}},
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to update food")
	}

	return &foodDomain.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete removes a listing. Deleting a missing id reports a zero count, not an error.
func (r *MongoFoodRepository) Delete(ctx context.Context, id string) (*foodDomain.DeleteResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, foodDomain.ErrInvalidFoodID
	}

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to delete food")
	}

	return &foodDomain.DeleteResult{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}, nil
}

func (r *MongoFoodRepository) find(
	ctx context.Context,
	query bson.D,
	opts *options.FindOptionsBuilder,
	failure string,
) ([]*foodDomain.Food, error) {
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, failure)
	}

	var docs []foodDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(err, failure)
	}

	foods := make([]*foodDomain.Food, 0, len(docs))
	for i := range docs {
		foods = append(foods, docs[i].toDomain())
	}
	return foods, nil
}

// setDocument maps the non-nil fields of update to their stored names.
func setDocument(update *foodDomain.FoodUpdate) bson.D {
	set := bson.D{}
	appendIf := func(key string, present bool, value any) {
		if present {
			set = append(set, bson.E{Key: key, Value: value})
		}
	}

	appendIf("name", update.Name != nil, deref(update.Name))
	appendIf("image", update.Image != nil, deref(update.Image))
	appendIf("quantity", update.Quantity != nil, deref(update.Quantity))
	appendIf("pickupLocation", update.PickupLocation != nil, deref(update.PickupLocation))
	appendIf("expireDate", update.ExpireDate != nil, deref(update.ExpireDate))
	appendIf("notes", update.Notes != nil, deref(update.Notes))
	appendIf("status", update.Status != nil, deref(update.Status))
	appendIf("donorName", update.DonorName != nil, deref(update.DonorName))
	appendIf("donorEmail", update.DonorEmail != nil, deref(update.DonorEmail))
	appendIf("donorImage", update.DonorImage != nil, deref(update.DonorImage))

	return set
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NewMongoFoodRepository creates a repository over the foods collection of db.
func NewMongoFoodRepository(db *mongo.Database) *MongoFoodRepository {
	return &MongoFoodRepository{
		collection: db.Collection(database.FoodsCollection),
	}
}
