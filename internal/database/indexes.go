package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IndexSet groups the index models created for one collection.
type IndexSet struct {
	Collection string
	Models     []mongo.IndexModel
}

// Indexes returns the indexes backing the owner lookups and the available-foods listing.
func Indexes() []IndexSet {
	return []IndexSet{
		{
			Collection: FoodsCollection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "donorEmail", Value: 1}},
					Options: options.Index().SetName("foods_donor_email"),
				},
				{
					Keys:    bson.D{{Key: "status", Value: 1}, {Key: "expireDate", Value: 1}},
					Options: options.Index().SetName("foods_status_expire_date"),
				},
			},
		},
		{
			Collection: RequestsCollection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "requestDate", Value: -1}},
					Options: options.Index().SetName("requests_user_email_request_date"),
				},
			},
		},
	}
}

// CreateIndexes creates every index returned by Indexes. Existing indexes with the same
// definition are left untouched by the server.
func CreateIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	var names []string
	for _, set := range Indexes() {
		created, err := db.Collection(set.Collection).Indexes().CreateMany(ctx, set.Models)
		if err != nil {
			return names, fmt.Errorf("failed to create indexes on %s: %w", set.Collection, err)
		}
		names = append(names, created...)
	}
	return names, nil
}
