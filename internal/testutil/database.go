// Package testutil provides testing utilities for MongoDB integration tests.
//
// Environment Variables:
//
//   - TEST_MONGO_URI: MongoDB connection string (default: mongodb://localhost:27018)
//
// Database Setup:
//
//	db := testutil.SetupMongoDB(t)
//
// Each call gets a fresh database named after the test; it is dropped and the client
// disconnected through t.Cleanup. Tests are skipped when the server is unreachable
// or when running with -short.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/foodshare/server/internal/database"
)

// Default test server URI (can be overridden via environment variable)
const defaultMongoTestURI = "mongodb://localhost:27018"

// GetMongoTestURI returns the MongoDB test URI, checking environment variable first.
func GetMongoTestURI() string {
	if uri := os.Getenv("TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return defaultMongoTestURI
}

// TestDatabaseName derives a unique, valid database name for the running test.
func TestDatabaseName(t *testing.T) string {
	t.Helper()

	replacer := strings.NewReplacer("/", "_", " ", "_", ".", "_", "$", "_")
	name := replacer.Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("test_%s_%s", name, uuid.NewString()[:8])
}

// SetupMongoDB connects to the test server, creates indexes in a fresh database and
// registers cleanup. It skips the test if the server cannot be reached.
func SetupMongoDB(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping mongodb integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, database.Config{
		URI:            GetMongoTestURI(),
		ConnectTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Skipf("mongodb not available at %s: %v", GetMongoTestURI(), err)
	}

	db := client.Database(TestDatabaseName(t))

	_, err = database.CreateIndexes(ctx, db)
	require.NoError(t, err, "failed to create indexes")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}
