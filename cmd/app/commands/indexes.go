package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/foodshare/server/internal/database"
)

// indexResult is the JSON output of create-indexes.
type indexResult struct {
	Database string   `json:"database"`
	Indexes  []string `json:"indexes"`
}

// RunCreateIndexes creates the collection indexes and prints their names. Index
// creation is idempotent, so the command can run on every deploy.
func RunCreateIndexes(
	ctx context.Context,
	logger *slog.Logger,
	db *mongo.Database,
	writer io.Writer,
	format string,
) error {
	logger.Info("creating mongodb indexes", slog.String("database", db.Name()))

	names, err := database.CreateIndexes(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if format == "json" {
		if err := outputJSON(indexResult{Database: db.Name(), Indexes: names}, writer); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Indexes in %s:\n", db.Name())
		for _, name := range names {
			_, _ = fmt.Fprintf(writer, "  %s\n", name)
		}
	}

	logger.Info("indexes created", slog.Int("count", len(names)))
	return nil
}
