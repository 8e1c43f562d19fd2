package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes backing the equality-filtered scans:
// owner lookups on the per-user list endpoints and the registration-number
// lookup on the vehicle edit path. The indexes are not unique; create
// endpoints enforce uniqueness with an existence check before the write.
func EnsureIndexes(ctx context.Context, database *mongo.Database, timeout time.Duration) error {
	ownerIndexed := []string{"Vehicles", "Passes", "Locations"}
	for _, name := range ownerIndexed {
		if err := createIndex(ctx, database, timeout, name, "owner"); err != nil {
			return err
		}
	}
	return createIndex(ctx, database, timeout, "Vehicles", "regNo")
}

func createIndex(ctx context.Context, database *mongo.Database, timeout time.Duration, collection, field string) error {
	ctxIdx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := database.Collection(collection).Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure %s index on %s: %w", field, collection, err)
	}
	return nil
}
