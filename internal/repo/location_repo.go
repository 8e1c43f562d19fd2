package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocationRepo struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewLocationRepo(database *mongo.Database, timeout time.Duration) *LocationRepo {
	return &LocationRepo{col: database.Collection("Locations"), timeout: timeout}
}

// Set writes the location document, replacing any existing document with
// the same coordinate key. Saving the same spot twice is an overwrite, not
// a conflict.
func (r *LocationRepo) Set(ctx context.Context, location *models.Location) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": location.ID}, location, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set location: %w", err)
	}
	return nil
}

func (r *LocationRepo) ListByOwner(ctx context.Context, owner string) ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list locations by owner: %w", err)
	}

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	return locations, nil
}
