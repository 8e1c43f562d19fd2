package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PassRepo struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewPassRepo(database *mongo.Database, timeout time.Duration) *PassRepo {
	return &PassRepo{col: database.Collection("Passes"), timeout: timeout}
}

func (r *PassRepo) Insert(ctx context.Context, pass *models.Pass) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, pass); err != nil {
		return fmt.Errorf("insert pass: %w", err)
	}
	return nil
}

func (r *PassRepo) Get(ctx context.Context, id string) (*models.Pass, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var pass models.Pass
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pass); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pass: %w", err)
	}
	return &pass, nil
}

func (r *PassRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("set pass status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PassRepo) ListByOwner(ctx context.Context, owner string) ([]models.Pass, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list passes by owner: %w", err)
	}

	passes := []models.Pass{}
	if err := cursor.All(ctx, &passes); err != nil {
		return nil, fmt.Errorf("decode passes: %w", err)
	}
	return passes, nil
}
