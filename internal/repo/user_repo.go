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

type UserRepo struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewUserRepo(database *mongo.Database, timeout time.Duration) *UserRepo {
	return &UserRepo{col: database.Collection("Users"), timeout: timeout}
}

func (r *UserRepo) Get(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"_id": email})
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepo) Insert(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update merges the given fields into the user document. Returns
// ErrNotFound when no document matched.
func (r *UserRepo) Update(ctx context.Context, email string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user document. Deleting an absent document is not an
// error.
func (r *UserRepo) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": email}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
