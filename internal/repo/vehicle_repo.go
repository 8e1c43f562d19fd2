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

type VehicleRepo struct {
	col     *mongo.Collection
	timeout time.Duration
}

func NewVehicleRepo(database *mongo.Database, timeout time.Duration) *VehicleRepo {
	return &VehicleRepo{col: database.Collection("Vehicles"), timeout: timeout}
}

func (r *VehicleRepo) Exists(ctx context.Context, vin string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"_id": vin})
	if err != nil {
		return false, fmt.Errorf("check vehicle exists: %w", err)
	}
	return count > 0, nil
}

func (r *VehicleRepo) Insert(ctx context.Context, vehicle *models.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// FindByRegNo resolves a vehicle through the registration-number index.
// The VIN remains the only document key; this is an equality scan.
func (r *VehicleRepo) FindByRegNo(ctx context.Context, regNo string) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.col.FindOne(ctx, bson.M{"regNo": regNo}).Decode(&vehicle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find vehicle by regNo: %w", err)
	}
	return &vehicle, nil
}

func (r *VehicleRepo) UpdateColor(ctx context.Context, vin, color string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": vin}, bson.M{"$set": bson.M{
		"color":     color,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("update vehicle color: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VehicleRepo) ListByOwner(ctx context.Context, owner string) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list vehicles by owner: %w", err)
	}

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}
