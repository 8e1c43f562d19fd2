package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"github.com/JJB64/IntelliPark/internal/repo"
	"github.com/JJB64/IntelliPark/internal/utils"
)

type VehicleStore interface {
	Exists(ctx context.Context, vin string) (bool, error)
	Insert(ctx context.Context, vehicle *models.Vehicle) error
	FindByRegNo(ctx context.Context, regNo string) (*models.Vehicle, error)
	UpdateColor(ctx context.Context, vin, color string) error
	ListByOwner(ctx context.Context, owner string) ([]models.Vehicle, error)
}

type VehicleService struct {
	vehicles VehicleStore
}

func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

type AddVehicleInput struct {
	Make  string
	Model string
	VIN   string
	Color string
	RegNo string
	Owner string
}

// Add registers a vehicle keyed by VIN. Same check-then-write shape as
// user registration; the race is accepted.
func (s *VehicleService) Add(ctx context.Context, in AddVehicleInput) (*models.Vehicle, error) {
	exists, err := s.vehicles.Exists(ctx, in.VIN)
	if err != nil {
		return nil, fmt.Errorf("check existing vehicle: %w", err)
	}
	if exists {
		return nil, utils.NewAppError(http.StatusConflict, "CONFLICT",
			"A vehicle with this registration number already exists!", nil)
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		VIN:       in.VIN,
		Make:      in.Make,
		Model:     in.Model,
		Color:     in.Color,
		RegNo:     in.RegNo,
		Owner:     in.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.vehicles.Insert(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("add vehicle: %w", err)
	}
	return vehicle, nil
}

// EditDetails updates the color of the vehicle with the given registration
// number. The identity must match the stored owner; the caller's own claim
// of ownership is never consulted.
func (s *VehicleService) EditDetails(ctx context.Context, identity, regNo, color string) error {
	vehicle, err := s.vehicles.FindByRegNo(ctx, regNo)
	if err != nil {
		if err == repo.ErrNotFound {
			return utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "Vehicle does not exist!", nil)
		}
		return fmt.Errorf("find vehicle: %w", err)
	}

	if vehicle.Owner != identity {
		return utils.NewAppError(http.StatusForbidden, "FORBIDDEN",
			"You are not authorized to edit this vehicle!", nil)
	}

	if err := s.vehicles.UpdateColor(ctx, vehicle.VIN, color); err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

func (s *VehicleService) ListByOwner(ctx context.Context, owner string) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}
