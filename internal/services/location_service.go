package services

import (
	"context"
	"fmt"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
)

type LocationStore interface {
	Set(ctx context.Context, location *models.Location) error
	ListByOwner(ctx context.Context, owner string) ([]models.Location, error)
}

type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

// Add saves a location under its coordinate key. Re-saving the same
// coordinates overwrites the earlier document.
func (s *LocationService) Add(ctx context.Context, locationID, owner string) (*models.Location, error) {
	location := &models.Location{
		ID:        locationID,
		Owner:     owner,
		CreatedAt: time.Now(),
	}

	if err := s.locations.Set(ctx, location); err != nil {
		return nil, fmt.Errorf("add location: %w", err)
	}
	return location, nil
}

func (s *LocationService) ListByOwner(ctx context.Context, owner string) ([]models.Location, error) {
	locations, err := s.locations.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}
