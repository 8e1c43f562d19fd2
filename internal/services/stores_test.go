package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"github.com/JJB64/IntelliPark/internal/repo"
	"github.com/JJB64/IntelliPark/internal/utils"
)

// In-memory stores standing in for the mongo-backed repos.

type memUserStore struct {
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (s *memUserStore) Get(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &user, nil
}

func (s *memUserStore) Exists(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) error {
	s.users[user.Email] = *user
	return nil
}

func (s *memUserStore) Update(_ context.Context, email string, fields map[string]any) error {
	user, ok := s.users[email]
	if !ok {
		return repo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "gender":
			user.Gender = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "bio":
			user.Bio = value.(string)
		case "role":
			user.Role = value.(string)
		case "image":
			user.Image = value.(string)
		case "passwordHash":
			user.PasswordHash = value.(string)
		case "updatedAt":
			user.UpdatedAt = value.(time.Time)
		}
	}
	s.users[email] = user
	return nil
}

func (s *memUserStore) Delete(_ context.Context, email string) error {
	delete(s.users, email)
	return nil
}

type memVehicleStore struct {
	vehicles map[string]models.Vehicle
}

func newMemVehicleStore() *memVehicleStore {
	return &memVehicleStore{vehicles: map[string]models.Vehicle{}}
}

func (s *memVehicleStore) Exists(_ context.Context, vin string) (bool, error) {
	_, ok := s.vehicles[vin]
	return ok, nil
}

func (s *memVehicleStore) Insert(_ context.Context, vehicle *models.Vehicle) error {
	s.vehicles[vehicle.VIN] = *vehicle
	return nil
}

func (s *memVehicleStore) FindByRegNo(_ context.Context, regNo string) (*models.Vehicle, error) {
	for _, vehicle := range s.vehicles {
		if vehicle.RegNo == regNo {
			v := vehicle
			return &v, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *memVehicleStore) UpdateColor(_ context.Context, vin, color string) error {
	vehicle, ok := s.vehicles[vin]
	if !ok {
		return repo.ErrNotFound
	}
	vehicle.Color = color
	vehicle.UpdatedAt = time.Now()
	s.vehicles[vin] = vehicle
	return nil
}

func (s *memVehicleStore) ListByOwner(_ context.Context, owner string) ([]models.Vehicle, error) {
	out := []models.Vehicle{}
	for _, vehicle := range s.vehicles {
		if vehicle.Owner == owner {
			out = append(out, vehicle)
		}
	}
	return out, nil
}

type memPassStore struct {
	passes map[string]models.Pass
}

func newMemPassStore() *memPassStore {
	return &memPassStore{passes: map[string]models.Pass{}}
}

func (s *memPassStore) Insert(_ context.Context, pass *models.Pass) error {
	s.passes[pass.ID] = *pass
	return nil
}

func (s *memPassStore) Get(_ context.Context, id string) (*models.Pass, error) {
	pass, ok := s.passes[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &pass, nil
}

func (s *memPassStore) SetStatus(_ context.Context, id, status string) error {
	pass, ok := s.passes[id]
	if !ok {
		return repo.ErrNotFound
	}
	pass.Status = status
	pass.UpdatedAt = time.Now()
	s.passes[id] = pass
	return nil
}

func (s *memPassStore) ListByOwner(_ context.Context, owner string) ([]models.Pass, error) {
	out := []models.Pass{}
	for _, pass := range s.passes {
		if pass.Owner == owner {
			out = append(out, pass)
		}
	}
	return out, nil
}

func assertAppError(t *testing.T, err error, wantStatus int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Status != wantStatus {
		t.Fatalf("AppError.Status = %d, want %d", appErr.Status, wantStatus)
	}
	return appErr
}
