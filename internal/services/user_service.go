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

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.Get(ctx, email)
	if err != nil {
		if err == repo.ErrNotFound {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User does not exist!", nil)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// UserUpdate carries the optional profile fields; only non-nil fields are
// merged into the document. Email is the document key and cannot change.
type UserUpdate struct {
	Name   *string
	Gender *string
	Phone  *string
	Bio    *string
	Role   *string
	Image  *string
}

func (s *UserService) Update(ctx context.Context, email string, update UserUpdate) error {
	fields := map[string]any{"updatedAt": time.Now()}
	setIf(fields, "name", update.Name)
	setIf(fields, "gender", update.Gender)
	setIf(fields, "phone", update.Phone)
	setIf(fields, "bio", update.Bio)
	setIf(fields, "role", update.Role)
	setIf(fields, "image", update.Image)

	if err := s.users.Update(ctx, email, fields); err != nil {
		if err == repo.ErrNotFound {
			return utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User does not exist!", nil)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the caller's own document unconditionally; deleting a
// user that is already gone still succeeds. Vehicles, passes and
// locations referencing the email are left behind.
func (s *UserService) Delete(ctx context.Context, email string) error {
	if err := s.users.Delete(ctx, email); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func setIf(fields map[string]any, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
