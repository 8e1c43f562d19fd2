package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"github.com/JJB64/IntelliPark/internal/repo"
	"github.com/JJB64/IntelliPark/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the Users collection the auth and user
// services need.
type UserStore interface {
	Get(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, email string, fields map[string]any) error
	Delete(ctx context.Context, email string) error
}

type AuthService struct {
	users          UserStore
	tokens         *TokenService
	passwordMinLen int
}

func NewAuthService(users UserStore, tokens *TokenService, passwordMinLen int) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwordMinLen: passwordMinLen}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Gender   string
}

// Register creates a user keyed by email. The existence check and the
// insert are two separate store calls with no transactional guard; two
// concurrent registrations for the same email can both pass the check and
// the later write wins.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if len(in.Password) < s.passwordMinLen {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("password must be at least %d characters", s.passwordMinLen), nil)
	}

	exists, err := s.users.Exists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, utils.NewAppError(http.StatusConflict, "CONFLICT", "User already exists!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Gender:       in.Gender,
		Phone:        in.Phone,
		Bio:          "",
		Role:         "",
		Image:        models.DefaultProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the password against the stored digest and issues a fresh
// bearer token for the email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.Get(ctx, email)
	if err != nil {
		if err == repo.ErrNotFound {
			return nil, "", utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User does not exist!", nil)
		}
		return nil, "", fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid password!", nil)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// ChangePassword verifies the old password before storing a new digest.
// The email comes from the verified token, never the request body.
func (s *AuthService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if len(newPassword) < s.passwordMinLen {
		return utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("password must be at least %d characters", s.passwordMinLen), nil)
	}

	user, err := s.users.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid password!", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Update(ctx, email, map[string]any{
		"passwordHash": string(hash),
		"updatedAt":    time.Now(),
	}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
