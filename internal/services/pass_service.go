package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
	"github.com/JJB64/IntelliPark/internal/repo"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/google/uuid"
)

const passValidity = 30 * 24 * time.Hour

type PassStore interface {
	Insert(ctx context.Context, pass *models.Pass) error
	Get(ctx context.Context, id string) (*models.Pass, error)
	SetStatus(ctx context.Context, id, status string) error
	ListByOwner(ctx context.Context, owner string) ([]models.Pass, error)
}

type PassService struct {
	passes PassStore
}

func NewPassService(passes PassStore) *PassService {
	return &PassService{passes: passes}
}

type CreatePassInput struct {
	RegNo       string
	Make        string
	Model       string
	Owner       string
	Role        string
	Institution string
	QRCode      string
}

// Create issues a pending pass under a fresh generated id, valid for 30
// days. Fresh ids mean there is no conflict path on creation.
func (s *PassService) Create(ctx context.Context, in CreatePassInput) (*models.Pass, error) {
	now := time.Now()
	pass := &models.Pass{
		ID:          uuid.NewString(),
		Owner:       in.Owner,
		RegNo:       in.RegNo,
		Make:        in.Make,
		Model:       in.Model,
		Role:        in.Role,
		Institution: in.Institution,
		Status:      models.PassStatusPending,
		QRCode:      in.QRCode,
		CreatedAt:   now,
		ExpiresAt:   now.Add(passValidity),
	}

	if err := s.passes.Insert(ctx, pass); err != nil {
		return nil, fmt.Errorf("create pass: %w", err)
	}
	return pass, nil
}

// Approve moves a pass from pending to approved. A second approval is a
// conflict, not a no-op; the stored status stays approved either way.
func (s *PassService) Approve(ctx context.Context, id string) error {
	pass, err := s.passes.Get(ctx, id)
	if err != nil {
		if err == repo.ErrNotFound {
			return utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "Pass does not exist!", nil)
		}
		return fmt.Errorf("load pass: %w", err)
	}

	if pass.Status == models.PassStatusApproved {
		return utils.NewAppError(http.StatusConflict, "CONFLICT", "Pass already approved!", nil)
	}

	if err := s.passes.SetStatus(ctx, id, models.PassStatusApproved); err != nil {
		return fmt.Errorf("approve pass: %w", err)
	}
	return nil
}

func (s *PassService) ListByOwner(ctx context.Context, owner string) ([]models.Pass, error) {
	passes, err := s.passes.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}
	return passes, nil
}
