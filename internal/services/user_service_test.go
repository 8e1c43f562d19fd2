package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/JJB64/IntelliPark/internal/models"
)

func seedUser(store *memUserStore, email string) {
	now := time.Now().Add(-time.Hour)
	store.users[email] = models.User{
		Email:        email,
		Name:         "Test Rider",
		PasswordHash: "$2a$10$fakedigestfakedigestfakedigest",
		Gender:       "F",
		Phone:        "0712345678",
		Role:         "student",
		Image:        models.DefaultProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "rider@example.com")
	before := store.users["rider@example.com"]
	svc := NewUserService(store)

	err := svc.Update(context.Background(), "rider@example.com", UserUpdate{
		Name: strPtr("Renamed Rider"),
		Bio:  strPtr("new bio"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	after := store.users["rider@example.com"]
	if after.Name != "Renamed Rider" || after.Bio != "new bio" {
		t.Errorf("Update() did not apply provided fields: %+v", after)
	}
	if after.Gender != before.Gender || after.Phone != before.Phone || after.Role != before.Role {
		t.Errorf("Update() touched fields that were not provided: %+v", after)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Error("Update() did not refresh updatedAt")
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserStore())

	err := svc.Update(context.Background(), "nobody@example.com", UserUpdate{Name: strPtr("x")})
	assertAppError(t, err, http.StatusNotFound)
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserStore())

	_, err := svc.Get(context.Background(), "nobody@example.com")
	assertAppError(t, err, http.StatusNotFound)
}

// Delete is keyed by the token identity and succeeds whether or not the
// document still exists.
func TestDeleteIsUnconditional(t *testing.T) {
	store := newMemUserStore()
	seedUser(store, "rider@example.com")
	svc := NewUserService(store)

	if err := svc.Delete(context.Background(), "rider@example.com"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := store.users["rider@example.com"]; ok {
		t.Error("Delete() left the document behind")
	}

	if err := svc.Delete(context.Background(), "rider@example.com"); err != nil {
		t.Errorf("Delete() of an absent user: error = %v, want nil", err)
	}
}
