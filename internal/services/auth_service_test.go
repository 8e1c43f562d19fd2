package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"
)

func newTestAuthService(users UserStore) *AuthService {
	tokens := NewTokenService(testSecret, 24*time.Hour)
	return NewAuthService(users, tokens, 4)
}

func registerTestUser(t *testing.T, auth *AuthService, email, password string) {
	t.Helper()
	_, err := auth.Register(context.Background(), RegisterInput{
		Name:     "Test Rider",
		Email:    email,
		Password: password,
		Phone:    "0712345678",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
}

func TestRegisterNeverSerializesDigest(t *testing.T) {
	store := newMemUserStore()
	auth := newTestAuthService(store)

	user, err := auth.Register(context.Background(), RegisterInput{
		Name:     "Test Rider",
		Email:    "rider@example.com",
		Password: "secret99",
		Phone:    "0712345678",
		Gender:   "F",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	full, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(full), "passwordHash") || strings.Contains(string(full), user.PasswordHash) {
		t.Errorf("serialized user leaks the password digest: %s", full)
	}

	profile, err := json.Marshal(user.Profile())
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	for _, forbidden := range []string{"passwordHash", "createdAt", "updatedAt"} {
		if strings.Contains(string(profile), forbidden) {
			t.Errorf("profile projection contains %q: %s", forbidden, profile)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMemUserStore()
	auth := newTestAuthService(store)
	registerTestUser(t, auth, "rider@example.com", "secret99")

	_, err := auth.Register(context.Background(), RegisterInput{
		Name:     "Someone Else",
		Email:    "rider@example.com",
		Password: "other-pass",
		Phone:    "0798765432",
	})
	assertAppError(t, err, http.StatusConflict)
}

func TestRegisterShortPassword(t *testing.T) {
	auth := newTestAuthService(newMemUserStore())

	_, err := auth.Register(context.Background(), RegisterInput{
		Name:     "Test Rider",
		Email:    "rider@example.com",
		Password: "abc",
		Phone:    "0712345678",
	})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	store := newMemUserStore()
	tokens := NewTokenService(testSecret, 24*time.Hour)
	auth := NewAuthService(store, tokens, 4)
	registerTestUser(t, auth, "rider@example.com", "secret99")

	user, token, err := auth.Login(context.Background(), "rider@example.com", "secret99")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "rider@example.com" {
		t.Errorf("Login() user = %q, want %q", user.Email, "rider@example.com")
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "rider@example.com" {
		t.Errorf("token subject = %q, want the login email", subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newTestAuthService(newMemUserStore())
	registerTestUser(t, auth, "rider@example.com", "secret99")

	_, token, err := auth.Login(context.Background(), "rider@example.com", "wrong")
	assertAppError(t, err, http.StatusUnauthorized)
	if token != "" {
		t.Errorf("Login() issued a token on a failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	auth := newTestAuthService(newMemUserStore())

	_, _, err := auth.Login(context.Background(), "nobody@example.com", "secret99")
	assertAppError(t, err, http.StatusNotFound)
}

func TestChangePassword(t *testing.T) {
	store := newMemUserStore()
	auth := newTestAuthService(store)
	registerTestUser(t, auth, "rider@example.com", "secret99")

	err := auth.ChangePassword(context.Background(), "rider@example.com", "wrong", "newsecret")
	assertAppError(t, err, http.StatusUnauthorized)

	if err := auth.ChangePassword(context.Background(), "rider@example.com", "secret99", "newsecret"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, _, err := auth.Login(context.Background(), "rider@example.com", "newsecret"); err != nil {
		t.Errorf("login with new password: error = %v", err)
	}
	_, _, err = auth.Login(context.Background(), "rider@example.com", "secret99")
	assertAppError(t, err, http.StatusUnauthorized)
}

// blindUserStore reports every email as free, standing in for two racing
// requests that both pass the existence check before either write lands.
type blindUserStore struct {
	*memUserStore
}

func (s *blindUserStore) Exists(context.Context, string) (bool, error) {
	return false, nil
}

// The existence check and the insert are separate store calls with no
// transactional guard. Two concurrent registrations for one email can both
// succeed, and the later write wins. This documents the accepted behavior;
// it is not an exclusivity guarantee.
func TestRegisterRaceLastWriteWins(t *testing.T) {
	store := &blindUserStore{newMemUserStore()}
	auth := newTestAuthService(store)

	if _, err := auth.Register(context.Background(), RegisterInput{
		Name: "First", Email: "rider@example.com", Password: "secret99", Phone: "0711111111",
	}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := auth.Register(context.Background(), RegisterInput{
		Name: "Second", Email: "rider@example.com", Password: "secret99", Phone: "0722222222",
	}); err != nil {
		t.Fatalf("second Register() error = %v", err)
	}

	stored := store.users["rider@example.com"]
	if stored.Name != "Second" {
		t.Errorf("stored user = %q, want the later write %q", stored.Name, "Second")
	}
}
