package services

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, 24*time.Hour)

	token, err := svc.Issue("rider@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "rider@example.com" {
		t.Errorf("Verify() subject = %q, want %q", subject, "rider@example.com")
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	svc := NewTokenService(testSecret, 24*time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("rider@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(23*time.Hour + 59*time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Errorf("Verify() just before expiry: error = %v, want nil", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() after expiry: error = %v, want ErrInvalidToken", err)
	}
}

// Every verification failure yields the same sentinel so callers cannot
// tell a bad signature from an expired or malformed token.
func TestVerifyFailuresIndistinguishable(t *testing.T) {
	svc := NewTokenService(testSecret, 24*time.Hour)

	otherSvc := NewTokenService("a-completely-different-signing-secret!", 24*time.Hour)
	foreignToken, err := otherSvc.Issue("rider@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expiredSvc := NewTokenService(testSecret, 24*time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expiredToken, err := expiredSvc.Issue("rider@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: foreignToken},
		{name: "expired", token: expiredToken},
		{name: "truncated", token: foreignToken[:len(foreignToken)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
			if subject != "" {
				t.Errorf("Verify() leaked subject %q on invalid token", subject)
			}
		})
	}
}
