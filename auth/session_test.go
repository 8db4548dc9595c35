package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/errs"
)

func testSessions(t *testing.T) *Sessions {
	t.Helper()
	s, err := NewSessions(&config.Config{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewSessions: %v", err)
	}
	return s
}

func TestVerifyCredentials(t *testing.T) {
	s := testSessions(t)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid pair", "admin", "hunter2", true},
		{"wrong password", "admin", "hunter3", false},
		{"wrong username", "root", "hunter2", false},
		{"empty pair", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.VerifyCredentials(tt.username, tt.password); got != tt.want {
				t.Errorf("VerifyCredentials(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestMintAndValidate(t *testing.T) {
	s := testSessions(t)

	token, expires, err := s.Mint(time.Now())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if !expires.After(time.Now()) {
		t.Errorf("expiry %v is not in the future", expires)
	}

	subject, err := s.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if subject != "admin" {
		t.Errorf("subject = %q, want %q", subject, "admin")
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	s := testSessions(t)

	t.Run("empty token", func(t *testing.T) {
		_, err := s.Validate("")
		if !errors.Is(err, errs.ErrMissingToken) {
			t.Errorf("got %v, want missing token error", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.Validate("not-a-jwt")
		if !errors.Is(err, errs.ErrInvalidToken) {
			t.Errorf("got %v, want invalid token error", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := s.Mint(time.Now().Add(-2 * time.Hour))
		if err != nil {
			t.Fatalf("Mint: %v", err)
		}
		_, err = s.Validate(token)
		if !errors.Is(err, errs.ErrExpiredToken) {
			t.Errorf("got %v, want expired token error", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := NewSessions(&config.Config{
			AdminUsername: "admin",
			AdminPassword: "hunter2",
			SessionSecret: "other-secret",
			SessionTTL:    time.Hour,
		})
		if err != nil {
			t.Fatalf("NewSessions: %v", err)
		}
		token, _, err := other.Mint(time.Now())
		if err != nil {
			t.Fatalf("Mint: %v", err)
		}
		if _, err := s.Validate(token); !errors.Is(err, errs.ErrInvalidToken) {
			t.Errorf("got %v, want invalid token error", err)
		}
	})
}

func TestPrecomputedHash(t *testing.T) {
	// Hash of "s3cret" generated with bcrypt.DefaultCost.
	s, err := NewSessions(&config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		SessionSecret:     "test-secret",
		SessionTTL:        time.Hour,
	})
	if err != nil {
		t.Fatalf("NewSessions: %v", err)
	}
	if s.VerifyCredentials("admin", "wrong") {
		t.Error("wrong password accepted against precomputed hash")
	}
}
