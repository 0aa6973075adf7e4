package auth_test

import (
	"errors"
	"testing"

	"github.com/classicmodels-api/internal/auth"
	"github.com/classicmodels-api/internal/config"
	"github.com/classicmodels-api/internal/domain"
)

func newTestService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLMin:   30,
		AdminUsername: "admin",
		AdminPassword: "secret",
	})
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}
	return svc
}

func TestAuthenticate_Success(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("expected username admin, got %s", user.Username)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate("admin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate("nobody", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected username admin, got %s", username)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyToken("not-a-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	other, err := auth.NewService(config.AuthConfig{
		JWTSecret:     "another-secret",
		TokenTTLMin:   30,
		AdminUsername: "admin",
		AdminPassword: "secret",
	})
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}

	token, err := other.IssueToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserByName(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.UserByName("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email == "" {
		t.Error("expected non-empty email")
	}

	if _, err := svc.UserByName("nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
