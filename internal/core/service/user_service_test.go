package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

func signupInput() ports.SignupInput {
	return ports.SignupInput{
		Name:      "Guy",
		Email:     "guy@example.com",
		Password:  "secret123",
		ImagePath: "uploads/images/guy.png",
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)

	token, user, err := svc.Signup(context.Background(), signupInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password must be hashed before storage")
	}
	if len(user.Places) != 0 {
		t.Errorf("new user must start with an empty place list, got %v", user.Places)
	}
}

func TestUserService_Signup_TokenCarriesUserID(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)

	token, user, err := svc.Signup(context.Background(), signupInput())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Errorf("expected sub=%q, got %v", user.ID, claims["sub"])
	}
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)

	input := signupInput()
	input.Email = ""
	_, _, err := svc.Signup(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(st.users) != 0 {
		t.Error("invalid signup must not store a user")
	}
}

func TestUserService_Login_Success(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)
	_, created, err := svc.Signup(context.Background(), signupInput())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "guy@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)
	if _, _, err := svc.Signup(context.Background(), signupInput()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "guy@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	st := newMemState()
	svc := NewUserService(&stubUserRepo{st: st}, "test-secret", time.Hour)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		input := signupInput()
		input.Email = email
		if _, _, err := svc.Signup(context.Background(), input); err != nil {
			t.Fatalf("signup failed: %v", err)
		}
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
