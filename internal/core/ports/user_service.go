package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// SignupInput carries all data needed to register a new account.
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	ImagePath string
}

// UserService defines account registration, login and listing.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
