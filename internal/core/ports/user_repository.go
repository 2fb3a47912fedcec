package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// AddPlace appends placeID to the user's place list.
	AddPlace(ctx context.Context, userID, placeID string) error
	// RemovePlace removes placeID from the user's place list.
	RemovePlace(ctx context.Context, userID, placeID string) error
}
