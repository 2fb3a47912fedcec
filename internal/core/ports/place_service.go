package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// CreatePlaceInput carries all data needed to create a new place. ImagePath is
// the already-stored upload; the address is geocoded by the service.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	CreatorID   string
	ImagePath   string
}

// UpdatePlaceInput carries the mutable place fields.
type UpdatePlaceInput struct {
	PlaceID     string
	Title       string
	Description string
}

// PlaceService defines use-case operations for places. Create and Delete
// maintain the bidirectional link between a place and its creator's place
// list atomically.
type PlaceService interface {
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, placeID string) (*domain.Place, error)
	ListPlacesByUser(ctx context.Context, userID string) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, input UpdatePlaceInput) (*domain.Place, error)
	DeletePlace(ctx context.Context, placeID string) error
}
