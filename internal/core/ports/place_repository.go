package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	// Insert stores a new place and returns its generated id.
	Insert(ctx context.Context, p *domain.Place) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	// FindByCreator returns every place owned by the given user id.
	FindByCreator(ctx context.Context, creatorID string) ([]*domain.Place, error)
	// UpdateFields overwrites title and description on an existing place.
	UpdateFields(ctx context.Context, id, title, description string) error
	Delete(ctx context.Context, id string) error
}
