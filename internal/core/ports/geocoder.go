package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// Geocoder converts a free-text address into coordinates.
// Returns domain.ErrAddressUnresolvable when the lookup yields no result and
// domain.ErrGeocoderUnavailable on transport or upstream failures.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Coordinates, error)
}
