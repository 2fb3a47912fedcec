package geocode

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// ResultCache stores resolved coordinates by address.
type ResultCache interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Set(ctx context.Context, address string, coords domain.Coordinates) error
}

// CachedGeocoder serves repeated lookups for the same address from a cache.
// Cache failures degrade to a direct lookup and never fail the request;
// only successful resolutions are cached.
type CachedGeocoder struct {
	next   ports.Geocoder
	cache  ResultCache
	logger zerolog.Logger
}

func NewCachedGeocoder(next ports.Geocoder, cache ResultCache, logger zerolog.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: cache, logger: logger}
}

func (g *CachedGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	coords, ok, err := g.cache.Get(ctx, address)
	if err != nil {
		g.logger.Warn().Err(err).Msg("geocode cache lookup failed")
	} else if ok {
		metrics.GeocodeCacheTotal.WithLabelValues("hit").Inc()
		return coords, nil
	}
	metrics.GeocodeCacheTotal.WithLabelValues("miss").Inc()

	coords, err = g.next.Resolve(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := g.cache.Set(ctx, address, coords); err != nil {
		g.logger.Warn().Err(err).Msg("geocode cache store failed")
	}
	return coords, nil
}
