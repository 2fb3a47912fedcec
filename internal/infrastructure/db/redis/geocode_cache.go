package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yourplaces/places-api/internal/core/domain"
)

const geocodeTTL = 24 * time.Hour

// GeocodeCache stores resolved coordinates keyed by normalized address.
// Key format: geocode:<lowercased, trimmed address>
type GeocodeCache struct {
	client *redis.Client
}

// NewGeocodeCache creates a GeocodeCache wrapping the given Redis client.
func NewGeocodeCache(client *redis.Client) *GeocodeCache {
	return &GeocodeCache{client: client}
}

// Get returns the cached coordinates for address. The boolean reports whether
// the address was present.
func (c *GeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	raw, err := c.client.Get(ctx, c.key(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Coordinates{}, false, nil
		}
		return domain.Coordinates{}, false, fmt.Errorf("geocode cache get: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode cache decode: %w", err)
	}
	return coords, true, nil
}

// Set records resolved coordinates for address (expires after geocodeTTL).
func (c *GeocodeCache) Set(ctx context.Context, address string, coords domain.Coordinates) error {
	raw, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("geocode cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(address), raw, geocodeTTL).Err()
}

func (c *GeocodeCache) key(address string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(address))
}
