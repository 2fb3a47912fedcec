// Package geocode resolves free-text addresses to coordinates through the
// Google Maps Geocoding API.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/domain"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Config controls the geocoding client.
type Config struct {
	// BaseURL overrides the Google endpoint, used by tests. Defaults to the
	// public geocode API.
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client performs synchronous geocoding lookups. One HTTP call per Resolve,
// no retries.
type Client struct {
	http   *resty.Client
	apiKey string
	logger zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient, apiKey: cfg.APIKey, logger: logger}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location domain.Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve looks up address and returns its coordinates. An empty result set
// (status ZERO_RESULTS) maps to domain.ErrAddressUnresolvable; transport
// errors, non-2xx responses and upstream error statuses map to
// domain.ErrGeocoderUnavailable.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	var body geocodeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("address", address).
		SetQueryParam("key", c.apiKey).
		SetResult(&body).
		Get("")
	if err != nil {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error().Err(err).Msg("geocode request failed")
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error().Int("status", resp.StatusCode()).Msg("geocode upstream error")
		return domain.Coordinates{}, fmt.Errorf("%w: status %d", domain.ErrGeocoderUnavailable, resp.StatusCode())
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		metrics.GeocodeRequestsTotal.WithLabelValues("zero_results").Inc()
		return domain.Coordinates{}, domain.ErrAddressUnresolvable
	}
	if body.Status != "OK" {
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		c.logger.Error().Str("status", body.Status).Msg("geocode upstream rejected request")
		return domain.Coordinates{}, fmt.Errorf("%w: %s", domain.ErrGeocoderUnavailable, body.Status)
	}

	metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	return body.Results[0].Geometry.Location, nil
}
