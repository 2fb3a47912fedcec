package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourplaces/places-api/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Timeout: 2 * time.Second}, zerolog.Nop())
}

func TestClient_Resolve_Success(t *testing.T) {
	var gotAddress, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 40.7484, "lng": -73.9857}}}]
		}`))
	})

	coords, err := client.Resolve(context.Background(), "350 5th Ave, NYC")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 40.7484, Lng: -73.9857}, coords)
	assert.Equal(t, "350 5th Ave, NYC", gotAddress)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_Resolve_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Resolve(context.Background(), "no such street 99999")
	assert.ErrorIs(t, err, domain.ErrAddressUnresolvable)
}

func TestClient_Resolve_EmptyResultsWithOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := client.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, domain.ErrAddressUnresolvable)
}

func TestClient_Resolve_UpstreamHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, domain.ErrGeocoderUnavailable)
}

func TestClient_Resolve_UpstreamRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "results": [{"geometry": {"location": {"lat": 1, "lng": 2}}}]}`))
	})

	_, err := client.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, domain.ErrGeocoderUnavailable)
}

func TestClient_Resolve_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())

	_, err := client.Resolve(context.Background(), "somewhere")
	assert.ErrorIs(t, err, domain.ErrGeocoderUnavailable)
}
