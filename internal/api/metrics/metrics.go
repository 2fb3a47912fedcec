// Package metrics defines all custom Prometheus metrics for the places API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry via promauto on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "places"

// PlacesCreatedTotal counts places created through the API.
var PlacesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of places created.",
	},
)

// PlacesDeletedTotal counts places removed through the API.
var PlacesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of places deleted.",
	},
)

// GeocodeRequestsTotal counts outbound geocoding lookups.
// Label:
//   - result: "ok", "zero_results", or "error"
var GeocodeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of geocoding lookups, labelled by outcome.",
	},
	[]string{"result"},
)

// GeocodeCacheTotal counts geocode cache decisions.
// Label:
//   - result: "hit" (address served from cache) or "miss"
var GeocodeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_cache_total",
		Help:      "Total number of geocode cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ImageCleanupFailuresTotal counts image files that could not be removed after
// a committed place deletion. These files are orphaned on disk.
var ImageCleanupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cleanup_failures_total",
		Help:      "Total number of stored images left behind after a failed cleanup.",
	},
)
