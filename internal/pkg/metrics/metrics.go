// Package metrics defines and registers the custom Prometheus metrics of the
// bear tracker. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bearwatch"

// ── Sighting metrics ──────────────────────────────────────────────────────────

// SightingsSubmittedTotal counts submission attempts.
// Label:
//   - result: "accepted", "rejected" or "error"
var SightingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sightings_submitted_total",
		Help:      "Total number of sighting submissions, by outcome.",
	},
	[]string{"result"},
)

// SightingRejectionsTotal counts submissions turned away by a location check.
// Label:
//   - check: the failing check, e.g. "city_level", "country_match", or "no_match"
var SightingRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sighting_rejections_total",
		Help:      "Total number of sightings rejected during location validation, by check.",
	},
	[]string{"check"},
)

// GeocodeDuration measures a single geocoding round trip.
// Label:
//   - result: "ok", "no_match" or "unavailable"
var GeocodeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_duration_seconds",
		Help:      "Duration of geocoding lookups.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// StoreErrorsTotal counts failed document store calls.
// Label:
//   - op: "find_bear", "list_sightings", "insert_sighting", ...
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of failed document store operations.",
	},
	[]string{"op"},
)

// ── Map metrics ───────────────────────────────────────────────────────────────

// MapRendersTotal counts view updates.
// Label:
//   - result: "drawn", "unchanged" or "error"
var MapRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "map_renders_total",
		Help:      "Total number of map view updates, by outcome.",
	},
	[]string{"result"},
)

// MapSurfacesLive tracks map surfaces that have been acquired and not yet released.
var MapSurfacesLive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "map_surfaces_live",
		Help:      "Number of map surfaces currently held.",
	},
)

// MalformedSightingsTotal counts stored sightings skipped while drawing
// because they lack usable coordinates.
var MalformedSightingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_sightings_total",
		Help:      "Total number of stored sightings skipped while drawing for lack of coordinates.",
	},
)

// ── Refresh queue metrics ─────────────────────────────────────────────────────

// RefreshQueueDepth tracks refresh requests waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RefreshQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "refresh_queue_depth",
		Help:      "Current number of map refresh requests pending per worker.",
	},
	[]string{"worker_id"},
)

// RefreshesDroppedTotal counts refresh requests dropped because a worker queue was full.
var RefreshesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshes_dropped_total",
		Help:      "Total number of map refresh requests dropped on a full queue.",
	},
)
