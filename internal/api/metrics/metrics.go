// Package metrics defines and registers all custom Prometheus metrics for the
// travel API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the role granted at registration ("user" or "operator")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by granted role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Booking / review metrics ──────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - hotel_source: "local" or "external"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by hotel source.",
	},
	[]string{"hotel_source"},
)

// ReviewsCreatedTotal counts persisted reviews.
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created, by hotel source.",
	},
	[]string{"hotel_source"},
)

// ReviewsRejectedTotal counts reviews rejected before persistence.
// Label:
//   - reason: "rating", "comment_length", "blocked_word"
var ReviewsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_rejected_total",
		Help:      "Total number of reviews rejected by validation, by reason.",
	},
	[]string{"reason"},
)

// ── External search metrics ───────────────────────────────────────────────────

// SearchRequestsTotal counts external search requests.
// Labels:
//   - provider: "hotelbeds" or "aviationstack"
//   - result: "hit" (served from cache), "miss" (fetched upstream), "error"
var SearchRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of external search requests, by provider and cache result.",
	},
	[]string{"provider", "result"},
)

// SearchDuration measures upstream fetch latency, cache hits excluded.
var SearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of upstream search provider calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)
