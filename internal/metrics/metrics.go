// Package metrics defines and registers the Prometheus metrics of the
// recruitment client. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default registry at package init via
// promauto; the portal exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruit"

// ── Outbound API metrics ──────────────────────────────────────────────────────

// APIRequestsTotal counts backend calls by outcome.
// Labels:
//   - method: HTTP method
//   - status: response status code, or "error" for transport failures
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of backend API requests, by method and status.",
	},
	[]string{"method", "status"},
)

// APIRequestDuration measures backend round trips.
// Label:
//   - method: HTTP method
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// UnauthorizedTotal counts 401 answers that forced the session out.
var UnauthorizedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_unauthorized_total",
		Help:      "Total number of 401 responses that cleared the stored token.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session state changes.
// Labels:
//   - from: previous state (e.g. "anonymous")
//   - to: new state (e.g. "authenticated")
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions.",
	},
	[]string{"from", "to"},
)

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - result: "allow", "login" or "home"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by result.",
	},
	[]string{"result"},
)
