// Package metrics defines all custom Prometheus metrics for the
// Tidesight console gateway. It is the single source of truth for
// metric names, labels, and help strings; metrics register with the
// default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tidesight"

// ── Upstream client ──────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls forwarded to the ERP backend.
// Labels:
//   - method: HTTP method of the upstream call
//   - status: numeric HTTP status, or "error" when the transport failed
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests forwarded to the upstream ERP API.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures one upstream round trip.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream ERP API round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Sessions ─────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ForcedLogoutsTotal counts sessions cleared by the global 401 policy.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions invalidated after an upstream 401.",
	},
)

// ActiveSessions tracks sessions currently persisted.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of live console sessions.",
	},
)

// ── UI feedback ──────────────────────────────────────────────────────

// ToastsTotal counts toasts queued for page shells.
// Label:
//   - kind: success, error, warning, or info
var ToastsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toasts_total",
		Help:      "Total number of toast notifications queued, by kind.",
	},
	[]string{"kind"},
)
