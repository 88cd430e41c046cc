// Package metrics defines all custom Prometheus metrics for the
// petcare services. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petcare"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "identity_not_found", "invalid_credentials",
//     "profile_not_found", "upstream_error", "throttled", "token_error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// LoginDuration measures end-to-end login latency, including both
// upstream store calls and token issuance.
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login processing from request to result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// UpstreamErrorsTotal counts transport-level failures of dependent
// service calls. These are folded into not-found failures for the
// caller, so the counter is the only place the distinction survives.
// Labels:
//   - dependency: "credential_store", "profile_store", "account_directory"
//   - reason: "transport", "bad_payload"
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of transport-level failures calling dependent services.",
	},
	[]string{"dependency", "reason"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsRegisteredTotal counts successful registrations by role.
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Pet metrics ───────────────────────────────────────────────────────────────

// PetsCreatedTotal counts pets registered, by species.
var PetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pets_created_total",
		Help:      "Total number of pets created, by species.",
	},
	[]string{"species"},
)
