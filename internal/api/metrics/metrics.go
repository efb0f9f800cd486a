// Package metrics defines and registers all custom Prometheus metrics for the
// webshop API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "webshop"

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created through /api/register.",
	},
)

// AuthAttemptsTotal counts Basic auth credential resolutions.
// Label:
//   - result: "success" or "failure" (unknown email, bad password, throttled)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of Basic authentication attempts, by result.",
	},
	[]string{"result"},
)

// AdminMutationsTotal counts admin operations on the user collection.
// Label:
//   - action: "role_update" or "delete"
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of admin mutations on user records, by action.",
	},
	[]string{"action"},
)
