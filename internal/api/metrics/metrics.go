// Package metrics defines and registers all custom Prometheus metrics for
// the logistics API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "logistics"

// RegistrationsTotal counts account creations.
// Labels:
//   - kind: "staff" or "client"
//   - role: the role assigned at creation (e.g. "user", "customer")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by kind and role.",
	},
	[]string{"kind", "role"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - method: "password" (staff) or "otp" (customer)
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// OTPGeneratedTotal counts one-time codes handed to the notifier.
var OTPGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_generated_total",
		Help:      "Total number of one-time codes generated.",
	},
)

// IdentifiersMintedTotal counts minted entity identifiers.
// Label:
//   - kind: "client", "booking", "container", or "warehouse"
var IdentifiersMintedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identifiers_minted_total",
		Help:      "Total number of entity identifiers minted, by kind.",
	},
	[]string{"kind"},
)
