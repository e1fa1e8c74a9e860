// Package metrics defines all custom Prometheus metrics for the tutoring
// platform API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tutoring"

// SubmissionsTotal counts contact form submissions by pipeline decision.
// Label:
//   - result: "accepted" or "rejected"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions, by validation result.",
	},
	[]string{"result"},
)

// DeliveriesTotal counts delivery attempts on accepted submissions.
// Label:
//   - outcome: "sent", "skipped", or "failed"
var DeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_deliveries_total",
		Help:      "Total number of contact submission relay outcomes.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts successful sign-ins by role.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// DashboardDenialsTotal counts dashboard requests turned away by the guard.
// Label:
//   - reason: "unauthenticated" or "role_mismatch"
var DashboardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_denials_total",
		Help:      "Total number of dashboard requests redirected away by the access guard.",
	},
	[]string{"reason"},
)
