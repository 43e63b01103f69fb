// Package metrics defines and registers all custom Prometheus metrics for the
// yacht rental API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "yachtrental"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsExpiredTotal counts sessions found expired on access and cleared
// lazily.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of sessions cleared after exceeding the inactivity timeout.",
	},
)

// ReservationsCreatedTotal counts new reservations.
// Label:
//   - status: initial status ("pending" or "confirmed")
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created, by initial status.",
	},
	[]string{"status"},
)

// ReservationsCancelledTotal counts cancellations, including repeated cancels
// of the same reservation.
var ReservationsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_cancelled_total",
		Help:      "Total number of reservation cancellations.",
	},
)

// ReservationTotalPrice observes the computed total of each new reservation.
var ReservationTotalPrice = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reservation_total_price",
		Help:      "Distribution of reservation totals at booking time.",
		Buckets:   prometheus.ExponentialBuckets(500, 2, 10), // 500 .. ~256k
	},
)
