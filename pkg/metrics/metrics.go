package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	sessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "sessions_created_total",
			Help:      "Count of visitor sessions opened.",
		},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "bookings_created_total",
			Help:      "Count of confirmed seat bookings by payment method.",
		},
		[]string{"payment_method"},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "bookings_rejected_total",
			Help:      "Count of rejected booking attempts by reason.",
		},
		[]string{"reason"},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "bookings_cancelled_total",
			Help:      "Count of bookings cancelled by users.",
		},
	)

	creditsDonated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "payforward_credits_donated_total",
			Help:      "Total pay-it-forward credits donated to the community pool.",
		},
	)

	creditsClaimed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mindspace",
			Name:      "payforward_credits_claimed_total",
			Help:      "Total pay-it-forward credits claimed from the community pool.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			sessionsCreated,
			bookingsCreated,
			bookingsRejected,
			bookingsCancelled,
			creditsDonated,
			creditsClaimed,
		)
	})
}

func IncSessionCreated() {
	sessionsCreated.Inc()
}

func IncBookingCreated(paymentMethod string) {
	bookingsCreated.WithLabelValues(paymentMethod).Inc()
}

func IncBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func IncBookingCancelled() {
	bookingsCancelled.Inc()
}

func AddCreditsDonated(amount int) {
	creditsDonated.Add(float64(amount))
}

func IncCreditClaimed() {
	creditsClaimed.Inc()
}
