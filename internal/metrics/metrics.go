package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics of the service.
type Metrics struct {
	BookingsCreated      prometheus.Counter
	ReservationConflicts prometheus.Counter
	PaymentIntentErrors  prometheus.Counter
	SessionsEnded        prometheus.Counter
	FinalChargeCents     prometheus.Histogram
}

// New registers the service metrics on reg. Tests pass their own registry.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		ReservationConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_conflicts_total",
			Help:      "The total number of slot reservations lost to a concurrent booking",
		}),
		PaymentIntentErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_intent_errors_total",
			Help:      "The total number of failed payment intent creations",
		}),
		SessionsEnded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_ended_total",
			Help:      "The total number of call sessions ended",
		}),
		FinalChargeCents: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_final_charge_cents",
			Help:      "Final charges of ended call sessions, in cents",
			Buckets:   prometheus.ExponentialBuckets(500, 2, 12),
		}),
	}
}
