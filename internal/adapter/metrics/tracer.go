// Package metrics exposes the saga observability side channel as Prometheus metrics.
package metrics

import (
	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tracer implements ports.Tracer.
type Tracer struct {
	repeatedActivations prometheus.Counter
	authorizations      *prometheus.CounterVec
	closures            *prometheus.CounterVec
}

// NewTracer registers the saga metrics on reg.
func NewTracer(reg prometheus.Registerer) *Tracer {
	factory := promauto.With(reg)
	return &Tracer{
		repeatedActivations: factory.NewCounter(prometheus.CounterOpts{
			Name: "transactions_repeated_activations_total",
			Help: "Activations served from the payment request info cache",
		}),
		authorizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_authorization_requests_total",
			Help: "Authorization requests by gateway, payment type and outcome",
		}, []string{
			"gateway",
			"payment_type_code",
			"outcome", // OK, ERROR
		}),
		closures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transactions_closure_attempts_total",
			Help: "Close payment attempts by call outcome and clearing node outcome",
		}, []string{
			"outcome",
			"closure_outcome", // OK, KO
		}),
	}
}

// RepeatedActivation is not labeled by rptId to keep the series count bounded.
func (t *Tracer) RepeatedActivation(_ domain.RptID) {
	t.repeatedActivations.Inc()
}

func (t *Tracer) AuthorizationRequested(gateway domain.GatewayType, paymentTypeCode string, outcome ports.TraceOutcome) {
	t.authorizations.WithLabelValues(string(gateway), paymentTypeCode, string(outcome)).Inc()
}

func (t *Tracer) ClosureAttempted(outcome ports.TraceOutcome, closure domain.ClosureOutcome) {
	t.closures.WithLabelValues(string(outcome), string(closure)).Inc()
}
