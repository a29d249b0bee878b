package ledger

import (
	"github.com/QuangTung97/conference/model"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics ...
type Metrics struct {
	outcomes *prometheus.CounterVec
	retries  prometheus.Counter
	breaches prometheus.Counter
}

// NewMetrics creates and registers the ledger collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "conference",
			Name:      "registration_outcomes_total",
			Help:      "Number of register and unregister calls by outcome",
		}, []string{"outcome"}),

		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "conference",
			Name:      "ledger_retries_total",
			Help:      "Number of atomic units retried because of concurrent writers",
		}),

		breaches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "conference",
			Name:      "ledger_invariant_breaches_total",
			Help:      "Number of seat counters found outside their allowed range",
		}),
	}

	reg.MustRegister(m.outcomes, m.retries, m.breaches)
	return m
}

func (m *Metrics) incOutcome(outcome model.RegistrationOutcome) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) incRetries() {
	if m == nil {
		return
	}
	m.retries.Inc()
}

func (m *Metrics) incBreaches() {
	if m == nil {
		return
	}
	m.breaches.Inc()
}
