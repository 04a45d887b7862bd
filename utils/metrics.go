package utils

import "github.com/prometheus/client_golang/prometheus"

// WizardMetrics exposes counters/histograms for booking wizard sessions.
type WizardMetrics struct {
	actionsTotal      *prometheus.CounterVec
	restoresTotal     *prometheus.CounterVec
	persistenceErrors *prometheus.CounterVec
	submissionsTotal  *prometheus.CounterVec
	submitLatency     prometheus.Histogram
}

func NewWizardMetrics(reg prometheus.Registerer) *WizardMetrics {
	m := &WizardMetrics{
		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "madeasy",
			Subsystem: "wizard",
			Name:      "actions_total",
			Help:      "Draft actions dispatched, by action type",
		}, []string{"type"}),
		restoresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "madeasy",
			Subsystem: "wizard",
			Name:      "restores_total",
			Help:      "Draft restore attempts, by outcome",
		}, []string{"outcome"}),
		persistenceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "madeasy",
			Subsystem: "wizard",
			Name:      "persistence_errors_total",
			Help:      "Failed draft persistence operations",
		}, []string{"op"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "madeasy",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Booking submissions, by outcome",
		}, []string{"outcome"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "madeasy",
			Subsystem: "wizard",
			Name:      "submission_latency_seconds",
			Help:      "Latency of the booking API call",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.actionsTotal, m.restoresTotal, m.persistenceErrors, m.submissionsTotal, m.submitLatency)
	return m
}

func (m *WizardMetrics) ObserveAction(actionType string) {
	if m == nil {
		return
	}
	m.actionsTotal.WithLabelValues(actionType).Inc()
}

func (m *WizardMetrics) ObserveRestore(outcome string) {
	if m == nil {
		return
	}
	m.restoresTotal.WithLabelValues(outcome).Inc()
}

func (m *WizardMetrics) ObservePersistenceError(op string) {
	if m == nil {
		return
	}
	m.persistenceErrors.WithLabelValues(op).Inc()
}

func (m *WizardMetrics) ObserveSubmission(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
	if seconds > 0 {
		m.submitLatency.Observe(seconds)
	}
}
