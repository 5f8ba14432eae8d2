package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SessionMetrics records cart and checkout activity for one embedding app.
type SessionMetrics struct {
	cartOps    *prometheus.CounterVec
	submits    *prometheus.CounterVec
	submitTime *prometheus.HistogramVec
}

// NewSessionMetrics registers the session metrics on the provided registerer.
// A nil registerer yields a no-op instance.
func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	if reg == nil {
		return &SessionMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutation operations applied.",
	}, []string{"op"})
	submits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submission attempts by outcome.",
	}, []string{"outcome"})
	submitTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_submission_duration_seconds",
		Help:    "Duration of order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(cartOps, submits, submitTime)
	return &SessionMetrics{
		cartOps:    cartOps,
		submits:    submits,
		submitTime: submitTime,
	}
}

// IncCartOp increments the counter for the named cart mutation.
func (m *SessionMetrics) IncCartOp(op string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

// ObserveSubmission records one submission attempt and its duration.
func (m *SessionMetrics) ObserveSubmission(outcome string, duration time.Duration) {
	if m == nil || m.submits == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.submits.WithLabelValues(label).Inc()
	m.submitTime.WithLabelValues(label).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
