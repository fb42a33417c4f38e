package httpparse

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of counters a long-running caller (the
// cmd/httpparse-fuzz harness, or a server built on this package) can
// register and update around calls into this package. The parsing core
// itself never touches a *Metrics — nothing here sits on the hot path.
type Metrics struct {
	Parses *prometheus.CounterVec
	Errors *prometheus.CounterVec
}

// NewMetrics builds a Metrics with its counters registered under the
// given namespace. Call Register to attach them to a prometheus.Registerer.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Number of top-level parse calls, by operation.",
		}, []string{"op"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Number of terminal (non-EAGAIN) parse errors, by operation and kind.",
		}, []string{"op", "kind"}),
	}
}

// Register attaches m's counters to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.Parses); err != nil {
		return err
	}
	return reg.Register(m.Errors)
}

// Observe records the outcome of one parse call: a successful or EAGAIN
// result increments Parses; any other error also increments Errors with
// the failure's Kind.
func (m *Metrics) Observe(op string, err error) {
	m.Parses.WithLabelValues(op).Inc()
	if err == nil {
		return
	}
	if perr, ok := err.(*Error); ok {
		if perr.Kind == KindAgain {
			return
		}
		m.Errors.WithLabelValues(op, perr.Kind.String()).Inc()
	}
}
