package metrics

import "github.com/prometheus/client_golang/prometheus"

// Relay outcomes recorded per command submission.
const (
	RelayOutcomeDelivered = "delivered"
	RelayOutcomeNotFound  = "bot_not_found"
	RelayOutcomeFailed    = "handler_error"
	RelayOutcomeRejected  = "bad_request"
)

// RelayMetrics counts command submissions by outcome.
type RelayMetrics struct {
	CommandsTotal *prometheus.CounterVec
}

// NewRelayMetrics creates and registers relay metrics on the given registry.
func NewRelayMetrics(reg prometheus.Registerer) *RelayMetrics {
	m := &RelayMetrics{
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "commands_total",
			Help:      "Total commands submitted to bots, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.CommandsTotal)
	return m
}

// Record counts a single command submission outcome.
func (m *RelayMetrics) Record(outcome string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(outcome).Inc()
}
