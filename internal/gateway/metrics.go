package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the gateway's Prometheus collectors on a private
// registry, so concurrent gateways never share state.
type metrics struct {
	registry *prometheus.Registry

	runsTotal *prometheus.CounterVec
	runTurns  prometheus.Histogram
	toolCalls *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eagle",
			Name:      "runs_total",
			Help:      "Runs started through the gateway, by outcome.",
		}, []string{"status"}),
		runTurns: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eagle",
			Name:      "run_turns",
			Help:      "Assistant turns consumed per completed run.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		toolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eagle",
			Name:      "tool_calls_total",
			Help:      "Tool invocations across gateway runs, by outcome.",
		}, []string{"outcome"}),
	}
}
