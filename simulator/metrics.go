package simulator

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus collectors for the simulator.
type Metrics struct {
	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

// NewMetrics constructs the simulator collectors and registers them on the
// provided registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reservesim",
				Name:      "runs_total",
				Help:      "Number of reserve simulations, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "reservesim",
				Name:      "run_duration_seconds",
				Help:      "Time spent computing and encoding one simulation.",
			},
			[]string{},
		),
	}

	registry.MustRegister(m.runsTotal, m.runDuration)
	return m
}
