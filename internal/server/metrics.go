package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes recorded by the solves counter.
const (
	outcomeSolved       = "solved"
	outcomeInvalidInput = "invalid_input"
	outcomeInvalidShape = "invalid_shape"
)

// Request sources recorded by the solves counter.
const (
	sourceForm = "form"
	sourceAPI  = "api"
)

type metrics struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bimatrix_solves_total",
				Help: "Total number of solve requests by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bimatrix_solve_duration_seconds",
				Help:    "Duration of successful equilibrium computations",
				Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7),
			},
		),
	}
	reg.MustRegister(m.solves, m.duration)
	return m
}

func (m *metrics) observe(source, outcome string, elapsed time.Duration) {
	m.solves.WithLabelValues(source, outcome).Inc()
	if outcome == outcomeSolved {
		m.duration.Observe(elapsed.Seconds())
	}
}
