package telemetry

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

// Metrics implements ports.Metrics with a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	results  *prometheus.CounterVec
}

// NewMetrics creates the step metrics and registers them with a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gant",
				Name:      "step_duration_seconds",
				Help:      "Amount of time spent per build step, in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.01, math.Pow(10.0, 1.0/3.0), 5*3+1),
			},
			[]string{"step"}),
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gant",
				Name:      "step_results_total",
				Help:      "Number of finished build steps, by result.",
			},
			[]string{"result"}),
	}
	m.registry.MustRegister(m.duration, m.results)
	return m
}

// Registry exposes the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStep records the outcome and duration of one step.
func (m *Metrics) ObserveStep(step string, outcome domain.StepOutcome, elapsed time.Duration) {
	m.duration.WithLabelValues(step).Observe(elapsed.Seconds())
	m.results.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes all metrics to path in the format read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}
