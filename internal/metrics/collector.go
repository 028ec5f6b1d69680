package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records adapter lifecycle and iteration metrics.
// A nil *Collector is valid and records nothing, so callers never need to
// guard observation calls.
type Collector struct {
	constructionsTotal *prometheus.CounterVec
	samplesTotal       *prometheus.CounterVec
	pullDuration       *prometheus.HistogramVec
	iterationErrors    *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a metrics collector registered on reg.
// Pass prometheus.DefaultRegisterer for process-wide metrics.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.constructionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_constructions_total",
			Help:      "Adapter constructions by framework, backend, and outcome.",
		},
		[]string{"framework", "backend", "outcome"},
	)

	c.samplesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Samples pulled through adapters by framework and format.",
		},
		[]string{"framework", "format"},
	)

	c.pullDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_pull_duration_seconds",
			Help:      "Latency of single sample pulls from the engine.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
		[]string{"framework"},
	)

	c.iterationErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iteration_errors_total",
			Help:      "Iteration failures by framework and error code.",
		},
		[]string{"framework", "code"},
	)

	c.logger.Debug("metrics collector initialized", zap.String("namespace", namespace))
	return c
}

// ObserveConstruction records one adapter construction attempt.
func (c *Collector) ObserveConstruction(framework, backend string, success bool) {
	if c == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "error"
	}
	c.constructionsTotal.WithLabelValues(framework, backend, outcome).Inc()
}

// ObserveSample records one successful sample pull and its latency.
func (c *Collector) ObserveSample(framework, format string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.samplesTotal.WithLabelValues(framework, format).Inc()
	c.pullDuration.WithLabelValues(framework).Observe(elapsed.Seconds())
}

// ObserveIterationError records one failed sample pull.
func (c *Collector) ObserveIterationError(framework, code string) {
	if c == nil {
		return
	}
	c.iterationErrors.WithLabelValues(framework, code).Inc()
}
