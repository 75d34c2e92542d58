// Package metrics provides Prometheus metrics for the player insights service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the insights service.
type Manager struct {
	enabled bool

	insightsBuilds   prometheus.Counter
	insightsErrors   prometheus.Counter
	insightsDuration prometheus.Histogram

	builderDuration *prometheus.HistogramVec
	builderErrors   *prometheus.CounterVec

	readerFailures *prometheus.CounterVec
}

// NewManager registers insights metrics on the given registerer. When enabled
// is false every method is a no-op, so callers never need nil checks.
func NewManager(registry prometheus.Registerer, enabled bool) *Manager {
	m := &Manager{enabled: enabled}
	if !enabled {
		return m
	}
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	m.insightsBuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "builds_total",
		Help:      "Total number of full insights builds.",
	})
	m.insightsErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "build_errors_total",
		Help:      "Total number of failed insights builds.",
	})
	m.insightsDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "build_duration_seconds",
		Help:      "Duration of full insights builds.",
		Buckets:   prometheus.DefBuckets,
	})
	m.builderDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "builder_duration_seconds",
		Help:      "Duration of individual product builders.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"builder"})
	m.builderErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "builder_errors_total",
		Help:      "Errors per product builder.",
	}, []string{"builder"})
	m.readerFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "akgolf",
		Subsystem: "insights",
		Name:      "reader_failures_total",
		Help:      "Failed reads from source repositories.",
	}, []string{"reader"})

	return m
}

// RecordBuild records one completed insights build.
func (m *Manager) RecordBuild(d time.Duration, err error) {
	if !m.enabled {
		return
	}
	m.insightsBuilds.Inc()
	m.insightsDuration.Observe(d.Seconds())
	if err != nil {
		m.insightsErrors.Inc()
	}
}

// RecordBuilder records one builder invocation.
func (m *Manager) RecordBuilder(builder string, d time.Duration, err error) {
	if !m.enabled {
		return
	}
	m.builderDuration.WithLabelValues(builder).Observe(d.Seconds())
	if err != nil {
		m.builderErrors.WithLabelValues(builder).Inc()
	}
}

// RecordReaderFailure counts a failed repository read.
func (m *Manager) RecordReaderFailure(reader string) {
	if !m.enabled {
		return
	}
	m.readerFailures.WithLabelValues(reader).Inc()
}
