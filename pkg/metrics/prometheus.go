// Package metrics provides Prometheus metrics for the statprep pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a pipeline run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Pipeline volume metrics
	rowsFetched   prometheus.Counter
	rowsRejected  *prometheus.CounterVec
	playersTiered *prometheus.CounterVec

	// Pipeline latency metrics
	fetchDuration    prometheus.Histogram
	csvWriteDuration *prometheus.HistogramVec

	// Run bookkeeping
	lastRunUnix prometheus.Gauge
	runFailures prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "statprep",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.rowsFetched = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_fetched_total",
		Help:      "Raw player rows returned by the stats provider.",
	})
	m.rowsRejected = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_rejected_total",
		Help:      "Rows dropped during filtering and coercion, by reason.",
	}, []string{"reason"})
	m.playersTiered = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_tiered_total",
		Help:      "Processed players by assigned tier.",
	}, []string{"tier"})

	m.fetchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_seconds",
		Help:      "Duration of the remote season stats fetch.",
		Buckets:   m.histogramBuckets,
	})
	m.csvWriteDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "csv_write_duration_seconds",
		Help:      "Duration of CSV file writes, by output file.",
		Buckets:   m.histogramBuckets,
	}, []string{"file"})

	m.lastRunUnix = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_unix",
		Help:      "Unix timestamp of the last completed run.",
	})
	m.runFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_failures_total",
		Help:      "Pipeline runs that aborted with an error.",
	})
}

// RecordRowsFetched adds to the fetched row counter.
func (m *Manager) RecordRowsFetched(n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.rowsFetched.Add(float64(n))
}

// RecordRowRejected counts a dropped row by rejection reason.
func (m *Manager) RecordRowRejected(reason string) {
	if !m.enabled {
		return
	}
	m.rowsRejected.WithLabelValues(reason).Inc()
}

// RecordPlayerTiered counts a processed player by tier.
func (m *Manager) RecordPlayerTiered(tier string) {
	if !m.enabled {
		return
	}
	m.playersTiered.WithLabelValues(tier).Inc()
}

// ObserveFetchDuration records the provider fetch latency.
func (m *Manager) ObserveFetchDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.fetchDuration.Observe(d.Seconds())
}

// ObserveCSVWriteDuration records a CSV write latency for the named file.
func (m *Manager) ObserveCSVWriteDuration(file string, d time.Duration) {
	if !m.enabled {
		return
	}
	m.csvWriteDuration.WithLabelValues(file).Observe(d.Seconds())
}

// SetLastRun marks the completion time of a run.
func (m *Manager) SetLastRun(t time.Time) {
	if !m.enabled {
		return
	}
	m.lastRunUnix.Set(float64(t.Unix()))
}

// RecordRunFailure counts an aborted run.
func (m *Manager) RecordRunFailure() {
	if !m.enabled {
		return
	}
	m.runFailures.Inc()
}

// Registry returns the registry backing the global manager, for embedding
// processes that want to expose or inspect the metrics.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers that delegate to the global manager.

// RecordRowsFetched adds to the fetched row counter.
func RecordRowsFetched(n int) { globalManager.RecordRowsFetched(n) }

// RecordRowRejected counts a dropped row by rejection reason.
func RecordRowRejected(reason string) { globalManager.RecordRowRejected(reason) }

// RecordPlayerTiered counts a processed player by tier.
func RecordPlayerTiered(tier string) { globalManager.RecordPlayerTiered(tier) }

// ObserveFetchDuration records the provider fetch latency.
func ObserveFetchDuration(d time.Duration) { globalManager.ObserveFetchDuration(d) }

// ObserveCSVWriteDuration records a CSV write latency for the named file.
func ObserveCSVWriteDuration(file string, d time.Duration) {
	globalManager.ObserveCSVWriteDuration(file, d)
}

// SetLastRun marks the completion time of a run.
func SetLastRun(t time.Time) { globalManager.SetLastRun(t) }

// RecordRunFailure counts an aborted run.
func RecordRunFailure() { globalManager.RecordRunFailure() }
