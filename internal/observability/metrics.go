package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// extraction pipeline.
type Metrics struct {
	FilesProcessed    prometheus.Counter
	FilesFailed       prometheus.Counter
	RecordsExtracted  prometheus.Counter
	SectionsDiscarded prometheus.Counter

	// ExtractErrors is labeled by error kind (insufficient_data,
	// unmatched_command, numeric_extraction, ...).
	ExtractErrors *prometheus.CounterVec

	FileProcessingDuration prometheus.Histogram
	WatcherRunning         prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydro_etl",
			Name:      "files_processed_total",
			Help:      "Total report files successfully processed.",
		}),
		FilesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydro_etl",
			Name:      "files_failed_total",
			Help:      "Total report files that failed extraction.",
		}),
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydro_etl",
			Name:      "records_extracted_total",
			Help:      "Total records extracted across all files.",
		}),
		SectionsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydro_etl",
			Name:      "sections_discarded_total",
			Help:      "Total confluence stub sections discarded without records.",
		}),
		ExtractErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hydro_etl",
			Name:      "extract_errors_total",
			Help:      "Extraction failures by error kind.",
		}, []string{"kind"}),
		FileProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hydro_etl",
			Name:      "file_processing_duration_seconds",
			Help:      "Duration of a complete extract-and-sink cycle per file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}),
		WatcherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hydro_etl",
			Name:      "watcher_running",
			Help:      "1 when the directory watcher is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.FilesProcessed,
		m.FilesFailed,
		m.RecordsExtracted,
		m.SectionsDiscarded,
		m.ExtractErrors,
		m.FileProcessingDuration,
		m.WatcherRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesProcessed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydro_etl", Name: "files_processed_total"}),
		FilesFailed:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydro_etl", Name: "files_failed_total"}),
		RecordsExtracted:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydro_etl", Name: "records_extracted_total"}),
		SectionsDiscarded:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydro_etl", Name: "sections_discarded_total"}),
		ExtractErrors:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hydro_etl", Name: "extract_errors_total"}, []string{"kind"}),
		FileProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "hydro_etl", Name: "file_processing_duration_seconds"}),
		WatcherRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "hydro_etl", Name: "watcher_running"}),
	}
}
