package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	BatchesConsumed prometheus.Counter
	RecordsProduced prometheus.Counter
	TransformErrors prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Parse quality metrics. Failures here are per-record degradations,
	// not pipeline errors: the record still flows downstream.
	DTGParseFailures prometheus.Counter
	UnrecognizedIDs  prometheus.Counter

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	SegmentsPerBatch        prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		BatchesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "batches_consumed_total",
			Help:      "Total raw bulletin batches read from the source topic.",
		}),
		RecordsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "records_produced_total",
			Help:      "Total structured records written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "transform_errors_total",
			Help:      "Total transformation failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "navwarn_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		DTGParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "dtg_parse_failures_total",
			Help:      "Records with a standalone DTG line that failed to parse.",
		}),
		UnrecognizedIDs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "unrecognized_ids_total",
			Help:      "Records with no recognizable message identifier.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "navwarn_etl",
			Name:      "batch_size",
			Help:      "Number of raw events per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		SegmentsPerBatch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "navwarn_etl",
			Name:      "segments_per_batch",
			Help:      "Number of messages segmented out of one raw bulletin batch.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "navwarn_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "navwarn_etl",
			Name:      "geocode_cache_total",
			Help:      "Reverse geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "navwarn_etl",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "navwarn_etl",
			Name:      "geocode_enabled",
			Help:      "1 when geocoding enrichment is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.BatchesConsumed,
		m.RecordsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.DTGParseFailures,
		m.UnrecognizedIDs,
		m.BatchSize,
		m.SegmentsPerBatch,
		m.BatchProcessingDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		BatchesConsumed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "batches_consumed_total"}),
		RecordsProduced:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "records_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "navwarn_etl", Name: "pipeline_running"}),
		DTGParseFailures:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "dtg_parse_failures_total"}),
		UnrecognizedIDs:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "unrecognized_ids_total"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "navwarn_etl", Name: "batch_size"}),
		SegmentsPerBatch:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "navwarn_etl", Name: "segments_per_batch"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "navwarn_etl", Name: "batch_processing_duration_seconds"}),
		GeocodeRequests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "navwarn_etl", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "navwarn_etl", Name: "geocode_api_duration_seconds"}),
		GeocodeEnabled:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "navwarn_etl", Name: "geocode_enabled"}),
	}
}
