package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// query pipeline and its collaborators.
type Metrics struct {
	QueriesTotal    *prometheus.CounterVec // label: data_type
	UpstreamErrors  prometheus.Counter
	UpstreamLatency prometheus.Histogram

	CacheLookups    *prometheus.CounterVec // label: result={hit,miss}
	GeocodeRequests *prometheus.CounterVec // label: outcome={success,not_found,error}

	AnalyticsPublishErrors prometheus.Counter
	GeminiEnabled          prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.QueriesTotal,
		m.UpstreamErrors,
		m.UpstreamLatency,
		m.CacheLookups,
		m.GeocodeRequests,
		m.AnalyticsPublishErrors,
		m.GeminiEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floatchat",
			Name:      "queries_total",
			Help:      "Completed chat queries by classified data type.",
		}, []string{"data_type"}),
		UpstreamErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floatchat",
			Name:      "upstream_errors_total",
			Help:      "Text-generation calls that failed or returned an unusable payload.",
		}),
		UpstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "floatchat",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of text-generation API requests.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floatchat",
			Name:      "cache_lookups_total",
			Help:      "Dataset cache lookups by result.",
		}, []string{"result"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floatchat",
			Name:      "geocode_requests_total",
			Help:      "Geocoding requests by outcome.",
		}, []string{"outcome"}),
		AnalyticsPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floatchat",
			Name:      "analytics_publish_errors_total",
			Help:      "Query analytics events that could not be published.",
		}),
		GeminiEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floatchat",
			Name:      "gemini_enabled",
			Help:      "1 when the Gemini text-generation backend is configured, 0 otherwise.",
		}),
	}
}
