// Package metrics implements ports.MetricsRecorder.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/logodir/internal/ports"
)

// PrometheusRecorder records catalog activity as Prometheus metrics.
type PrometheusRecorder struct {
	searchRequests   *prometheus.CounterVec
	searchResults    prometheus.Histogram
	logoLookups      *prometheus.CounterVec
	snippets         *prometheus.CounterVec
	catalogLoads     *prometheus.CounterVec
	catalogLoadTime  *prometheus.HistogramVec
	catalogLogos     *prometheus.GaugeVec
	assetCacheLookup *prometheus.CounterVec
}

// NewPrometheusRecorder registers the metrics with the default registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	return NewPrometheusRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWithRegistry registers the metrics with reg.
func NewPrometheusRecorderWithRegistry(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		searchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logodir_search_requests_total",
			Help: "Catalog searches by query kind (blank or text)",
		}, []string{"query"}),

		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logodir_search_results",
			Help:    "Number of logos returned per search",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		}),

		logoLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logodir_logo_lookups_total",
			Help: "Logo detail lookups by result",
		}, []string{"result"}),

		snippets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logodir_snippets_generated_total",
			Help: "Code snippets generated by variant",
		}, []string{"variant"}),

		catalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logodir_catalog_loads_total",
			Help: "Catalog loads by source and result",
		}, []string{"source", "result"}),

		catalogLoadTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "logodir_catalog_load_duration_seconds",
			Help:    "Time spent loading the catalog",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),

		catalogLogos: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "logodir_catalog_logos",
			Help: "Logos in the most recently loaded catalog",
		}, []string{"source"}),

		assetCacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logodir_asset_cache_lookups_total",
			Help: "Asset cache lookups by result (hit or miss)",
		}, []string{"result"}),
	}

	reg.MustRegister(
		r.searchRequests,
		r.searchResults,
		r.logoLookups,
		r.snippets,
		r.catalogLoads,
		r.catalogLoadTime,
		r.catalogLogos,
		r.assetCacheLookup,
	)

	return r
}

// RecordSearch implements ports.MetricsRecorder.
func (p *PrometheusRecorder) RecordSearch(blank bool, results int) {
	query := "text"
	if blank {
		query = "blank"
	}

	p.searchRequests.WithLabelValues(query).Inc()
	p.searchResults.Observe(float64(results))
}

// RecordLookup implements ports.MetricsRecorder.
func (p *PrometheusRecorder) RecordLookup(result string) {
	p.logoLookups.WithLabelValues(result).Inc()
}

// RecordSnippet implements ports.MetricsRecorder.
func (p *PrometheusRecorder) RecordSnippet(variant string) {
	p.snippets.WithLabelValues(variant).Inc()
}

// RecordCatalogLoad implements ports.MetricsRecorder. The logo gauge is
// only updated by successful loads.
func (p *PrometheusRecorder) RecordCatalogLoad(source string, logos int, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}

	p.catalogLoads.WithLabelValues(source, result).Inc()
	p.catalogLoadTime.WithLabelValues(source).Observe(duration.Seconds())

	if err == nil {
		p.catalogLogos.WithLabelValues(source).Set(float64(logos))
	}
}

// RecordCacheLookup implements ports.MetricsRecorder.
func (p *PrometheusRecorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	p.assetCacheLookup.WithLabelValues(result).Inc()
}

var _ ports.MetricsRecorder = (*PrometheusRecorder)(nil)
