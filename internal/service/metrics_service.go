package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	rebuildDuration prometheus.Histogram
	rebuildTotal    prometheus.Counter
	catalogSize     *prometheus.GaugeVec

	searchTotal prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetricsService registers all collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	s := &MetricsService{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		rebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_rebuild_duration_seconds",
			Help:    "Latency of full catalog snapshot rebuilds.",
			Buckets: prometheus.DefBuckets,
		}),
		rebuildTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_rebuilds_total",
			Help: "Number of catalog snapshot rebuilds.",
		}),
		catalogSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "catalog_holidays",
			Help: "Holidays in the current catalog snapshot per locale.",
		}, []string{"locale"}),
		searchTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Number of holiday search queries served.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Catalog cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Catalog cache misses.",
		}),
	}

	registry.MustRegister(
		s.requestDuration, s.requestTotal,
		s.rebuildDuration, s.rebuildTotal, s.catalogSize,
		s.searchTotal, s.cacheHits, s.cacheMisses,
	)
	s.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return s
}

// Handler serves the /metrics scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	s.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, path, code).Inc()
}

// ObserveCatalogRebuild records a completed snapshot build.
func (s *MetricsService) ObserveCatalogRebuild(locale string, holidays int, duration time.Duration) {
	s.rebuildTotal.Inc()
	s.rebuildDuration.Observe(duration.Seconds())
	s.catalogSize.WithLabelValues(locale).Set(float64(holidays))
}

// RecordSearch counts one search query.
func (s *MetricsService) RecordSearch() {
	s.searchTotal.Inc()
}

// RecordCacheOperation counts a cache hit or miss.
func (s *MetricsService) RecordCacheOperation(hit bool) {
	if hit {
		s.cacheHits.Inc()
		return
	}
	s.cacheMisses.Inc()
}
