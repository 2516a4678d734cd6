// Package metrics provides Prometheus metrics collection for the switchbox service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AdmissionsTotal tracks box capacity admission checks by result.
	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_admissions_total",
			Help: "Total number of box capacity admission checks",
		},
		[]string{"result"},
	)

	// BoxCount tracks the number of boxes in the current project.
	BoxCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "project_boxes",
			Help: "Number of boxes in the current project",
		},
	)

	// SummaryGenerationDuration tracks SKU summary generation duration.
	SummaryGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_generation_duration_seconds",
			Help:    "SKU summary generation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// CatalogSearchesTotal tracks catalog searches.
	CatalogSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
	)

	// CatalogSearchDuration tracks catalog search duration.
	CatalogSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_search_duration_seconds",
			Help:    "Catalog search duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// CacheOperationsTotal tracks search cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAdmission records the result of a capacity admission check.
func RecordAdmission(result string) {
	AdmissionsTotal.WithLabelValues(result).Inc()
}

// UpdateBoxCount updates the project box gauge.
func UpdateBoxCount(count int) {
	BoxCount.Set(float64(count))
}

// RecordSummaryGeneration records metrics for a summary generation pass.
func RecordSummaryGeneration(duration time.Duration) {
	SummaryGenerationDuration.Observe(duration.Seconds())
}

// RecordCatalogSearch records metrics for a catalog search.
func RecordCatalogSearch(duration time.Duration) {
	CatalogSearchesTotal.Inc()
	CatalogSearchDuration.Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a search cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
