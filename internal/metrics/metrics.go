// Package metrics provides Prometheus metrics collection for the maps cache service.
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

	// CacheLookupsTotal counts cache reads by namespace and result (hit, miss, expired).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_cache_lookups_total",
			Help: "Total number of cache lookups",
		},
		[]string{"namespace", "result"},
	)

	// CacheWritesTotal counts cache writes by namespace.
	CacheWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_cache_writes_total",
			Help: "Total number of cache writes",
		},
		[]string{"namespace"},
	)

	// CacheEntries tracks the number of entries per namespace.
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "maps_cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"namespace"},
	)

	// CacheBytes tracks the serialized size per namespace.
	CacheBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "maps_cache_size_bytes",
			Help: "Serialized size of cache entries in bytes",
		},
		[]string{"namespace"},
	)

	// CacheSweepRemovedTotal counts entries removed by expiry sweeps.
	CacheSweepRemovedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_cache_sweep_removed_total",
			Help: "Total number of expired entries removed by sweeps",
		},
		[]string{"namespace"},
	)

	// PersistenceWritesTotal counts durable writes by slot and result.
	PersistenceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_cache_persistence_writes_total",
			Help: "Total number of slot writes to durable storage",
		},
		[]string{"slot", "result"},
	)

	// ProviderRequestsTotal counts map provider calls by operation and status.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_provider_requests_total",
			Help: "Total number of map provider requests",
		},
		[]string{"operation", "status"},
	)

	// ProviderRequestDuration tracks map provider latency by operation.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maps_provider_request_duration_seconds",
			Help:    "Map provider request duration in seconds",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// BootstrapState is 0 uninitialized, 1 waiting, 2 ready, per client.
	BootstrapState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "maps_provider_bootstrap_state",
			Help: "Provider client bootstrap state (0 uninitialized, 1 waiting, 2 ready)",
		},
		[]string{"client"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCacheLookup records a cache read.
func RecordCacheLookup(namespace, result string) {
	CacheLookupsTotal.WithLabelValues(namespace, result).Inc()
}

// RecordCacheWrite records a cache write.
func RecordCacheWrite(namespace string) {
	CacheWritesTotal.WithLabelValues(namespace).Inc()
}

// RecordSweep records entries removed from a namespace by a sweep.
func RecordSweep(namespace string, removed int) {
	if removed > 0 {
		CacheSweepRemovedTotal.WithLabelValues(namespace).Add(float64(removed))
	}
}

// UpdateCacheMetrics sets the entry count and byte size of a namespace.
func UpdateCacheMetrics(namespace string, count, sizeBytes int) {
	CacheEntries.WithLabelValues(namespace).Set(float64(count))
	CacheBytes.WithLabelValues(namespace).Set(float64(sizeBytes))
}

// RecordPersistence records one slot write.
func RecordPersistence(slot string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	PersistenceWritesTotal.WithLabelValues(slot, result).Inc()
}

// RecordProviderRequest records a provider call outcome and latency.
func RecordProviderRequest(operation, status string, duration time.Duration) {
	ProviderRequestsTotal.WithLabelValues(operation, status).Inc()
	ProviderRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetBootstrapState records the bootstrap state of a provider client.
func SetBootstrapState(client string, state int) {
	BootstrapState.WithLabelValues(client).Set(float64(state))
}

// SetCircuitBreakerState records a breaker state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
