// Package metrics provides Prometheus instrumentation for the filmstrip
// service.
//
// This package defines and exposes various metrics that can be scraped by
// Prometheus to monitor the health, performance, and behavior of the
// application. All metrics are prefixed with "filmstrip_" to avoid naming
// collisions with other applications.
//
// # Metric Categories
//
// The metrics are organized into the following categories:
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Preview Generation Metrics
//
// Monitor filmstrip and image preview generation:
//   - GenerationsTotal: Counter by media type (image/video) and status (ok/failed)
//   - GenerationDuration: Histogram of generation time by media type
//   - GenerationFailures: Counter of failures absorbed into placeholders, by kind
//
// ## Preview Cache Metrics
//
// Monitor cache effectiveness:
//   - CacheHits: Counter of cache hits
//   - CacheMisses: Counter of cache misses
//   - CacheStores: Counter of rasters committed to the cache
//   - CacheBackendInfo: Gauge labelled with the configured backend
//   - CacheDiskUsageBytes: Gauge of on-disk cache size
//
// ## Media Library Metrics
//
// Track media library contents:
//   - MediaFilesTotal: Gauge of files by type (image/video)
//
// ## Asynchronous Request Metrics
//
//   - AsyncRequestsInFlight: Gauge of async preview requests not yet published
//
// ## Prewarm Metrics
//
//   - PrewarmFilesTotal: Gauge of files by outcome from the last prewarm run
//   - PrewarmLastRunDuration: Gauge of the last prewarm run duration
//
// ## Memory Pressure Metrics
//
// Driven by the monitor in internal/memory while batch rendering runs:
//   - MemoryUsageRatio: Gauge of heap in use over the configured limit
//   - MemoryPaused: Gauge set to 1 while rendering is paused
//   - MemoryGCPauses: Counter of pause events (each forces a GC)
//
// ## Application Info
//
// Expose build information:
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// using promauto. To expose them, mount the promhttp.Handler() on your
// metrics endpoint:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// # Recording Metrics
//
// To record metrics from other packages, import this package and use the
// exported metric variables:
//
//	import "filmstrip/internal/metrics"
//
//	// Increment a counter
//	metrics.CacheHits.Inc()
//
//	// Observe a histogram value
//	metrics.GenerationDuration.WithLabelValues("video").Observe(1.25)
//
// # Collector
//
// The package provides a [Collector] type that periodically gathers
// statistics from a [StatsProvider] and updates the corresponding gauges.
// [LibraryProvider] is the standard provider, walking the media root and
// counting files by type:
//
//	collector := metrics.NewCollector(metrics.NewLibraryProvider(mediaDir), 5*time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// # Prometheus Queries
//
// Example PromQL queries for common use cases:
//
// Request rate by endpoint:
//
//	sum(rate(filmstrip_http_requests_total[5m])) by (path)
//
// P95 generation time for videos:
//
//	histogram_quantile(0.95, sum(rate(filmstrip_generation_duration_seconds_bucket{media="video"}[5m])) by (le))
//
// Cache hit rate:
//
//	rate(filmstrip_cache_hits_total[5m]) /
//	(rate(filmstrip_cache_hits_total[5m]) + rate(filmstrip_cache_misses_total[5m]))
//
// Placeholder rate by failure kind:
//
//	sum(rate(filmstrip_generation_failures_total[5m])) by (kind)
package metrics
