package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmstrip_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Preview generation metrics
var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_generations_total",
			Help: "Total number of preview generations",
		},
		[]string{"media", "status"}, // media: "image"/"video", status: "ok"/"failed"
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmstrip_generation_duration_seconds",
			Help:    "Preview generation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"media"},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_generation_failures_total",
			Help: "Total number of preview generations absorbed into a placeholder",
		},
		[]string{"kind"}, // "video_unplayable", "image_unloadable", "other"
	)
)

// Preview cache metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmstrip_cache_hits_total",
			Help: "Total number of preview cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmstrip_cache_misses_total",
			Help: "Total number of preview cache misses",
		},
	)

	CacheStores = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmstrip_cache_stores_total",
			Help: "Total number of rasters written to the preview cache",
		},
	)

	CacheBackendInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filmstrip_cache_backend_info",
			Help: "Configured preview cache backend",
		},
		[]string{"backend"},
	)

	CacheDiskUsageBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_cache_disk_usage_bytes",
			Help: "Total size of the on-disk preview cache in bytes",
		},
	)
)

// Media library metrics
var (
	MediaFilesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filmstrip_media_files_total",
			Help: "Total number of media files in the library by type",
		},
		[]string{"type"},
	)
)

// Filesystem retry metrics. These track NFS stale-handle recovery in the
// filesystem package; op is "stat" or "open".
var (
	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_filesystem_retry_attempts_total",
			Help: "Total number of filesystem operation retries",
		},
		[]string{"op"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_filesystem_retry_success_total",
			Help: "Total number of filesystem operations that succeeded after retrying",
		},
		[]string{"op"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_filesystem_retry_failures_total",
			Help: "Total number of filesystem operations that exhausted their retry budget",
		},
		[]string{"op"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstrip_filesystem_stale_errors_total",
			Help: "Total number of NFS stale file handle errors observed",
		},
		[]string{"op"},
	)

	FilesystemRetryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmstrip_filesystem_retry_duration_seconds",
			Help:    "Total duration of filesystem operations including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"op"},
	)
)

// Asynchronous request metrics
var (
	AsyncRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_async_requests_in_flight",
			Help: "Number of asynchronous preview requests not yet published",
		},
	)
)

// Batch prewarm metrics
var (
	PrewarmFilesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filmstrip_prewarm_files",
			Help: "Number of files in the last prewarm run by outcome",
		},
		[]string{"status"}, // "generated", "failed", "skipped"
	)

	PrewarmLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_prewarm_last_run_duration_seconds",
			Help: "Duration of the last prewarm run in seconds",
		},
	)
)

// Memory pressure metrics, driven by the monitor in internal/memory
// while batch rendering is underway.
var (
	MemoryUsageRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_memory_usage_ratio",
			Help: "Heap in use as a fraction of the configured memory limit",
		},
	)

	MemoryPaused = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstrip_memory_paused",
			Help: "1 while rendering is paused for memory pressure",
		},
	)

	MemoryGCPauses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmstrip_memory_gc_pauses_total",
			Help: "Times rendering was paused for memory pressure and a GC forced",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filmstrip_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// SetCacheBackend records which cache backend the process is running.
func SetCacheBackend(backend string) {
	CacheBackendInfo.WithLabelValues(backend).Set(1)
}
