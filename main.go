package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/filesystem"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/handlers"
	"filmstrip/internal/logging"
	"filmstrip/internal/memory"
	"filmstrip/internal/metrics"
	"filmstrip/internal/middleware"
	"filmstrip/internal/raster"
	"filmstrip/internal/startup"
	"filmstrip/internal/video"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Size the heap before anything allocates in earnest
	memory.ConfigureFromEnv()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Image pipeline: libvips when available, pure Go decoders otherwise
	raster.InitVips()
	startup.LogRasterInit(raster.VipsEnabled())

	// Video pipeline: a missing toolchain degrades to placeholders
	startup.LogVideoInit()

	// Preview cache
	cacheStart := time.Now()
	previewCache, releaseCache, err := cache.Open(context.Background(), config.CacheConfig())
	if err != nil {
		startup.LogFatal("Failed to open preview cache: %v", err)
	}
	startup.LogCacheInit(config.CacheBackend, time.Since(cacheStart))

	// Route filesystem retry telemetry into Prometheus
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	// Rendering pipeline and handlers
	generator := filmstrip.New(video.FFmpeg{}, raster.FileDecoder{}, previewCache)
	h := handlers.New(generator, video.FFmpeg{}, previewCache, config)

	// Setup router
	router := setupRouter(h, config.MetricsEnabled)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	// Library stats collector
	collector := metrics.NewCollector(metrics.NewLibraryProvider(config.MediaDir), config.StatsInterval)
	switch config.CacheBackend {
	case "disk", "sqlite", "badger":
		collector.SetCacheDir(config.CacheDir)
	}
	collector.Start()
	startup.LogCollectorInit(config.StatsInterval)

	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	metrics.SetCacheBackend(config.CacheBackend)
	metrics.InitializeMetrics()

	// Apply metrics middleware, then logging outermost
	handler := middleware.Metrics(middleware.DefaultMetricsConfig())(router)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler = middleware.Logger(loggingConfig)(handler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	// Start graceful shutdown handler
	done := make(chan struct{})
	go handleShutdown(srv, collector, releaseCache, done)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}

	// Wait for the shutdown sequence to release the cache and image pipeline
	<-done
}

func setupRouter(h *handlers.Handlers, metricsEnabled bool) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	if metricsEnabled {
		r.Handle("/metrics", h.MetricsHandler()).Methods("GET")
	}

	// Preview API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/preview/{path:.*}", h.GetPreview).Methods("GET")
	api.HandleFunc("/preview-info/{path:.*}", h.GetPreviewInfo).Methods("GET")

	return r
}

func handleShutdown(srv *http.Server, collector *metrics.Collector, releaseCache func(), done chan<- struct{}) {
	defer close(done)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Stopping stats collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Stats collector stopped")

	// Drain requests before tearing down what they depend on
	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownStep("Releasing preview cache")
	releaseCache()
	startup.LogShutdownStepComplete("Preview cache released")

	startup.LogShutdownStep("Shutting down image pipeline")
	raster.ShutdownVips()
	startup.LogShutdownStepComplete("Image pipeline stopped")

	startup.LogShutdownComplete()
}
