// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// This package centralizes all application configuration and provides consistent
// logging throughout the application lifecycle.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - MEDIA_DIR: Path to media directory (default: /media)
//   - PORT: HTTP server port (default: 8080)
//   - CACHE_BACKEND: Preview cache backend - memory, disk, sqlite, redis, badger, off (default: disk)
//   - CACHE_DIR: Root directory for disk-backed caches (default: /cache)
//   - CACHE_DB_PATH: SQLite cache database file (default: CACHE_DIR/previews.db)
//   - CACHE_TTL: Redis entry lifetime as Go duration (default: 24h)
//   - CACHE_MAX_ENTRIES: Memory cache entry bound (default: 512)
//   - REDIS_ADDR: Redis server address (default: localhost:6379)
//   - REDIS_PASSWORD: Redis auth, never logged
//   - REDIS_DB: Redis database number (default: 0)
//   - PREVIEW_ROWS: Default filmstrip rows (default: 3)
//   - PREVIEW_COLS: Default filmstrip columns (default: 3)
//   - STILL_WIDTH: Default tile width in pixels (default: 320)
//   - STILL_HEIGHT: Default tile height in pixels (default: 180)
//   - STATS_INTERVAL: Library stats collection interval as Go duration (default: 5m)
//   - METRICS_ENABLED: Expose the Prometheus endpoint (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: false)
//
// # Directory Setup
//
// The package validates and creates required directories:
//   - Cache directory: Required and must be writable for the disk, sqlite
//     and badger backends; untouched for memory, redis and off
//   - Media directory: Checked but only warned about (should be mounted)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
// The package provides structured logging functions for consistent output:
//   - [LogRasterInit]: Image decoding pipeline selection
//   - [LogVideoInit]: FFmpeg and FFprobe availability
//   - [LogCacheInit]: Preview cache backend and initialization timing
//   - [LogCollectorInit]: Stats collector interval
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	// Initialize components...
//	startup.LogCacheInit(config.CacheBackend, cacheInitDuration)
//	startup.LogVideoInit()
//
//	// Start server...
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
//
//	// On shutdown...
//	startup.LogShutdownInitiated("SIGTERM")
//	// ... cleanup ...
//	startup.LogShutdownComplete()
package startup
