package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/logging"
	"filmstrip/internal/video"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds all application configuration
type Config struct {
	MediaDir        string
	Port            string
	LogHealthChecks bool
	MetricsEnabled  bool
	StatsInterval   time.Duration

	// Preview cache
	CacheBackend    string
	CacheDir        string
	CacheDBPath     string
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	// Rendering defaults for requests that do not override them
	PreviewRows int
	PreviewCols int
	StillWidth  int
	StillHeight int

	// Derived paths
	DiskCacheDir string
	BadgerDir    string
}

// CacheConfig translates the loaded configuration into the cache
// factory's terms. Disk and badger keep separate subdirectories so
// switching backends never mixes file layouts.
func (c *Config) CacheConfig() cache.Config {
	dir := c.DiskCacheDir
	if c.CacheBackend == "badger" {
		dir = c.BadgerDir
	}
	return cache.Config{
		Backend:       c.CacheBackend,
		Dir:           dir,
		DBPath:        c.CacheDBPath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		TTL:           c.CacheTTL,
		MaxEntries:    c.CacheMaxEntries,
	}
}

// CacheEnabled reports whether a cache backend is configured at all.
func (c *Config) CacheEnabled() bool {
	switch c.CacheBackend {
	case "", "off", "none":
		return false
	}
	return true
}

// PreviewOptions returns the configured default rendering options. The
// HTTP handlers and the prewarm CLI both start from these, so cache
// entries written by one are readable by the other.
func (c *Config) PreviewOptions() filmstrip.Options {
	return filmstrip.Options{
		Grid:  filmstrip.GridShape{Rows: c.PreviewRows, Columns: c.PreviewCols},
		Still: filmstrip.StillSize{Width: c.StillWidth, Height: c.StillHeight},
	}
}

// validBackends lists every CACHE_BACKEND value LoadConfig accepts.
var validBackends = map[string]bool{
	"":       true,
	"off":    true,
	"none":   true,
	"memory": true,
	"disk":   true,
	"sqlite": true,
	"redis":  true,
	"badger": true,
}

// needsLocalDir reports whether a backend stores its data under CACHE_DIR.
func needsLocalDir(backend string) bool {
	switch backend {
	case "disk", "sqlite", "badger":
		return true
	}
	return false
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	mediaDir := getEnv("MEDIA_DIR", "/media")
	port := getEnv("PORT", "8080")
	cacheBackend := strings.ToLower(getEnv("CACHE_BACKEND", "disk"))
	cacheDir := getEnv("CACHE_DIR", "/cache")
	cacheDBPath := getEnv("CACHE_DB_PATH", "")
	cacheTTL := getEnvDuration("CACHE_TTL", 24*time.Hour)
	cacheMaxEntries := getEnvInt("CACHE_MAX_ENTRIES", 512)
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)
	previewRows := getEnvInt("PREVIEW_ROWS", 3)
	previewCols := getEnvInt("PREVIEW_COLS", 3)
	stillWidth := getEnvInt("STILL_WIDTH", 320)
	stillHeight := getEnvInt("STILL_HEIGHT", 180)
	statsInterval := getEnvDuration("STATS_INTERVAL", 5*time.Minute)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", false)
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)

	if !validBackends[cacheBackend] {
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q (valid: memory, disk, sqlite, redis, badger, off)", cacheBackend)
	}

	logging.Info("  MEDIA_DIR:           %s", mediaDir)
	logging.Info("  PORT:                %s", port)
	logging.Info("  CACHE_BACKEND:       %s", displayBackend(cacheBackend))
	switch cacheBackend {
	case "disk", "badger":
		logging.Info("  CACHE_DIR:           %s", cacheDir)
	case "sqlite":
		logging.Info("  CACHE_DIR:           %s", cacheDir)
		if cacheDBPath != "" {
			logging.Info("  CACHE_DB_PATH:       %s", cacheDBPath)
		}
	case "redis":
		logging.Info("  REDIS_ADDR:          %s", redisAddr)
		logging.Info("  REDIS_DB:            %d", redisDB)
		logging.Info("  CACHE_TTL:           %s", cacheTTL)
	case "memory":
		logging.Info("  CACHE_MAX_ENTRIES:   %d", cacheMaxEntries)
	}
	logging.Info("  PREVIEW_ROWS:        %d", previewRows)
	logging.Info("  PREVIEW_COLS:        %d", previewCols)
	logging.Info("  STILL_WIDTH:         %d", stillWidth)
	logging.Info("  STILL_HEIGHT:        %d", stillHeight)
	logging.Info("  STATS_INTERVAL:      %s", statsInterval)
	logging.Info("  METRICS_ENABLED:     %v", metricsEnabled)
	logging.Info("  LOG_HEALTH_CHECKS:   %v", logHealthChecks)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())

	if previewRows < 1 {
		logging.Warn("  Invalid PREVIEW_ROWS, using default: 3")
		previewRows = 3
	}
	if previewCols < 1 {
		logging.Warn("  Invalid PREVIEW_COLS, using default: 3")
		previewCols = 3
	}
	if stillWidth < 1 {
		logging.Warn("  Invalid STILL_WIDTH, using default: 320")
		stillWidth = 320
	}
	if stillHeight < 1 {
		logging.Warn("  Invalid STILL_HEIGHT, using default: 180")
		stillHeight = 180
	}

	// Resolve paths
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	mediaDir, err := filepath.Abs(mediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media directory path: %w", err)
	}
	logging.Info("  Media directory (absolute): %s", mediaDir)

	cacheDir, err = filepath.Abs(cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory path: %w", err)
	}
	if needsLocalDir(cacheBackend) {
		logging.Info("  Cache directory (absolute): %s", cacheDir)
	}

	// Check media directory (warning only; it should be mounted)
	if err := ensureDirectory(mediaDir, "media"); err != nil {
		logging.Warn("  Media directory issue: %v", err)
	}

	if cacheDBPath == "" {
		cacheDBPath = filepath.Join(cacheDir, "previews.db")
	}

	config := &Config{
		MediaDir:        mediaDir,
		Port:            port,
		LogHealthChecks: logHealthChecks,
		MetricsEnabled:  metricsEnabled,
		StatsInterval:   statsInterval,
		CacheBackend:    cacheBackend,
		CacheDir:        cacheDir,
		CacheDBPath:     cacheDBPath,
		CacheTTL:        cacheTTL,
		CacheMaxEntries: cacheMaxEntries,
		RedisAddr:       redisAddr,
		RedisPassword:   redisPassword,
		RedisDB:         redisDB,
		PreviewRows:     previewRows,
		PreviewCols:     previewCols,
		StillWidth:      stillWidth,
		StillHeight:     stillHeight,
		DiskCacheDir:    filepath.Join(cacheDir, "previews"),
		BadgerDir:       filepath.Join(cacheDir, "badger"),
	}

	// Backends that persist locally need a writable cache directory
	if needsLocalDir(cacheBackend) {
		if err := ensureDirectory(cacheDir, "cache"); err != nil {
			return nil, fmt.Errorf("cache directory error: %w", err)
		}

		logging.Debug("  Testing cache directory write access...")
		if err := testWriteAccess(cacheDir); err != nil {
			return nil, fmt.Errorf("cache directory is not writable (required for %s backend): %w", cacheBackend, err)
		}
		logging.Info("  [OK] Cache directory is writable")
	}

	// Summary
	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Preview cache: %s", cacheSummary(config))
	logging.Info("    Metrics:       %s", enabledString(config.MetricsEnabled))

	return config, nil
}

func displayBackend(backend string) string {
	if backend == "" {
		return "off"
	}
	return backend
}

func cacheSummary(config *Config) string {
	if !config.CacheEnabled() {
		return "DISABLED"
	}
	return fmt.Sprintf("ENABLED (%s)", config.CacheBackend)
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogRasterInit logs which image decoding pipeline is active
func LogRasterInit(vipsEnabled bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("IMAGE PIPELINE")
	logging.Info("------------------------------------------------------------")

	if vipsEnabled {
		logging.Info("  [OK] libvips accelerated decoding enabled")
	} else {
		logging.Info("  libvips unavailable, using pure-Go decoding")
	}
}

// LogVideoInit logs frame extraction tooling availability and checks FFmpeg
func LogVideoInit() {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("VIDEO PIPELINE")
	logging.Info("------------------------------------------------------------")

	if err := video.Available(); err != nil {
		logging.Warn("  FFmpeg check failed: %v", err)
		logging.Warn("  Video previews will render as placeholders")
		return
	}

	logging.Info("  [OK] ffmpeg and ffprobe are available")
}

// LogCacheInit logs preview cache initialization
func LogCacheInit(backend string, duration time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("CACHE INITIALIZATION")
	logging.Info("------------------------------------------------------------")

	switch backend {
	case "", "off", "none":
		logging.Info("  Preview cache disabled")
		logging.Info("  Every request renders from the source file")
	default:
		logging.Info("  [OK] %s cache ready in %v", backend, duration)
	}
}

// LogCollectorInit logs stats collector startup
func LogCollectorInit(interval time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("STATS COLLECTOR")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Collection interval: %v", interval)
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			// Route might not have methods specified (e.g., the metrics handler)
			methods = []string{"*"}
		}

		name := route.GetName()

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   name,
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes dynamically
func LogHTTPRoutes(router *mux.Router, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}

		logging.Debug("  Registered routes (%d total):", len(routes))
		logging.Debug("")

		// Group routes by prefix for cleaner output
		groups := make(map[string][]RouteInfo)
		for _, route := range routes {
			prefix := getRouteGroup(route.Path)
			groups[prefix] = append(groups[prefix], route)
		}

		// Sort group keys
		groupKeys := make([]string, 0, len(groups))
		for k := range groups {
			groupKeys = append(groupKeys, k)
		}
		sort.Strings(groupKeys)

		// Print routes by group
		for _, group := range groupKeys {
			groupRoutes := groups[group]
			if group != "" {
				logging.Debug("  [%s]", group)
			} else {
				logging.Debug("  [root]")
			}

			for _, route := range groupRoutes {
				methodPadded := fmt.Sprintf("%-6s", route.Method)
				logging.Debug("    %s %s", methodPadded, route.Path)
			}
			logging.Debug("")
		}
	}

	logging.Info("  HTTP logging enabled")
	if logHealthChecks {
		logging.Info("    Health check logging: ON")
	} else {
		logging.Info("    Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// getRouteGroup extracts a group name from a route path
func getRouteGroup(path string) string {
	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Get first segment
	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 0 {
		return ""
	}

	first := parts[0]

	// Special handling for API routes
	if first == "api" && len(parts) > 1 {
		subParts := strings.SplitN(parts[1], "/", 2)
		return "api/" + subParts[0]
	}

	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Previews:      http://0.0.0.0:%s/api/preview/", config.Port)
	logging.Info("    Health:        http://0.0.0.0:%s/healthz", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.Port)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Local access:")
	logging.Info("    Previews:      http://localhost:%s/api/preview/", config.Port)
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// Helper functions

func printBanner() {
	banner := `
------------------------------------------------------------
    ______ _ __                 __       _
   / ____/(_) /___ ___   _____ / /______(_)___
  / /_   / / / __ '__ \ / ___// __/ ___/ / __ \
 / __/  / / / / / / / /(__  )/ /_/ /  / / /_/ /
/_/    /_/_/_/ /_/ /_//____/ \__/_/  /_/ .___/
                                      /_/
------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		logging.Info("  (Container CPU limit detected)")
	}

	if logging.IsDebugEnabled() {
		logging.Debug("  Goroutines:      %d", runtime.NumGoroutine())

		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}

		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

func ensureDirectory(path, name string) error {
	logging.Debug("  Checking %s directory: %s", name, path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		logging.Debug("    Directory does not exist, creating...")
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		logging.Debug("    [OK] Created directory: %s", path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	logging.Debug("    [OK] Directory exists")

	if name == "media" && logging.IsDebugEnabled() {
		entries, err := os.ReadDir(path)
		if err == nil {
			fileCount := 0
			dirCount := 0
			for _, e := range entries {
				if e.IsDir() {
					dirCount++
				} else {
					fileCount++
				}
			}
			logging.Debug("    Contents: %d files, %d directories (top level)", fileCount, dirCount)
		}
	}

	return nil
}

func testWriteAccess(dir string) error {
	testFile := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(testFile); err != nil {
		logging.Warn("failed to remove write test file %s: %v", testFile, err)
		// Don't return error since write access was confirmed
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logging.Warn("Invalid duration value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
