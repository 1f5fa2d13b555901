package raster

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"filmstrip/internal/logging"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/disintegration/imaging"
)

var (
	vipsMu          sync.Mutex
	vipsInitialized bool
	vipsEnabled     bool
)

// vipsThreshold maps the application log level to the lowest vips level
// worth forwarding.
func vipsThreshold(appLevel logging.Level) vips.LogLevel {
	switch appLevel {
	case logging.LevelDebug:
		return vips.LogLevelInfo
	case logging.LevelInfo:
		return vips.LogLevelWarning
	case logging.LevelWarn:
		return vips.LogLevelError
	default:
		return vips.LogLevelCritical
	}
}

func forwardVipsLog(domain string, level vips.LogLevel, msg string) {
	switch level {
	case vips.LogLevelError, vips.LogLevelCritical:
		logging.Error("[%s] %s", domain, msg)
	case vips.LogLevelWarning:
		logging.Warn("[%s] %s", domain, msg)
	default:
		logging.Debug("[%s] %s", domain, msg)
	}
}

// InitVips starts libvips once, with conservative memory settings.
// Processes that skip it use the pure Go decode path.
func InitVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if vipsInitialized {
		return
	}

	// Configure vips logging before Startup so LOG_LEVEL is respected
	vips.LoggingSettings(forwardVipsLog, vipsThreshold(logging.GetLevel()))

	vips.Startup(&vips.Config{
		ConcurrencyLevel: 1,                // one image at a time to control memory
		MaxCacheMem:      50 * 1024 * 1024, // 50MB cache
		MaxCacheSize:     100,              // max 100 operations cached
	})

	vipsInitialized = true
	vipsEnabled = true
	logging.Info("libvips initialized (version: %s)", vips.Version)
}

// ShutdownVips cleans up libvips resources
func ShutdownVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if vipsInitialized {
		vips.Shutdown()
		vipsInitialized = false
		vipsEnabled = false
		logging.Info("libvips shutdown complete")
	}
}

// VipsEnabled reports whether libvips is initialized and usable.
func VipsEnabled() bool {
	vipsMu.Lock()
	defer vipsMu.Unlock()
	return vipsEnabled
}

// loadWithVips decodes path shrinking toward the target size during the
// decode itself, which uses far less memory than decode-then-resize.
func loadWithVips(path string, targetWidth, targetHeight int) (image.Image, error) {
	if !VipsEnabled() {
		return nil, fmt.Errorf("libvips not available")
	}

	ref, err := vips.LoadImageFromFile(path, vips.NewImportParams())
	if err != nil {
		return nil, fmt.Errorf("vips load: %w", err)
	}
	defer ref.Close()

	logging.Debug("vips loaded %s: %dx%d, shrinking to %dx%d",
		filepath.Base(path), ref.Width(), ref.Height(), targetWidth, targetHeight)

	if err := ref.Thumbnail(targetWidth, targetHeight, vips.InterestingNone); err != nil {
		return nil, fmt.Errorf("vips thumbnail: %w", err)
	}

	out, _, err := ref.ExportJpeg(&vips.JpegExportParams{
		Quality:        95,
		OptimizeCoding: true,
	})
	if err != nil {
		return nil, fmt.Errorf("vips export: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode vips output: %w", err)
	}
	return img, nil
}
