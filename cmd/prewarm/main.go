package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/logging"
	"filmstrip/internal/media"
	"filmstrip/internal/memory"
	"filmstrip/internal/raster"
	"filmstrip/internal/startup"
	"filmstrip/internal/video"
	"filmstrip/internal/workers"
)

// workerLimit caps the pool size regardless of CPU count. Every video
// job runs its own ffmpeg; past this the host is I/O bound anyway.
const workerLimit = 8

func main() {
	var (
		rows     = flag.Int("rows", 0, "grid rows (default: PREVIEW_ROWS)")
		cols     = flag.Int("cols", 0, "grid columns (default: PREVIEW_COLS)")
		width    = flag.Int("width", 0, "still width in pixels (default: STILL_WIDTH)")
		height   = flag.Int("height", 0, "still height in pixels (default: STILL_HEIGHT)")
		poolFlag = flag.Int("workers", 0, "worker count (default: sized from available CPU)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	// Size the heap before decoding starts; a batch run over a large
	// library is exactly the workload GOMEMLIMIT exists for.
	memory.ConfigureFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels the run; workers finish their current file
	// and the summary reports how far the run got.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, finishing in-flight work...")
		cancel()
	}()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Failed to load configuration: %v", err)
	}
	if !config.CacheEnabled() {
		startup.LogFatal("Preview cache is disabled; set CACHE_BACKEND before prewarming")
	}

	raster.InitVips()
	startup.LogRasterInit(raster.VipsEnabled())
	startup.LogVideoInit()

	cacheStart := time.Now()
	previewCache, releaseCache, err := cache.Open(ctx, config.CacheConfig())
	if err != nil {
		startup.LogFatal("Failed to open preview cache: %v", err)
	}
	startup.LogCacheInit(config.CacheBackend, time.Since(cacheStart))

	paths, err := media.Scan(ctx, config.MediaDir)
	if err != nil {
		releaseCache()
		raster.ShutdownVips()
		if errors.Is(err, context.Canceled) {
			os.Exit(1)
		}
		startup.LogFatal("Media scan failed: %v", err)
	}
	if len(paths) == 0 {
		logging.Info("No media files found under %s", config.MediaDir)
		releaseCache()
		raster.ShutdownVips()
		return
	}

	defaults := config.PreviewOptions()
	opts := defaults
	if *rows > 0 {
		opts.Grid.Rows = *rows
	}
	if *cols > 0 {
		opts.Grid.Columns = *cols
	}
	if *width > 0 {
		opts.Still.Width = *width
	}
	if *height > 0 {
		opts.Still.Height = *height
	}

	poolSize := *poolFlag
	if poolSize < 1 {
		poolSize = workers.ForMixed(workerLimit)
	}
	if poolSize > len(paths) {
		poolSize = len(paths)
	}

	generator := filmstrip.New(video.FFmpeg{}, raster.FileDecoder{}, previewCache)

	// Pause workers when the heap nears the limit instead of letting a
	// burst of large decodes OOM the container.
	monitor := memory.NewMonitor(memory.DefaultConfig())
	monitor.Start()

	logPlan(len(paths), opts, poolSize)

	prog := newProgress(len(paths))
	start := time.Now()
	t := warm(ctx, generator, previewCache, monitor, paths, opts, defaults, poolSize, prog.update)
	prog.finish()
	duration := time.Since(start)

	monitor.Stop()

	t.publish(duration)
	logSummary(t, len(paths), duration, ctx.Err() != nil)

	releaseCache()
	raster.ShutdownVips()

	if ctx.Err() != nil {
		os.Exit(1)
	}
}

func logPlan(files int, opts filmstrip.Options, poolSize int) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("PREWARM")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Media files:  %d", files)
	logging.Info("  Grid:         %dx%d", opts.Grid.Rows, opts.Grid.Columns)
	logging.Info("  Still size:   %dx%d", opts.Still.Width, opts.Still.Height)
	logging.Info("  Workers:      %d", poolSize)
}

func logSummary(t tally, files int, duration time.Duration, interrupted bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	if interrupted {
		logging.Info("PREWARM INTERRUPTED")
	} else {
		logging.Info("PREWARM COMPLETE")
	}
	logging.Info("------------------------------------------------------------")
	logging.Info("  Generated:  %d", t.generated)
	logging.Info("  Skipped:    %d (already cached)", t.skipped)
	if t.failed > 0 {
		logging.Warn("  Failed:     %d", t.failed)
	} else {
		logging.Info("  Failed:     0")
	}
	if remaining := files - t.total(); remaining > 0 {
		logging.Info("  Not reached: %d", remaining)
	}
	logging.Info("  Duration:   %v", duration.Round(time.Millisecond))
	logging.Info("")
}
