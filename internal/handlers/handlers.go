package handlers

import (
	"context"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/startup"
	"filmstrip/internal/video"
)

// Prober reports stream facts for a video file without rendering it.
type Prober interface {
	Probe(ctx context.Context, path string) (video.Probe, error)
}

type Handlers struct {
	generator *filmstrip.Generator
	prober    Prober
	cache     cache.Cache
	mediaDir  string
	backend   string
	defaults  filmstrip.Options
	startTime time.Time

	// swapped in tests to simulate a missing toolchain
	videoAvailable func() error
}

func New(generator *filmstrip.Generator, prober Prober, c cache.Cache, config *startup.Config) *Handlers {
	return &Handlers{
		generator:      generator,
		prober:         prober,
		cache:          c,
		mediaDir:       config.MediaDir,
		backend:        config.CacheBackend,
		defaults:       config.PreviewOptions(),
		startTime:      time.Now(),
		videoAvailable: video.Available,
	}
}
