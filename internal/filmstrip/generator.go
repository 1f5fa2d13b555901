package filmstrip

import (
	"context"
	"fmt"
	"image"
	"time"

	"filmstrip/internal/cache"
	"filmstrip/internal/logging"
	"filmstrip/internal/media"
	"filmstrip/internal/metrics"
	"filmstrip/internal/raster"
	"filmstrip/internal/video"
)

// Decoder loads an image file and scales it to the requested size.
type Decoder interface {
	DecodeFile(path string, width, height int) (image.Image, error)
}

// Generator produces preview rasters for media files: a scaled still for
// images, a grid of sampled frames for videos. Completed rasters are
// committed to the cache; failures never are.
type Generator struct {
	source  video.Source
	decoder Decoder
	cache   cache.Cache
}

// New creates a Generator. A nil source or decoder falls back to the
// FFmpeg pipeline and the standard file decoder. A nil cache disables
// caching entirely.
func New(source video.Source, decoder Decoder, c cache.Cache) *Generator {
	if source == nil {
		source = video.FFmpeg{}
	}
	if decoder == nil {
		decoder = raster.FileDecoder{}
	}
	return &Generator{
		source:  source,
		decoder: decoder,
		cache:   c,
	}
}

// Generate returns the preview raster for ref. It never fails: any
// rendering error is logged and absorbed into a placeholder sized to one
// still. Placeholders are never cached, so a broken file is retried on
// the next request.
func (g *Generator) Generate(ctx context.Context, ref media.Ref, opts Options) image.Image {
	opts = opts.normalize()

	img, err := g.Render(ctx, ref, opts)
	if err != nil {
		logging.Error("Preview generation failed for %s (%s): %v", ref.Path, FailureKind(err), err)
		return raster.Placeholder(opts.Still.Width, opts.Still.Height)
	}
	return img
}

// Render is the fallible core of Generate: cache lookup, then a full
// render, then a cache write-back on success. Callers that need to see
// failures instead of placeholders (batch warmers, tests) use it
// directly.
func (g *Generator) Render(ctx context.Context, ref media.Ref, opts Options) (image.Image, error) {
	opts = opts.normalize()

	if img, ok := g.fetch(ctx, ref.ID); ok {
		return img, nil
	}

	label := mediaLabel(ref)
	start := time.Now()

	var img image.Image
	var err error
	if ref.IsImage {
		img, err = g.renderImage(ref, opts)
	} else {
		img, err = g.renderVideo(ctx, ref, opts)
	}
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(label, "failed").Inc()
		metrics.GenerationFailures.WithLabelValues(FailureKind(err)).Inc()
		return nil, err
	}

	metrics.GenerationsTotal.WithLabelValues(label, "ok").Inc()
	metrics.GenerationDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	g.store(ctx, ref.ID, img)
	return img, nil
}

// renderImage is the image fast path: decode and scale to one still. The
// grid shape is ignored for images.
func (g *Generator) renderImage(ref media.Ref, opts Options) (image.Image, error) {
	img, err := g.decoder.DecodeFile(ref.Path, opts.Still.Width, opts.Still.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUnloadable, err)
	}
	return img, nil
}

func (g *Generator) renderVideo(ctx context.Context, ref media.Ref, opts Options) (image.Image, error) {
	handle, err := g.source.Open(ctx, ref.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVideoUnplayable, err)
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			logging.Warn("Failed to close video handle for %s: %v", ref.Path, cerr)
		}
	}()

	frames, err := SampleFrames(ctx, handle, opts.Grid.Tiles())
	if err != nil {
		return nil, err
	}

	return Composite(frames, opts.Grid, opts.Still)
}

func (g *Generator) fetch(ctx context.Context, id string) (image.Image, bool) {
	if g.cache == nil {
		return nil, false
	}
	img, ok := g.cache.Fetch(ctx, id)
	if ok {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	return img, ok
}

func (g *Generator) store(ctx context.Context, id string, img image.Image) {
	if g.cache == nil {
		return
	}
	g.cache.Store(ctx, id, img)
	metrics.CacheStores.Inc()
}

func mediaLabel(ref media.Ref) string {
	if ref.IsImage {
		return "image"
	}
	return "video"
}
