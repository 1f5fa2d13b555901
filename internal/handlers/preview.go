package handlers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"filmstrip/internal/filesystem"
	"filmstrip/internal/filmstrip"
	"filmstrip/internal/logging"
	"filmstrip/internal/media"

	"github.com/gorilla/mux"
)

// Request parameters clamp to these maxima so a single URL cannot ask
// for an arbitrarily large render.
const (
	maxGridRows    = 12
	maxGridColumns = 12
	maxStillWidth  = 1280
	maxStillHeight = 1280
)

// GetPreview renders the preview raster for one media file: a scaled
// still for images, a filmstrip grid for videos. An existing file always
// gets a 200 with an image; rendering failures come back as the standard
// placeholder rather than an error status.
func (h *Handlers) GetPreview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relPath := vars["path"]
	if relPath == "" {
		http.Error(w, "Path required", http.StatusBadRequest)
		return
	}

	fullPath := filepath.Join(h.mediaDir, relPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil || !isSubPath(h.mediaDir, absPath) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	opts, err := h.parseOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ref, err := media.NewRef(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "File not found", http.StatusNotFound)
		} else {
			http.Error(w, "Invalid path", http.StatusBadRequest)
		}
		return
	}
	ref = filmstrip.VariantRef(ref, opts, h.defaults)

	img := h.generator.Generate(r.Context(), ref, opts)
	writePNG(w, ref.Path, img)
}

// writePNG writes an image response with long-lived caching headers.
// Preview identity includes file size and mtime, so clients can cache hard.
func writePNG(w http.ResponseWriter, path string, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := png.Encode(w, img); err != nil {
		logging.Error("Failed to write preview for %s: %v", path, err)
	}
}

// parseOptions reads grid and still overrides from the query string.
// Absent parameters fall back to the configured defaults.
func (h *Handlers) parseOptions(query url.Values) (filmstrip.Options, error) {
	opts := h.defaults

	var err error
	if opts.Grid.Rows, err = queryInt(query, "rows", opts.Grid.Rows, maxGridRows); err != nil {
		return filmstrip.Options{}, err
	}
	if opts.Grid.Columns, err = queryInt(query, "cols", opts.Grid.Columns, maxGridColumns); err != nil {
		return filmstrip.Options{}, err
	}
	if opts.Still.Width, err = queryInt(query, "width", opts.Still.Width, maxStillWidth); err != nil {
		return filmstrip.Options{}, err
	}
	if opts.Still.Height, err = queryInt(query, "height", opts.Still.Height, maxStillHeight); err != nil {
		return filmstrip.Options{}, err
	}
	return opts, nil
}

// queryInt parses one integer query parameter. Values above max clamp;
// zero and negatives are rejected rather than guessed at.
func queryInt(query url.Values, name string, def, max int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	if v > max {
		return max, nil
	}
	return v, nil
}

// PreviewInfo describes one media file and the preview the service would
// render for it. Width and height are source dimensions, not preview
// dimensions. Playable reports a usable video stream; for images it
// reports a readable header.
type PreviewInfo struct {
	Path            string  `json:"path"`
	Type            string  `json:"type"`
	Cached          bool    `json:"cached"`
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
	Codec           string  `json:"codec,omitempty"`
	Playable        bool    `json:"playable"`
	ProbeError      string  `json:"probeError,omitempty"`
}

// GetPreviewInfo reports probe facts and cache state for one media file
// without rendering anything.
func (h *Handlers) GetPreviewInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relPath := vars["path"]
	if relPath == "" {
		writeJSONError(w, "path required", http.StatusBadRequest)
		return
	}

	fullPath := filepath.Join(h.mediaDir, relPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil || !isSubPath(h.mediaDir, absPath) {
		writeJSONError(w, "invalid path", http.StatusBadRequest)
		return
	}

	ref, err := media.NewRef(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeJSONError(w, "file not found", http.StatusNotFound)
		} else {
			writeJSONError(w, "invalid path", http.StatusBadRequest)
		}
		return
	}

	info := PreviewInfo{
		Path: relPath,
		Type: string(media.TypeOf(absPath)),
		// Cached reports the default rendering variant
		Cached: h.isCached(r.Context(), ref.ID),
	}

	switch media.TypeOf(absPath) {
	case media.TypeImage:
		h.describeImage(absPath, &info)
	case media.TypeVideo:
		h.describeVideo(r.Context(), absPath, &info)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, info)
}

func (h *Handlers) isCached(ctx context.Context, id string) bool {
	if h.cache == nil {
		return false
	}
	_, ok := h.cache.Fetch(ctx, id)
	return ok
}

// describeImage fills in the decoded header facts for a still image.
func (h *Handlers) describeImage(path string, info *PreviewInfo) {
	f, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		info.ProbeError = err.Error()
		return
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		info.ProbeError = err.Error()
		return
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
	info.Playable = true
}

// describeVideo fills in the prober's report for a video file.
func (h *Handlers) describeVideo(ctx context.Context, path string, info *PreviewInfo) {
	probe, err := h.prober.Probe(ctx, path)
	if err != nil {
		info.ProbeError = err.Error()
		return
	}
	info.Width = probe.Width
	info.Height = probe.Height
	info.DurationSeconds = probe.Duration.Seconds()
	info.Codec = probe.Codec
	info.Playable = probe.HasVideo && probe.Duration > 0
}
