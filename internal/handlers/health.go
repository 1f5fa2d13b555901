package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"filmstrip/internal/filesystem"
	"filmstrip/internal/raster"
	"filmstrip/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	Uptime          string `json:"uptime"`
	FFmpegAvailable bool   `json:"ffmpegAvailable"`
	VipsEnabled     bool   `json:"vipsEnabled"`
	CacheBackend    string `json:"cacheBackend"`
	CacheReachable  *bool  `json:"cacheReachable,omitempty"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// pinger is implemented by cache backends that talk to a remote server.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports overall service health. A missing video toolchain
// degrades instead of failing: image previews still work and video
// requests fall back to placeholders.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ffmpegOK := h.videoAvailable() == nil

	response := HealthResponse{
		Status:          statusHealthy,
		Version:         startup.Version,
		Uptime:          time.Since(h.startTime).Round(time.Second).String(),
		FFmpegAvailable: ffmpegOK,
		VipsEnabled:     raster.VipsEnabled(),
		CacheBackend:    h.backendName(),
		GoVersion:       runtime.Version(),
		NumCPU:          runtime.NumCPU(),
		NumGoroutine:    runtime.NumGoroutine(),
	}

	if !ffmpegOK {
		response.Status = statusDegraded
	}

	if p, ok := h.cache.(pinger); ok {
		reachable := p.Ping(r.Context()) == nil
		response.CacheReachable = &reachable
		if !reachable {
			response.Status = statusDegraded
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	// For HEAD requests, only send headers (no body)
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSONStatus(w, "alive")
}

// ReadinessCheck returns 200 only when the service can serve preview
// traffic: the media directory is mounted and a remote cache, if any,
// answers. A missing ffmpeg does not fail readiness since image previews
// and placeholders still serve.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if info, err := filesystem.StatWithRetry(h.mediaDir, filesystem.DefaultRetryConfig()); err != nil || !info.IsDir() {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, map[string]string{
			"status": "not_ready",
			"reason": "media directory unavailable",
		})
		return
	}

	if p, ok := h.cache.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			writeJSON(w, map[string]string{
				"status": "not_ready",
				"reason": "cache unreachable",
			})
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	writeJSON(w, map[string]string{
		"status": "ready",
	})
}

func (h *Handlers) backendName() string {
	switch h.backend {
	case "", "off", "none":
		return "off"
	}
	return h.backend
}
