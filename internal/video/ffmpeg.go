package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"os/exec"
	"time"

	"filmstrip/internal/logging"

	// ffmpeg pipes frames out as PNG
	_ "image/png"
)

// FFmpeg is a Source backed by the ffprobe and ffmpeg binaries. The zero
// value is ready to use.
type FFmpeg struct{}

// Available returns an error when ffmpeg or ffprobe is missing from PATH.
func Available() error {
	for _, bin := range []string{"ffprobe", "ffmpeg"} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found: %w", bin, err)
		}
	}
	return nil
}

// Probe returns the stream facts for the file at path without keeping a
// handle open.
func (FFmpeg) Probe(ctx context.Context, path string) (Probe, error) {
	return runProbe(ctx, path)
}

// Open stats the file, probes it, and returns a handle scoped to one
// generation pass.
func (FFmpeg) Open(ctx context.Context, path string) (Handle, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}

	probe, err := runProbe(ctx, path)
	if err != nil {
		return nil, err
	}

	return &ffmpegHandle{path: path, probe: probe}, nil
}

type ffmpegHandle struct {
	path  string
	probe Probe
}

func (h *ffmpegHandle) Duration() time.Duration { return h.probe.Duration }

func (h *ffmpegHandle) IsPlayable() bool {
	return h.probe.HasVideo && h.probe.Duration > 0
}

// FrameAt extracts one PNG frame over a pipe. Seeking happens on the
// input side, which lands on the nearest keyframe instead of decoding
// from the start of the file.
func (h *ffmpegHandle) FrameAt(ctx context.Context, offset time.Duration) (image.Image, error) {
	out, err := h.extract(ctx, formatSeekTime(offset.Seconds()))
	if err != nil {
		logging.Debug("seek extraction failed for %s at %v: %v, retrying without seek", h.path, offset, err)
		out, err = h.extract(ctx, "")
		if err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decode extracted frame: %w", err)
	}
	return img, nil
}

func (h *ffmpegHandle) extract(ctx context.Context, seek string) ([]byte, error) {
	args := make([]string, 0, 10)
	if seek != "" {
		args = append(args, "-ss", seek)
	}
	args = append(args,
		"-i", h.path,
		"-vframes", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg %s: %w - %s", h.path, err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no output for %s", h.path)
	}

	return stdout.Bytes(), nil
}

// Close is a no-op: the exec-based handle holds no OS resources between
// calls. It exists so callers release handles uniformly.
func (h *ffmpegHandle) Close() error { return nil }

// formatSeekTime renders seconds as HH:MM:SS.mmm for ffmpeg's -ss flag.
func formatSeekTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
