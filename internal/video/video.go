package video

import (
	"context"
	"image"
	"time"
)

// Source opens video files for frame extraction.
type Source interface {
	Open(ctx context.Context, path string) (Handle, error)
}

// Handle is an open video ready for probing and frame extraction.
//
// A handle is scoped to a single generation pass. Callers must Close it
// on every exit path, including failures.
type Handle interface {
	// Duration returns the total playable length.
	Duration() time.Duration

	// IsPlayable reports whether the file holds a decodable video stream
	// with a known duration. Sampling an unplayable handle is pointless;
	// callers check this before extracting anything.
	IsPlayable() bool

	// FrameAt decodes the frame nearest to offset from the start.
	FrameAt(ctx context.Context, offset time.Duration) (image.Image, error)

	// Close releases resources held by the handle.
	Close() error
}
