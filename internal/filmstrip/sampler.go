package filmstrip

import (
	"context"
	"fmt"
	"image"
	"time"

	"filmstrip/internal/video"
)

// SampleOffsets returns n equally spaced timestamps covering a total
// duration: offset i is i*(total/n). The first sample always lands at
// zero and no sample touches the very end, so short clips still yield a
// full set of decodable instants.
func SampleOffsets(total time.Duration, n int) []time.Duration {
	if n < 1 {
		return nil
	}

	step := total / time.Duration(n)
	offsets := make([]time.Duration, n)
	for i := range offsets {
		offsets[i] = step * time.Duration(i)
	}
	return offsets
}

// SampleFrames extracts n frames at equally spaced offsets from an open
// handle, in time order. Any single extraction failure fails the whole
// call; there is no partial result.
func SampleFrames(ctx context.Context, h video.Handle, n int) ([]image.Image, error) {
	if !h.IsPlayable() {
		return nil, fmt.Errorf("%w: no decodable video stream", ErrVideoUnplayable)
	}
	if h.Duration() <= 0 {
		return nil, fmt.Errorf("%w: unknown duration", ErrVideoUnplayable)
	}

	offsets := SampleOffsets(h.Duration(), n)
	frames := make([]image.Image, 0, len(offsets))
	for i, offset := range offsets {
		frame, err := h.FrameAt(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: frame %d at %v: %w", ErrVideoUnplayable, i, offset, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
