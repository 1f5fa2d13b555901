package cache

import (
	"context"
	"image"
)

// Cache provides thread-safe storage for composed preview rasters.
//
// Implementations commit values atomically: a Fetch never returns a
// partially written raster, and concurrent Stores on one id leave exactly
// one committed value observable. Rasters are treated as immutable by
// both sides; callers must not modify an image after storing or fetching
// it.
type Cache interface {
	// Fetch returns the raster stored under id, if any.
	Fetch(ctx context.Context, id string) (image.Image, bool)

	// Store commits the raster under id, replacing any previous value.
	// Failures are absorbed by the backend.
	Store(ctx context.Context, id string, img image.Image)
}
