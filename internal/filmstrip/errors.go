package filmstrip

import "errors"

// Failure classes for preview generation. Wrapped errors carry the
// underlying detail; match the class with errors.Is.
var (
	// ErrVideoUnplayable marks a video that could not be opened, probed,
	// or decoded frame by frame.
	ErrVideoUnplayable = errors.New("video unplayable")

	// ErrImageUnloadable marks an image file that could not be read or
	// decoded.
	ErrImageUnloadable = errors.New("image data unloadable")
)

// FailureKind names the failure class for log lines and metric labels.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrVideoUnplayable):
		return "video_unplayable"
	case errors.Is(err, ErrImageUnloadable):
		return "image_unloadable"
	default:
		return "other"
	}
}
