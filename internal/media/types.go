package media

import (
	"path/filepath"
	"strings"
)

// FileType represents the classification of a media file.
type FileType string

const (
	// TypeImage represents a still image file.
	TypeImage FileType = "image"
	// TypeVideo represents a video file.
	TypeVideo FileType = "video"
	// TypeOther represents an unknown or unsupported file type.
	TypeOther FileType = "other"
)

// ImageExtensions maps file extensions to whether they decode as stills.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// VideoExtensions maps file extensions to whether they are treated as video.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
	".ts":   true,
}

// TypeOf returns the FileType for a path based on its extension.
func TypeOf(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	if ImageExtensions[ext] {
		return TypeImage
	}
	if VideoExtensions[ext] {
		return TypeVideo
	}
	return TypeOther
}

// IsMedia reports whether path has a supported image or video extension.
func IsMedia(path string) bool {
	return TypeOf(path) != TypeOther
}
