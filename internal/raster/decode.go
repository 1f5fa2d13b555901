package raster

import (
	"fmt"
	"image"
	"os"

	"filmstrip/internal/logging"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// FileDecoder loads a still image from disk scaled to a requested size.
// The zero value is ready to use.
type FileDecoder struct{}

// DecodeFile reads the image at path and returns it scaled to exactly
// width x height. When libvips is initialized it decodes with
// decode-time shrinking; otherwise the pure Go decoders take over.
func (FileDecoder) DecodeFile(path string, width, height int) (image.Image, error) {
	if VipsEnabled() {
		img, err := loadWithVips(path, width, height)
		if err == nil {
			return scaleTo(img, width, height), nil
		}
		logging.Debug("vips load failed for %s: %v, falling back", path, err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		logging.Debug("imaging.Open failed for %s: %v, trying bare decode", path, err)
		img, err = decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	return scaleTo(img, width, height), nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	logging.Debug("decoded %s as %s", path, format)
	return img, nil
}

func scaleTo(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
