package cache

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// encodePNG serializes a raster for byte-oriented backends. PNG is
// lossless, so a stored raster fetches back pixel-identical.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}
