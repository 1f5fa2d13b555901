package cache

import (
	"image"
	"image/color"
	"image/draw"
)

// testRaster returns a small uniform image with a distinctive fill so
// entries can be told apart after a codec round trip.
func testRaster(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func nrgba(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

var (
	red   = nrgba(200, 30, 30)
	green = nrgba(30, 200, 30)
	blue  = nrgba(30, 30, 200)
)
