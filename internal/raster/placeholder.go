package raster

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	placeholderBackground = color.NRGBA{R: 34, G: 38, B: 44, A: 255}
	placeholderFrame      = color.NRGBA{R: 58, G: 64, B: 72, A: 255}
	placeholderHole       = color.NRGBA{R: 22, G: 25, B: 29, A: 255}
	placeholderTear       = color.NRGBA{R: 122, G: 130, B: 140, A: 255}
)

// Placeholder returns the substitute raster used when a preview cannot be
// produced: a film frame with punched sprocket holes and a tear through
// it. Deterministic for a given size; each call allocates a fresh image.
func Placeholder(width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), placeholderBackground)

	inset := min(width, height) / 12
	frame := image.Rect(inset, inset, width-inset, height-inset)
	if frame.Empty() {
		return img
	}
	fillRect(img, frame, placeholderFrame)

	drawSprocketHoles(img, frame)
	drawTear(img, frame)

	return img
}

// drawSprocketHoles punches hole rows along the top and bottom frame edges.
func drawSprocketHoles(img *image.NRGBA, frame image.Rectangle) {
	hole := frame.Dx() / 16
	if hole < 2 {
		hole = 2
	}
	margin := hole / 2

	for x := frame.Min.X + hole; x+hole < frame.Max.X; x += hole * 3 {
		top := image.Rect(x, frame.Min.Y+margin, x+hole, frame.Min.Y+margin+hole)
		bottom := image.Rect(x, frame.Max.Y-margin-hole, x+hole, frame.Max.Y-margin)
		fillRect(img, top.Intersect(frame), placeholderHole)
		fillRect(img, bottom.Intersect(frame), placeholderHole)
	}
}

// drawTear draws a jagged diagonal from the top left to the bottom right
// of the frame.
func drawTear(img *image.NRGBA, frame image.Rectangle) {
	if frame.Dx() < 4 || frame.Dy() < 4 {
		return
	}

	thickness := frame.Dx() / 24
	if thickness < 1 {
		thickness = 1
	}

	for y := frame.Min.Y; y < frame.Max.Y; y++ {
		progress := float64(y-frame.Min.Y) / float64(frame.Dy())
		x := frame.Min.X + int(progress*float64(frame.Dx()))
		if (y-frame.Min.Y)%4 < 2 {
			x += thickness
		}
		seg := image.Rect(x, y, x+thickness*2, y+1)
		fillRect(img, seg.Intersect(frame), placeholderTear)
	}
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// Equal reports whether two images have the same dimensions and identical
// pixels.
func Equal(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, aB, aa := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bB, ba := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if ar != br || ag != bg || aB != bB || aa != ba {
				return false
			}
		}
	}
	return true
}
