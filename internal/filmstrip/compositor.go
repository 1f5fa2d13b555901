package filmstrip

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Composite lays stills into a Rows x Columns grid in row-major time
// order: still i lands at row i/Columns, column i%Columns, with row zero
// at the top of the raster. Every still is scaled to exactly the tile
// size, so the result measures (Width*Columns) x (Height*Rows).
func Composite(stills []image.Image, grid GridShape, still StillSize) (*image.NRGBA, error) {
	if !grid.valid() {
		return nil, fmt.Errorf("invalid grid shape %dx%d", grid.Rows, grid.Columns)
	}
	if still.Width < 1 || still.Height < 1 {
		return nil, fmt.Errorf("invalid still size %dx%d", still.Width, still.Height)
	}
	if len(stills) != grid.Tiles() {
		return nil, fmt.Errorf("%d stills for a %dx%d grid, want %d",
			len(stills), grid.Rows, grid.Columns, grid.Tiles())
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, still.Width*grid.Columns, still.Height*grid.Rows))

	for i, s := range stills {
		row := i / grid.Columns
		col := i % grid.Columns

		tile := imaging.Resize(s, still.Width, still.Height, imaging.Lanczos)
		dst := image.Rect(
			col*still.Width,
			row*still.Height,
			(col+1)*still.Width,
			(row+1)*still.Height,
		)
		draw.Draw(canvas, dst, tile, tile.Bounds().Min, draw.Src)
	}

	return canvas, nil
}
