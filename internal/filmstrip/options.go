package filmstrip

import (
	"fmt"

	"filmstrip/internal/media"
)

// Default still dimensions, a 16:9 tile.
const (
	DefaultStillWidth  = 320
	DefaultStillHeight = 180
)

// StillSize is the pixel size of one tile in the output raster.
type StillSize struct {
	Width  int
	Height int
}

// GridShape is the tile layout of a filmstrip: Rows x Columns stills in
// row-major time order. A 1x1 grid is a single still.
type GridShape struct {
	Rows    int
	Columns int
}

// Tiles returns the number of stills the grid holds.
func (g GridShape) Tiles() int {
	return g.Rows * g.Columns
}

func (g GridShape) valid() bool {
	return g.Rows >= 1 && g.Columns >= 1
}

// Options carries the rendering parameters for one generation.
type Options struct {
	Grid  GridShape
	Still StillSize
}

// DefaultOptions renders a single default-size still.
func DefaultOptions() Options {
	return Options{
		Grid:  GridShape{Rows: 1, Columns: 1},
		Still: StillSize{Width: DefaultStillWidth, Height: DefaultStillHeight},
	}
}

// VariantRef qualifies ref's cache identity with the rendering options
// when they differ from the baseline defaults. Default renderings keep
// the plain ID, so the HTTP handler and the prewarm CLI share entries;
// every other shape gets its own slot and never collides with them.
func VariantRef(ref media.Ref, opts, defaults Options) media.Ref {
	if opts == defaults {
		return ref
	}
	ref.ID = fmt.Sprintf("%s-%dx%d-%dx%d", ref.ID,
		opts.Grid.Rows, opts.Grid.Columns, opts.Still.Width, opts.Still.Height)
	return ref
}

// normalize clamps non-positive dimensions so a zero Options value still
// renders something sensible.
func (o Options) normalize() Options {
	if o.Grid.Rows < 1 {
		o.Grid.Rows = 1
	}
	if o.Grid.Columns < 1 {
		o.Grid.Columns = 1
	}
	if o.Still.Width < 1 {
		o.Still.Width = DefaultStillWidth
	}
	if o.Still.Height < 1 {
		o.Still.Height = DefaultStillHeight
	}
	return o
}
