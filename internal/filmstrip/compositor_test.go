package filmstrip

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func uniformTile(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func pixelAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestCompositeGridLayout(t *testing.T) {
	colors := []color.NRGBA{
		{R: 255, A: 255},         // red
		{G: 255, A: 255},         // green
		{B: 255, A: 255},         // blue
		{R: 255, G: 255, A: 255}, // yellow
		{R: 255, B: 255, A: 255}, // magenta
		{G: 255, B: 255, A: 255}, // cyan
	}

	stills := make([]image.Image, len(colors))
	for i, c := range colors {
		stills[i] = uniformTile(8, 8, c)
	}

	grid := GridShape{Rows: 2, Columns: 3}
	still := StillSize{Width: 10, Height: 10}

	canvas, err := Composite(stills, grid, still)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	bounds := canvas.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Fatalf("canvas is %dx%d, want 30x20", bounds.Dx(), bounds.Dy())
	}

	// Still i fills row i/3, column i%3, row zero at the top.
	for i, c := range colors {
		row := i / grid.Columns
		col := i % grid.Columns
		x := col*still.Width + still.Width/2
		y := row*still.Height + still.Height/2

		if got := pixelAt(canvas, x, y); got != c {
			t.Errorf("still %d: pixel at (%d,%d) = %v, want %v", i, x, y, got, c)
		}
	}
}

func TestCompositeSingleStill(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	canvas, err := Composite(
		[]image.Image{uniformTile(8, 8, red)},
		GridShape{Rows: 1, Columns: 1},
		StillSize{Width: 16, Height: 12},
	)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	bounds := canvas.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Fatalf("canvas is %dx%d, want 16x12", bounds.Dx(), bounds.Dy())
	}
	if got := pixelAt(canvas, 8, 6); got != red {
		t.Errorf("center pixel = %v, want %v", got, red)
	}
}

func TestCompositeScalesStills(t *testing.T) {
	// Oversized and undersized inputs both land on the exact tile size.
	green := color.NRGBA{G: 255, A: 255}
	stills := []image.Image{
		uniformTile(100, 70, green),
		uniformTile(3, 2, green),
	}

	canvas, err := Composite(stills, GridShape{Rows: 1, Columns: 2}, StillSize{Width: 20, Height: 10})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	bounds := canvas.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 10 {
		t.Fatalf("canvas is %dx%d, want 40x10", bounds.Dx(), bounds.Dy())
	}
	for _, x := range []int{10, 30} {
		if got := pixelAt(canvas, x, 5); got != green {
			t.Errorf("pixel at (%d,5) = %v, want %v", x, got, green)
		}
	}
}

func TestCompositeCountMismatch(t *testing.T) {
	stills := make([]image.Image, 5)
	for i := range stills {
		stills[i] = uniformTile(8, 8, color.NRGBA{A: 255})
	}

	_, err := Composite(stills, GridShape{Rows: 2, Columns: 3}, StillSize{Width: 10, Height: 10})
	if err == nil {
		t.Fatal("Composite accepted 5 stills for a 2x3 grid")
	}
}

func TestCompositeInvalidShapes(t *testing.T) {
	stills := []image.Image{uniformTile(8, 8, color.NRGBA{A: 255})}

	tests := []struct {
		name  string
		grid  GridShape
		still StillSize
	}{
		{"zero rows", GridShape{Rows: 0, Columns: 1}, StillSize{Width: 10, Height: 10}},
		{"negative columns", GridShape{Rows: 1, Columns: -1}, StillSize{Width: 10, Height: 10}},
		{"zero width", GridShape{Rows: 1, Columns: 1}, StillSize{Width: 0, Height: 10}},
		{"zero height", GridShape{Rows: 1, Columns: 1}, StillSize{Width: 10, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Composite(stills, tt.grid, tt.still); err == nil {
				t.Error("Composite accepted invalid shape")
			}
		})
	}
}

func TestGridShapeTiles(t *testing.T) {
	tests := []struct {
		name string
		grid GridShape
		want int
	}{
		{"1x1", GridShape{Rows: 1, Columns: 1}, 1},
		{"2x3", GridShape{Rows: 2, Columns: 3}, 6},
		{"4x4", GridShape{Rows: 4, Columns: 4}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.Tiles(); got != tt.want {
				t.Errorf("Tiles() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOptionsNormalize(t *testing.T) {
	var zero Options
	opts := zero.normalize()

	if opts.Grid.Rows != 1 || opts.Grid.Columns != 1 {
		t.Errorf("normalized grid = %dx%d, want 1x1", opts.Grid.Rows, opts.Grid.Columns)
	}
	if opts.Still.Width != DefaultStillWidth || opts.Still.Height != DefaultStillHeight {
		t.Errorf("normalized still = %dx%d, want %dx%d",
			opts.Still.Width, opts.Still.Height, DefaultStillWidth, DefaultStillHeight)
	}

	// Valid options pass through untouched.
	set := Options{Grid: GridShape{Rows: 3, Columns: 4}, Still: StillSize{Width: 90, Height: 60}}
	if got := set.normalize(); got != set {
		t.Errorf("normalize changed valid options: %+v", got)
	}
}
