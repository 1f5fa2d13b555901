package raster

import (
	"image"
	"testing"
)

func TestPlaceholderSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{
			name: "typical still",
			w:    320, h: 180,
			wantW: 320, wantH: 180,
		},
		{
			name: "square",
			w:    64, h: 64,
			wantW: 64, wantH: 64,
		},
		{
			name: "zero clamps to one",
			w:    0, h: 0,
			wantW: 1, wantH: 1,
		},
		{
			name: "negative width clamps",
			w:    -5, h: 20,
			wantW: 1, wantH: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Placeholder(tt.w, tt.h)
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Placeholder(%d, %d) size = %dx%d, want %dx%d",
					tt.w, tt.h, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := Placeholder(320, 180)
	b := Placeholder(320, 180)
	if !Equal(a, b) {
		t.Error("two placeholders of the same size should be pixel-identical")
	}
}

func TestPlaceholderNotUniform(t *testing.T) {
	img := Placeholder(320, 180)
	base := img.NRGBAAt(0, 0)

	found := false
	for y := 0; y < 180 && !found; y++ {
		for x := 0; x < 320; x++ {
			if img.NRGBAAt(x, y) != base {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("placeholder should draw something besides the background")
	}
}

func TestPlaceholderFreshAllocation(t *testing.T) {
	a := Placeholder(64, 64)
	b := Placeholder(64, 64)

	a.Set(10, 10, placeholderTear)
	a.Set(11, 10, placeholderBackground)

	if Equal(a, b) {
		t.Error("mutating one placeholder should not affect another")
	}
}

func TestEqual(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	b := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if !Equal(a, b) {
		t.Error("identical blank images should compare equal")
	}

	c := image.NewNRGBA(image.Rect(0, 0, 8, 9))
	if Equal(a, c) {
		t.Error("images of different sizes should not compare equal")
	}

	b.Set(3, 3, placeholderTear)
	if Equal(a, b) {
		t.Error("images with a differing pixel should not compare equal")
	}
}

func BenchmarkPlaceholder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Placeholder(320, 180)
	}
}
