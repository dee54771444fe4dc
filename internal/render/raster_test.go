package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"tilepaint/internal/grid"
)

func solid(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterizeDimensions(t *testing.T) {
	cases := []struct {
		name     string
		tileSize int
		zoom     float64
		wantCell int
	}{
		{"zoom_1", 32, 1, 32},
		{"zoom_half", 32, 0.5, 16},
		{"zoom_2", 16, 2, 32},
		{"tiny_never_zero", 1, 0.1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := grid.NewStore(3, 2)
			img := Rasterize(s, nil, c.tileSize, c.zoom)
			if img.Bounds().Dx() != 3*c.wantCell || img.Bounds().Dy() != 2*c.wantCell {
				t.Fatalf("got %v, want %dx%d", img.Bounds(), 3*c.wantCell, 2*c.wantCell)
			}
		})
	}
}

func TestRasterizeCellContents(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	s := grid.NewStore(2, 1)
	s.Set(0, 0, "brick")
	s.Set(1, 0, "ghost") // no texture registered

	tex := Textures{"brick": solid(red, 8)}
	img := Rasterize(s, tex, 16, 1)

	// sample cell centers, away from the grid line overlay
	if got := img.RGBAAt(8, 8); got != red {
		t.Fatalf("textured cell center = %v, want %v", got, red)
	}
	if got := img.RGBAAt(24, 8); got != placeholderColor {
		t.Fatalf("texture-less cell must use the placeholder, got %v", got)
	}
}

func TestRasterizeEmptyCellAndGridLines(t *testing.T) {
	s := grid.NewStore(2, 2)
	img := Rasterize(s, nil, 16, 1)

	if got := img.RGBAAt(8, 8); got != backgroundColor {
		t.Fatalf("empty cell = %v, want background %v", got, backgroundColor)
	}
	// boundary lines: column boundary at x=16, row boundary at y=16
	if got := img.RGBAAt(16, 8); got != gridLineColor {
		t.Fatalf("column boundary = %v, want %v", got, gridLineColor)
	}
	if got := img.RGBAAt(8, 16); got != gridLineColor {
		t.Fatalf("row boundary = %v, want %v", got, gridLineColor)
	}
	// outer edges carry lines too
	if got := img.RGBAAt(0, 8); got != gridLineColor {
		t.Fatalf("left edge = %v, want %v", got, gridLineColor)
	}
	if got := img.RGBAAt(31, 8); got != gridLineColor {
		t.Fatalf("right edge = %v, want %v", got, gridLineColor)
	}
}

func TestEncodePNG(t *testing.T) {
	s := grid.NewStore(2, 2)
	s.Set(0, 0, "brick")
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s, nil, 8, 1); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("exported bytes are not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 16 {
		t.Fatalf("decoded bounds %v, want 16x16", decoded.Bounds())
	}
}
