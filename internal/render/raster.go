// Package render rasterizes the grid. The pure rasterizer here backs the
// one-shot PNG export; screen.go draws the same layout on an Ebiten
// canvas for interactive use.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"tilepaint/internal/grid"
)

// Textures maps tile ids to their source images. Ids without an entry
// are drawn as a neutral placeholder of the same footprint so the grid
// stays legible before textures finish loading.
type Textures map[grid.TileID]image.Image

var (
	backgroundColor  = color.RGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff}
	gridLineColor    = color.RGBA{R: 0x3a, G: 0x3a, B: 0x44, A: 0xff}
	placeholderColor = color.RGBA{R: 0x8a, G: 0x8a, B: 0x96, A: 0xff}
)

// CellPixels returns the on-image cell edge for a tile size under zoom,
// never below one pixel.
func CellPixels(tileSize int, zoom float64) int {
	cell := int(math.Round(float64(tileSize) * zoom))
	if cell < 1 {
		cell = 1
	}
	return cell
}

// Rasterize draws the grid into a fresh RGBA image: background first,
// then each non-empty cell's texture scaled to the cell footprint, then
// 1-pixel grid lines at every column and row boundary.
func Rasterize(s *grid.Store, tex Textures, tileSize int, zoom float64) *image.RGBA {
	cell := CellPixels(tileSize, zoom)
	w := s.Cols() * cell
	h := s.Rows() * cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	xdraw.Draw(img, img.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, xdraw.Src)

	for y := 0; y < s.Rows(); y++ {
		for x := 0; x < s.Cols(); x++ {
			id := s.Get(x, y)
			if id == grid.Empty {
				continue
			}
			dst := image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell)
			src, ok := tex[id]
			if !ok || src == nil {
				xdraw.Draw(img, dst, &image.Uniform{placeholderColor}, image.Point{}, xdraw.Src)
				continue
			}
			xdraw.NearestNeighbor.Scale(img, dst, src, src.Bounds(), xdraw.Over, nil)
		}
	}

	// grid line overlay
	for x := 0; x <= s.Cols(); x++ {
		lx := x * cell
		if lx >= w {
			lx = w - 1
		}
		xdraw.Draw(img, image.Rect(lx, 0, lx+1, h), &image.Uniform{gridLineColor}, image.Point{}, xdraw.Src)
	}
	for y := 0; y <= s.Rows(); y++ {
		ly := y * cell
		if ly >= h {
			ly = h - 1
		}
		xdraw.Draw(img, image.Rect(0, ly, w, ly+1), &image.Uniform{gridLineColor}, image.Point{}, xdraw.Src)
	}

	return img
}

// EncodePNG writes the rasterized grid as PNG.
func EncodePNG(w io.Writer, s *grid.Store, tex Textures, tileSize int, zoom float64) error {
	return png.Encode(w, Rasterize(s, tex, tileSize, zoom))
}

// ExportPNG rasterizes the grid to a PNG file.
func ExportPNG(path string, s *grid.Store, tex Textures, tileSize int, zoom float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePNG(f, s, tex, tileSize, zoom)
}
