package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"tilepaint/internal/grid"
)

// Screen draws the grid onto the interactive Ebiten canvas. It consumes
// the store read-only; tile textures are registered up front and may be
// replaced at any time (texture hot reload).
type Screen struct {
	tileSize int

	textures map[grid.TileID]*ebiten.Image

	emptyImg       *ebiten.Image
	placeholderImg *ebiten.Image
	hoverImg       *ebiten.Image
	lineImg        *ebiten.Image
}

func NewScreen(tileSize int) *Screen {
	r := &Screen{
		tileSize: tileSize,
		textures: make(map[grid.TileID]*ebiten.Image),
	}

	r.emptyImg = ebiten.NewImage(tileSize, tileSize)
	r.emptyImg.Fill(backgroundColor)

	r.placeholderImg = ebiten.NewImage(tileSize, tileSize)
	r.placeholderImg.Fill(placeholderColor)

	r.hoverImg = ebiten.NewImage(tileSize, tileSize)
	r.hoverImg.Fill(color.RGBA{R: 128, G: 128, B: 128, A: 0x88})

	li := ebiten.NewImage(1, 1)
	li.Fill(gridLineColor)
	r.lineImg = li

	return r
}

func (r *Screen) TileSize() int { return r.tileSize }

// SetTexture registers (or replaces) the image drawn for a tile id.
func (r *Screen) SetTexture(id grid.TileID, img image.Image) {
	if img == nil {
		delete(r.textures, id)
		return
	}
	r.textures[id] = ebiten.NewImageFromImage(img)
}

// ClearTextures drops every registered texture (palette swap on import).
func (r *Screen) ClearTextures() {
	r.textures = make(map[grid.TileID]*ebiten.Image)
}

// RasterTextures converts the registered textures for the PNG exporter.
func (r *Screen) RasterTextures() Textures {
	out := make(Textures, len(r.textures))
	for id, img := range r.textures {
		out[id] = img
	}
	return out
}

func (r *Screen) applyCanvas(op *ebiten.DrawImageOptions, tx, ty, zoom, offX, offY float64) {
	op.GeoM.Translate(tx, ty)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(offX, offY)
}

// Draw renders the full grid: background cells, non-empty tiles (or the
// placeholder when a texture is missing), then grid lines at every
// column and row boundary.
func (r *Screen) Draw(dst *ebiten.Image, s *grid.Store, zoom, offX, offY float64) {
	cs := float64(r.tileSize)

	for y := 0; y < s.Rows(); y++ {
		for x := 0; x < s.Cols(); x++ {
			op := &ebiten.DrawImageOptions{}
			r.applyCanvas(op, float64(x)*cs, float64(y)*cs, zoom, offX, offY)
			dst.DrawImage(r.emptyImg, op)

			id := s.Get(x, y)
			if id == grid.Empty {
				continue
			}
			tex, ok := r.textures[id]
			if !ok {
				top := &ebiten.DrawImageOptions{}
				r.applyCanvas(top, float64(x)*cs, float64(y)*cs, zoom, offX, offY)
				dst.DrawImage(r.placeholderImg, top)
				continue
			}
			top := &ebiten.DrawImageOptions{}
			top.GeoM.Scale(cs/float64(tex.Bounds().Dx()), cs/float64(tex.Bounds().Dy()))
			r.applyCanvas(top, float64(x)*cs, float64(y)*cs, zoom, offX, offY)
			dst.DrawImage(tex, top)
		}
	}

	gridW := float64(s.Cols()) * cs
	gridH := float64(s.Rows()) * cs
	for x := 0; x <= s.Cols(); x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, gridH*zoom)
		op.GeoM.Translate(float64(x)*cs*zoom+offX, offY)
		dst.DrawImage(r.lineImg, op)
	}
	for y := 0; y <= s.Rows(); y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(gridW*zoom, 1)
		op.GeoM.Translate(offX, float64(y)*cs*zoom+offY)
		dst.DrawImage(r.lineImg, op)
	}
}

// DrawHover highlights the cell under the cursor.
func (r *Screen) DrawHover(dst *ebiten.Image, gx, gy int, zoom, offX, offY float64) {
	cs := float64(r.tileSize)
	op := &ebiten.DrawImageOptions{}
	r.applyCanvas(op, float64(gx)*cs, float64(gy)*cs, zoom, offX, offY)
	dst.DrawImage(r.hoverImg, op)
}
