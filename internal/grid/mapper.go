package grid

import "math"

// Mapper converts a raw pointer position into grid cell indices. It is
// the single path from screen space to grid space so that every tool sees
// the same cell under any pan, zoom, or tile size.
type Mapper struct {
	OriginX  float64
	OriginY  float64
	TileSize int
	Zoom     float64
}

// Cell maps the pointer position (px, py) to cell indices within a
// cols x rows grid. ok is false when the position falls outside the grid.
func (m Mapper) Cell(px, py float64, cols, rows int) (gx, gy int, ok bool) {
	zoom := m.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	step := float64(m.TileSize) * zoom
	gx = int(math.Floor((px - m.OriginX) / step))
	gy = int(math.Floor((py - m.OriginY) / step))
	if gx < 0 || gy < 0 || gx >= cols || gy >= rows {
		return gx, gy, false
	}
	return gx, gy, true
}
