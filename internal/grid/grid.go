package grid

// TileID names a palette entry. The reserved id Empty means the cell
// holds no tile.
type TileID string

const Empty TileID = "empty"

// Grid is a rectangular matrix of tile ids. Cells is row-major:
// Cells[y][x] with 0 <= x < Cols and 0 <= y < Rows.
type Grid struct {
	Cols  int
	Rows  int
	Cells [][]TileID
}

// New returns a cols x rows grid with every cell set to Empty.
func New(cols, rows int) Grid {
	cells := make([][]TileID, rows)
	for y := range cells {
		row := make([]TileID, cols)
		for x := range row {
			row[x] = Empty
		}
		cells[y] = row
	}
	return Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Clone returns a deep copy sharing no row storage with the receiver.
func (g Grid) Clone() Grid {
	cells := make([][]TileID, len(g.Cells))
	for y := range g.Cells {
		row := make([]TileID, len(g.Cells[y]))
		copy(row, g.Cells[y])
		cells[y] = row
	}
	return Grid{Cols: g.Cols, Rows: g.Rows, Cells: cells}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g Grid) Equal(o Grid) bool {
	if g.Cols != o.Cols || g.Rows != o.Rows || len(g.Cells) != len(o.Cells) {
		return false
	}
	for y := range g.Cells {
		if len(g.Cells[y]) != len(o.Cells[y]) {
			return false
		}
		for x := range g.Cells[y] {
			if g.Cells[y][x] != o.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
