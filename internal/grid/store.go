package grid

// Store owns the live grid and its declared dimensions. All reads and
// mutations of cell contents go through a Store; the grid matrix is never
// handed out for external mutation.
type Store struct {
	g Grid
}

// NewStore creates a store owning a fresh cols x rows grid of Empty cells.
func NewStore(cols, rows int) *Store {
	return &Store{g: New(cols, rows)}
}

func (s *Store) Cols() int { return s.g.Cols }
func (s *Store) Rows() int { return s.g.Rows }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (s *Store) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.g.Cols && y < s.g.Rows
}

// Get returns the tile id at (x, y). Callers are expected to stay in
// bounds; out-of-range reads return Empty.
func (s *Store) Get(x, y int) TileID {
	if !s.InBounds(x, y) {
		return Empty
	}
	return s.g.Cells[y][x]
}

// Set replaces the cell at (x, y). Out-of-range targets are a silent
// no-op: drag gestures routinely report transient coordinates just past
// the canvas edge and those must not surface as errors.
func (s *Store) Set(x, y int, id TileID) {
	if !s.InBounds(x, y) {
		return
	}
	s.g.Cells[y][x] = id
}

// Replace atomically swaps the owned grid and dimensions. Used by import
// and by undo/redo; dimension changes are accepted as-is.
func (s *Store) Replace(g Grid) {
	s.g = g
}

// Snapshot returns a deep copy of the current grid, safe to retain across
// later mutations.
func (s *Store) Snapshot() Grid {
	return s.g.Clone()
}
