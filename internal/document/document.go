// Package document converts grid and palette state to and from the
// portable JSON document format:
//
//	{
//	  "cols": <int>,
//	  "rows": <int>,
//	  "grid": [ [ <tile id> x cols ] x rows ],
//	  "palette": [ { "id", "name", "data" } x N ]
//	}
//
// grid[y][x] is row-major; "empty" is the only reserved id.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"tilepaint/internal/grid"
	"tilepaint/internal/palette"
)

// ErrMalformed marks a document that parsed but is missing cols, rows, or
// grid, or whose grid shape disagrees with its declared dimensions.
var ErrMalformed = errors.New("malformed document")

// ParseError wraps the decoder's message when the supplied bytes are not
// valid JSON at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is the portable snapshot of a grid plus its palette. A nil
// Palette in a decoded document means the field was absent and the
// importer keeps the current palette.
type Document struct {
	Cols    int             `json:"cols"`
	Rows    int             `json:"rows"`
	Grid    [][]grid.TileID `json:"grid"`
	Palette palette.Palette `json:"palette,omitempty"`
}

// Export builds a structural snapshot of the store and palette: mutating
// the live grid afterwards must not alter the exported document.
func Export(s *grid.Store, p palette.Palette) Document {
	snap := s.Snapshot()
	return Document{
		Cols:    snap.Cols,
		Rows:    snap.Rows,
		Grid:    snap.Cells,
		Palette: p.Clone(),
	}
}

// Marshal encodes the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ToGrid converts the document's matrix into a Grid value owned by the
// caller.
func (d Document) ToGrid() grid.Grid {
	cells := make([][]grid.TileID, len(d.Grid))
	for y := range d.Grid {
		row := make([]grid.TileID, len(d.Grid[y]))
		copy(row, d.Grid[y])
		cells[y] = row
	}
	return grid.Grid{Cols: d.Cols, Rows: d.Rows, Cells: cells}
}

// Decode parses and validates a document. Invalid JSON yields a
// *ParseError; parse success with cols, rows, or grid missing (or a grid
// that does not match the declared shape) yields ErrMalformed.
func Decode(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, &ParseError{Err: err}
	}
	if d.Cols <= 0 || d.Rows <= 0 || d.Grid == nil {
		return Document{}, fmt.Errorf("%w: cols, rows, and grid are required", ErrMalformed)
	}
	if len(d.Grid) != d.Rows {
		return Document{}, fmt.Errorf("%w: grid has %d rows, declared %d", ErrMalformed, len(d.Grid), d.Rows)
	}
	for y, row := range d.Grid {
		if len(row) != d.Cols {
			return Document{}, fmt.Errorf("%w: row %d has %d cells, declared %d", ErrMalformed, y, len(row), d.Cols)
		}
	}
	return d, nil
}
