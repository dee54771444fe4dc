// Package editor owns the mutable editing state (grid, palette, history,
// tool, selected tile) and routes every mutation through one controller,
// so the live grid and its snapshots can never alias each other.
package editor

import (
	"tilepaint/internal/document"
	"tilepaint/internal/grid"
	"tilepaint/internal/history"
	"tilepaint/internal/palette"
	"tilepaint/internal/script"
)

// Editor interprets pointer gestures against the active tool and decides
// which grid operation to invoke and when to checkpoint history.
//
// Checkpoint discipline: one checkpoint per discrete gesture. A pointer
// down checkpoints once before the first cell mutation; pointer moves
// during the same drag share it, so undo reverts a whole stroke. A flood
// fill checkpoints once before its batch, and not at all when it is a
// no-op. Pick mutates no grid state and takes no checkpoint.
type Editor struct {
	store   *grid.Store
	history *history.Manager
	pal     palette.Palette

	tool     Tool
	selected grid.TileID

	// stroke state for the current gesture
	stroking    bool
	strokeValue grid.TileID
}

// New creates an editor over a fresh cols x rows grid. The selected tile
// defaults to the palette's first entry.
func New(cols, rows int, pal palette.Palette) *Editor {
	e := &Editor{
		store:   grid.NewStore(cols, rows),
		history: history.NewManager(),
		pal:     pal,
		tool:    ToolPaint,
	}
	e.selected = e.defaultTile()
	return e
}

func (e *Editor) defaultTile() grid.TileID {
	if len(e.pal) > 0 {
		return grid.TileID(e.pal[0].ID)
	}
	return grid.Empty
}

func (e *Editor) Store() *grid.Store       { return e.store }
func (e *Editor) Palette() palette.Palette { return e.pal }
func (e *Editor) Tool() Tool               { return e.tool }
func (e *Editor) Selected() grid.TileID    { return e.selected }

func (e *Editor) SetTool(t Tool) { e.tool = t }

// SelectTile sets the tile used by paint and fill. Unknown ids are
// ignored so a stale palette reference cannot paint an invalid cell.
func (e *Editor) SelectTile(id grid.TileID) {
	if !e.pal.Has(id) {
		return
	}
	e.selected = id
}

// PointerDown starts a gesture at cell (gx, gy). Callers gate
// coordinates through grid.Mapper, so (gx, gy) is in bounds.
func (e *Editor) PointerDown(gx, gy int) {
	switch e.tool {
	case ToolPick:
		e.selected = e.store.Get(gx, gy)
		e.tool = ToolPaint
	case ToolFill:
		target := e.store.Get(gx, gy)
		if target == e.selected {
			return
		}
		e.history.Checkpoint(e.store.Snapshot())
		e.store.Fill(gx, gy, target, e.selected)
	case ToolErase:
		e.beginStroke(gx, gy, grid.Empty)
	default:
		e.beginStroke(gx, gy, e.selected)
	}
}

func (e *Editor) beginStroke(gx, gy int, value grid.TileID) {
	e.history.Checkpoint(e.store.Snapshot())
	e.stroking = true
	e.strokeValue = value
	e.store.Set(gx, gy, value)
}

// PointerMove continues the current drag. Out-of-range cells fall
// through to the store's silent no-op.
func (e *Editor) PointerMove(gx, gy int) {
	if !e.stroking {
		return
	}
	e.store.Set(gx, gy, e.strokeValue)
}

// PointerUp ends the gesture.
func (e *Editor) PointerUp() {
	e.stroking = false
}

// Undo restores the previous snapshot; false means nothing to undo.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Undo(e.store.Snapshot())
	if !ok {
		return false
	}
	e.store.Replace(snap)
	return true
}

// Redo restores the next snapshot; false means nothing to redo.
func (e *Editor) Redo() bool {
	snap, ok := e.history.Redo(e.store.Snapshot())
	if !ok {
		return false
	}
	e.store.Replace(snap)
	return true
}

// Export builds a structural document snapshot of the current state.
func (e *Editor) Export() document.Document {
	return document.Export(e.store, e.pal)
}

// ExportJSON encodes the current state as a portable document.
func (e *Editor) ExportJSON() ([]byte, error) {
	return e.Export().Marshal()
}

// ImportJSON validates and installs a document. On any error the live
// state is left untouched. On success the previous grid is checkpointed,
// the grid and dimensions are replaced, and the palette is swapped only
// when the document carries one.
func (e *Editor) ImportJSON(data []byte) error {
	doc, err := document.Decode(data)
	if err != nil {
		return err
	}
	if doc.Palette != nil {
		if err := doc.Palette.Validate(); err != nil {
			return err
		}
	}
	e.history.Checkpoint(e.store.Snapshot())
	e.store.Replace(doc.ToGrid())
	if doc.Palette != nil {
		e.pal = doc.Palette
	}
	if !e.pal.Has(e.selected) {
		e.selected = e.defaultTile()
	}
	return nil
}

// RunMacro executes a tengo macro against the grid as one checkpointed
// batch. A failing script leaves the grid exactly as it was, and a
// macro that changes nothing adds no history entry.
func (e *Editor) RunMacro(src []byte) error {
	before := e.store.Snapshot()
	if err := script.Run(src, e.store); err != nil {
		e.store.Replace(before)
		return err
	}
	if e.store.Snapshot().Equal(before) {
		return nil
	}
	e.history.Checkpoint(before)
	return nil
}

// History exposes stack depths for the UI status line.
func (e *Editor) History() (undo, redo int) {
	return e.history.UndoLen(), e.history.RedoLen()
}
