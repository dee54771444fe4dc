// Package history maintains the editor's bounded undo/redo stacks of
// full grid snapshots.
package history

import "tilepaint/internal/grid"

// MaxUndo is the undo stack capacity; the oldest snapshot is evicted
// once it is exceeded.
const MaxUndo = 50

// Manager holds the undo and redo stacks. Snapshots are deep copies and
// never alias the live grid, so restoring one cannot be corrupted by
// later edits.
type Manager struct {
	undo []grid.Grid
	redo []grid.Grid
	max  int
}

func NewManager() *Manager {
	return &Manager{max: MaxUndo}
}

// Checkpoint pushes a deep copy of g onto the undo stack, evicting the
// oldest entry past capacity, and clears the redo stack: any new edit
// invalidates the redo branch.
func (m *Manager) Checkpoint(g grid.Grid) {
	if m.max <= 0 {
		m.max = MaxUndo
	}
	if len(m.undo) >= m.max {
		m.undo = m.undo[1:]
	}
	m.undo = append(m.undo, g.Clone())
	m.redo = nil
}

// Undo pops the most recent snapshot, pushing current onto the redo
// stack. ok is false when there is nothing to undo; that is not an
// error, just a no-op.
func (m *Manager) Undo(current grid.Grid) (grid.Grid, bool) {
	n := len(m.undo)
	if n == 0 {
		return grid.Grid{}, false
	}
	snap := m.undo[n-1]
	m.undo = m.undo[:n-1]
	m.redo = append(m.redo, current.Clone())
	return snap, true
}

// Redo is the mirror of Undo: pop from the redo stack, push current onto
// the undo stack.
func (m *Manager) Redo(current grid.Grid) (grid.Grid, bool) {
	n := len(m.redo)
	if n == 0 {
		return grid.Grid{}, false
	}
	snap := m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.undo = append(m.undo, current.Clone())
	return snap, true
}

// UndoLen reports the number of snapshots available to undo.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen reports the number of snapshots available to redo.
func (m *Manager) RedoLen() int { return len(m.redo) }
