package history

import (
	"fmt"
	"testing"

	"tilepaint/internal/grid"
)

// stamped returns a 2x2 grid whose (0,0) cell carries a per-step marker.
func stamped(step int) grid.Grid {
	g := grid.New(2, 2)
	g.Cells[0][0] = grid.TileID(fmt.Sprintf("t%d", step))
	return g
}

func TestUndoRedoInverse(t *testing.T) {
	m := NewManager()
	s := grid.NewStore(2, 2)

	// three checkpointed mutations
	for step := 1; step <= 3; step++ {
		m.Checkpoint(s.Snapshot())
		s.Replace(stamped(step))
	}

	preUndo := s.Snapshot()
	snap, ok := m.Undo(s.Snapshot())
	if !ok {
		t.Fatalf("Undo reported nothing to undo")
	}
	s.Replace(snap)
	if !s.Snapshot().Equal(stamped(2)) {
		t.Fatalf("undo did not restore the previous grid")
	}

	snap, ok = m.Redo(s.Snapshot())
	if !ok {
		t.Fatalf("Redo reported nothing to redo")
	}
	s.Replace(snap)
	if !s.Snapshot().Equal(preUndo) {
		t.Fatalf("redo did not restore the pre-undo grid")
	}
}

func TestRedoEmptyIsNoOp(t *testing.T) {
	m := NewManager()
	if _, ok := m.Redo(grid.New(1, 1)); ok {
		t.Fatalf("Redo with an empty stack should report false")
	}
	if _, ok := m.Undo(grid.New(1, 1)); ok {
		t.Fatalf("Undo with an empty stack should report false")
	}
}

func TestCheckpointClearsRedo(t *testing.T) {
	m := NewManager()
	m.Checkpoint(stamped(1))
	if _, ok := m.Undo(stamped(2)); !ok {
		t.Fatalf("expected an undo entry")
	}
	if m.RedoLen() != 1 {
		t.Fatalf("expected 1 redo entry, got %d", m.RedoLen())
	}
	m.Checkpoint(stamped(3))
	if m.RedoLen() != 0 {
		t.Fatalf("checkpoint must clear the redo stack, got %d entries", m.RedoLen())
	}
}

func TestUndoBoundKeepsMostRecent(t *testing.T) {
	m := NewManager()
	for step := 1; step <= MaxUndo+10; step++ {
		m.Checkpoint(stamped(step))
	}
	if m.UndoLen() != MaxUndo {
		t.Fatalf("undo stack length = %d, want %d", m.UndoLen(), MaxUndo)
	}
	// the most recent MaxUndo snapshots survive, newest first when popped
	for step := MaxUndo + 10; step > 10; step-- {
		snap, ok := m.Undo(grid.New(2, 2))
		if !ok {
			t.Fatalf("ran out of undo entries at step %d", step)
		}
		if !snap.Equal(stamped(step)) {
			t.Fatalf("popped snapshot for step %d does not match", step)
		}
	}
	if m.UndoLen() != 0 {
		t.Fatalf("expected drained undo stack, got %d", m.UndoLen())
	}
}

func TestCheckpointSnapshotIsDeepCopy(t *testing.T) {
	m := NewManager()
	g := stamped(1)
	m.Checkpoint(g)
	g.Cells[0][0] = "mutated"
	snap, _ := m.Undo(grid.New(2, 2))
	if snap.Cells[0][0] != "t1" {
		t.Fatalf("checkpoint stored a reference to the live grid")
	}
}
