package grid

import "testing"

func TestNewGridAllEmpty(t *testing.T) {
	s := NewStore(4, 3)
	if s.Cols() != 4 || s.Rows() != 3 {
		t.Fatalf("expected 4x3 store, got %dx%d", s.Cols(), s.Rows())
	}
	for y := 0; y < s.Rows(); y++ {
		for x := 0; x < s.Cols(); x++ {
			if got := s.Get(x, y); got != Empty {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, got, Empty)
			}
		}
	}
}

func TestSetOutOfRangeIsNoOp(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"negative_x", -1, 0},
		{"negative_y", 0, -1},
		{"past_cols", 3, 0},
		{"past_rows", 0, 2},
		{"far_out", 100, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore(3, 2)
			before := s.Snapshot()
			s.Set(c.x, c.y, "brick")
			if !s.Snapshot().Equal(before) {
				t.Fatalf("out-of-range Set(%d,%d) mutated the grid", c.x, c.y)
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewStore(3, 3)
	s.Set(1, 2, "ground")
	if got := s.Get(1, 2); got != "ground" {
		t.Fatalf("Get(1,2) = %q, want %q", got, "ground")
	}
	if got := s.Get(2, 1); got != Empty {
		t.Fatalf("Get(2,1) = %q, want %q", got, Empty)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewStore(2, 2)
	snap := s.Snapshot()
	s.Set(0, 0, "brick")
	if snap.Cells[0][0] != Empty {
		t.Fatalf("snapshot aliased the live grid")
	}
	snap.Cells[1][1] = "ground"
	if s.Get(1, 1) != Empty {
		t.Fatalf("writing a snapshot leaked into the live grid")
	}
}

func TestReplaceSwapsDimensions(t *testing.T) {
	s := NewStore(2, 2)
	s.Replace(New(5, 7))
	if s.Cols() != 5 || s.Rows() != 7 {
		t.Fatalf("expected 5x7 after Replace, got %dx%d", s.Cols(), s.Rows())
	}
}
