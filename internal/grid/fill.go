package grid

type point struct {
	x, y int
}

// Fill replaces every cell 4-connected to (sx, sy) whose value equals
// target with replacement, bounded by the grid's edges. It returns true
// when at least one cell changed. Fill is a no-op when target equals
// replacement or when the seed is out of range or does not match target.
//
// The fill is iterative: a worklist seeded with (sx, sy) is drained,
// skipping coordinates that are out of bounds or no longer equal to
// target. The value check doubles as the visited check, so a cell is
// overwritten at most once and the worklist may hold stale duplicates
// without affecting the result.
func (s *Store) Fill(sx, sy int, target, replacement TileID) bool {
	if target == replacement {
		return false
	}
	if !s.InBounds(sx, sy) || s.g.Cells[sy][sx] != target {
		return false
	}

	next := s.g.Clone()
	stack := []point{{sx, sy}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x < 0 || p.y < 0 || p.x >= next.Cols || p.y >= next.Rows {
			continue
		}
		if next.Cells[p.y][p.x] != target {
			continue
		}
		next.Cells[p.y][p.x] = replacement
		stack = append(stack,
			point{p.x + 1, p.y},
			point{p.x - 1, p.y},
			point{p.x, p.y + 1},
			point{p.x, p.y - 1},
		)
	}
	s.Replace(next)
	return true
}
