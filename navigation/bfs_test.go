package navigation

import (
	"testing"

	"github.com/lixenwraith/gridsnake/grid"
)

// blockedSet builds a passability callback rejecting the listed cells
func blockedSet(cells ...grid.Cell) Passability {
	set := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(c grid.Cell) bool { return !set[c] }
}

// assertContiguous verifies every step of path moves exactly one cell on the torus
func assertContiguous(t *testing.T, g grid.Grid, path []grid.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if g.Fold(path[i-1], path[i]) == grid.DirNone {
			t.Fatalf("path step %d: %v -> %v is not a single move", i, path[i-1], path[i])
		}
	}
}

func TestFindPath_OpenGridHopCount(t *testing.T) {
	g := grid.Grid{Cols: 5, Rows: 5, CellSize: 1}
	start := grid.Cell{Col: 0, Row: 0}
	goal := grid.Cell{Col: 2, Row: 2}

	path, ok := FindPath(g, start, goal, nil)
	if !ok {
		t.Fatal("expected path on open grid")
	}
	// Manhattan distance is 4 hops; going round the torus costs 3+3, so the shortest path holds 5 cells
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5: %v", len(path), path)
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Errorf("path endpoints = %v..%v, want %v..%v", path[0], path[len(path)-1], start, goal)
	}
	assertContiguous(t, g, path)
}

func TestFindPath_NeighborTwoHops(t *testing.T) {
	g := grid.Grid{Cols: 5, Rows: 5, CellSize: 1}
	start := grid.Cell{Col: 0, Row: 0}
	goal := grid.Cell{Col: 2, Row: 0}

	path, ok := FindPath(g, start, goal, nil)
	if !ok {
		t.Fatal("expected path")
	}
	if hops := len(path) - 1; hops != 2 {
		t.Fatalf("hops = %d, want 2: %v", hops, path)
	}
	assertContiguous(t, g, path)
}

func TestFindPath_UsesWraparound(t *testing.T) {
	g := grid.Grid{Cols: 10, Rows: 3, CellSize: 1}
	start := grid.Cell{Col: 0, Row: 1}
	goal := grid.Cell{Col: 9, Row: 1}

	path, ok := FindPath(g, start, goal, nil)
	if !ok {
		t.Fatal("expected path")
	}
	if len(path) != 2 {
		t.Fatalf("len(path) = %d, want 2 (single wrap step): %v", len(path), path)
	}
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	g := grid.Grid{Cols: 7, Rows: 7, CellSize: 1}
	// Walls at cols 3 and 6 over rows 0..5 leave row 6 as the only crossing
	var wall []grid.Cell
	for row := 0; row < 6; row++ {
		wall = append(wall, grid.Cell{Col: 3, Row: row}, grid.Cell{Col: 6, Row: row})
	}
	passable := blockedSet(wall...)

	path, ok := FindPath(g, grid.Cell{Col: 1, Row: 2}, grid.Cell{Col: 5, Row: 2}, passable)
	if !ok {
		t.Fatal("expected a path through the gap")
	}
	assertContiguous(t, g, path)
	for _, c := range path {
		if !passable(c) {
			t.Fatalf("path crosses wall cell %v", c)
		}
	}
	// Up to row 6 through the top edge (3), across via col 6 (3), down through the bottom edge (3)
	if hops := len(path) - 1; hops != 9 {
		t.Errorf("hops = %d, want 9: %v", hops, path)
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	g := grid.Grid{Cols: 5, Rows: 5, CellSize: 1}
	goal := grid.Cell{Col: 2, Row: 2}
	passable := blockedSet(
		grid.Cell{Col: 2, Row: 1}, grid.Cell{Col: 2, Row: 3},
		grid.Cell{Col: 1, Row: 2}, grid.Cell{Col: 3, Row: 2},
	)

	path, ok := FindPath(g, grid.Cell{Col: 0, Row: 0}, goal, passable)
	if ok || path != nil {
		t.Errorf("FindPath into enclosed cell = (%v, %t), want (nil, false)", path, ok)
	}
}

func TestFindPath_StartAndGoalExempt(t *testing.T) {
	g := grid.Grid{Cols: 4, Rows: 1, CellSize: 1}
	start := grid.Cell{Col: 0, Row: 0}
	goal := grid.Cell{Col: 2, Row: 0}
	// Start and goal are reported impassable (snake head, occupied target) but must still work
	passable := blockedSet(start, goal)

	path, ok := FindPath(g, start, goal, passable)
	if !ok || len(path) != 3 {
		t.Fatalf("FindPath = (%v, %t), want a 3-cell path", path, ok)
	}
}

func TestFindPath_SameCell(t *testing.T) {
	g := grid.Grid{Cols: 3, Rows: 3, CellSize: 1}
	c := grid.Cell{Col: 1, Row: 1}
	path, ok := FindPath(g, c, c, nil)
	if !ok || len(path) != 1 || path[0] != c {
		t.Errorf("FindPath(c, c) = (%v, %t), want ([%v], true)", path, ok, c)
	}
}

func TestFindPath_InvalidGrid(t *testing.T) {
	if _, ok := FindPath(grid.Grid{}, grid.Cell{}, grid.Cell{Col: 1}, nil); ok {
		t.Error("FindPath on zero grid should fail")
	}
}

func TestSearcher_ReuseAcrossSizes(t *testing.T) {
	s := NewSearcher()
	big := grid.Grid{Cols: 20, Rows: 20, CellSize: 1}
	small := grid.Grid{Cols: 4, Rows: 4, CellSize: 1}

	if _, ok := s.FindPath(big, grid.Cell{}, grid.Cell{Col: 10, Row: 10}, nil); !ok {
		t.Fatal("big grid search failed")
	}
	path, ok := s.FindPath(small, grid.Cell{}, grid.Cell{Col: 2, Row: 2}, nil)
	if !ok || len(path) != 5 {
		t.Fatalf("small grid after big = (%v, %t), want 5 cells", path, ok)
	}
	path, ok = s.FindPath(big, grid.Cell{}, grid.Cell{Col: 19, Row: 19}, nil)
	if !ok || len(path) != 3 {
		t.Fatalf("big grid after small = (%v, %t), want 3 cells", path, ok)
	}
}
