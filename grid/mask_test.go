package grid

import "testing"

func TestBuildMask_CellRanges(t *testing.T) {
	g := Grid{Cols: 10, Rows: 8, CellSize: 4}

	// x: floor(5/4)=1 .. ceil(13/4)=4 -> cols 1,2,3
	// y: floor(2/4)=0 .. ceil(6/4)=2 -> rows 0,1
	m := BuildMask([]Rect{{Left: 5, Top: 2, Right: 13, Bottom: 6}}, g)

	if got := m.Count(); got != 6 {
		t.Fatalf("Count() = %d, want 6", got)
	}
	for row := 0; row < 2; row++ {
		for col := 1; col < 4; col++ {
			if !m.Blocked(Cell{col, row}) {
				t.Errorf("cell (%d,%d) should be blocked", col, row)
			}
		}
	}
	if m.Blocked(Cell{0, 0}) || m.Blocked(Cell{4, 0}) || m.Blocked(Cell{1, 2}) {
		t.Error("cells outside the rectangle should be free")
	}
}

func TestBuildMask_ClipsToGrid(t *testing.T) {
	g := Grid{Cols: 5, Rows: 5, CellSize: 2}

	rects := []Rect{
		{Left: -6, Top: -6, Right: 3, Bottom: 3},   // hangs off the top-left
		{Left: 8, Top: 8, Right: 100, Bottom: 100}, // hangs off the bottom-right
		{Left: 20, Top: 0, Right: 30, Bottom: 4},   // fully outside
	}
	m := BuildMask(rects, g)

	// First rect: cols 0..ceil(3/2)=2 -> 0,1; rows 0,1 -> 4 cells
	// Second rect: cols 4..4, rows 4..4 -> 1 cell
	if got := m.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if !m.Blocked(Cell{1, 1}) || !m.Blocked(Cell{4, 4}) {
		t.Error("clipped cells should be blocked")
	}
}

func TestBuildMask_OverlapAndEmpty(t *testing.T) {
	g := Grid{Cols: 6, Rows: 6, CellSize: 1}
	rects := []Rect{
		RectXYWH(0, 0, 3, 3),
		RectXYWH(1, 1, 3, 3),
		RectXYWH(5, 5, 0, 4), // zero width
		{Left: 4, Top: 4, Right: 2, Bottom: 6},
	}
	m := BuildMask(rects, g)
	if got := m.Count(); got != 14 {
		t.Errorf("Count() = %d, want 14", got)
	}
}

func TestBuildMask_ScrollShiftsCells(t *testing.T) {
	g := Grid{Cols: 8, Rows: 8, CellSize: 2}
	panel := RectXYWH(4, 6, 4, 2)

	before := BuildMask([]Rect{panel}, g)
	panel.Top -= 4
	panel.Bottom -= 4
	after := BuildMask([]Rect{panel}, g)

	if !before.Blocked(Cell{2, 3}) || before.Blocked(Cell{2, 1}) {
		t.Error("before scroll: panel should cover row 3 only")
	}
	if !after.Blocked(Cell{2, 1}) || after.Blocked(Cell{2, 3}) {
		t.Error("after scroll: panel should cover row 1 only")
	}
	if c, r := after.Dims(); c != 8 || r != 8 {
		t.Errorf("Dims() = (%d, %d), want (8, 8)", c, r)
	}
}

func TestMask_NilIsFree(t *testing.T) {
	var m *Mask
	if m.Blocked(Cell{0, 0}) {
		t.Error("nil mask should block nothing")
	}
	if m.Count() != 0 {
		t.Error("nil mask should count zero")
	}
}
