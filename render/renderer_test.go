package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/grid"
)

// MockScreen is a minimal tcell.Screen that records SetContent calls
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]mockCell
}

type mockCell struct {
	r     rune
	style tcell.Style
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]mockCell)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		panic("SetContent outside the screen")
	}
	m.cells[[2]int{x, y}] = mockCell{r: mainc, style: style}
}

func (m *MockScreen) bg(x, y int) tcell.Color {
	_, bg, _ := m.cells[[2]int{x, y}].style.Decompose()
	return bg
}

func paintState(t *testing.T) *engine.State {
	t.Helper()
	g := grid.Grid{Cols: 5, Rows: 3, CellSize: 2}
	s, err := engine.NewState(g, nil, 3, false)
	if err != nil {
		t.Fatal(err)
	}
	s.SetFood(grid.Cell{Col: 4, Row: 0})
	return s
}

func TestPaint_LayersCells(t *testing.T) {
	scr := newMockScreen(10, 6)
	s := paintState(t)
	Paint(scr, s, NightPalette)

	if got := len(scr.cells); got != 60 {
		t.Errorf("painted %d characters, want 60", got)
	}

	head := s.Snake.Head()
	hx, hy := s.Grid.Origin(head)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if got := scr.bg(hx+dx, hy+dy); got != NightPalette.Head {
				t.Errorf("head block (%d,%d) = %v, want head color", hx+dx, hy+dy, got)
			}
		}
	}

	fx, fy := s.Grid.Origin(s.Food)
	if got := scr.bg(fx, fy); got != NightPalette.Food {
		t.Errorf("food cell = %v, want food color", got)
	}

	neck := s.Snake.Body[1]
	nx, ny := s.Grid.Origin(neck)
	if got := scr.bg(nx, ny); got != NightPalette.TrailShade(1, s.Snake.Len()) {
		t.Errorf("body cell = %v, want trail shade", got)
	}

	if got := scr.bg(0, 0); got != NightPalette.Background {
		t.Errorf("empty cell = %v, want background", got)
	}
}

func TestPaint_ClipsToSurface(t *testing.T) {
	// Grid covers 10x6 but the surface is one column and row short
	scr := newMockScreen(9, 5)
	Paint(scr, paintState(t), DayPalette)

	if got := len(scr.cells); got != 45 {
		t.Errorf("painted %d characters, want 45", got)
	}
}

func TestPaint_NilStateDrawsNothing(t *testing.T) {
	scr := newMockScreen(4, 4)
	Paint(scr, nil, DayPalette)
	if len(scr.cells) != 0 {
		t.Errorf("painted %d characters for nil state", len(scr.cells))
	}
}

func TestPalette_TrailFades(t *testing.T) {
	p := NightPalette
	if p.TrailShade(0, 8) != p.Trail {
		t.Error("first segment should use the trail color")
	}
	if p.TrailShade(7, 8) == p.Trail {
		t.Error("last segment should fade toward the background")
	}
	if p.TrailShade(3, 1) != p.Trail {
		t.Error("single segment snake should use the trail color")
	}
}

func TestPalette_Toggle(t *testing.T) {
	tests := []struct {
		in   Palette
		want string
	}{
		{DayPalette, "night"},
		{NightPalette, "day"},
	}
	for _, tt := range tests {
		t.Run(tt.in.Name, func(t *testing.T) {
			if got := tt.in.Toggle().Name; got != tt.want {
				t.Errorf("Toggle() = %s, want %s", got, tt.want)
			}
		})
	}
	if PaletteByName("day").Name != "day" || PaletteByName("bogus").Name != "night" {
		t.Error("PaletteByName should resolve day and default to night")
	}
}

func TestDrawText_ClipsAndWide(t *testing.T) {
	scr := newMockScreen(6, 2)
	end := DrawText(scr, 0, 0, 6, "ab世界x", tcell.StyleDefault)
	// a b 世(2) fits in 4 columns, 界 ends at 6, x is clipped
	if end != 6 {
		t.Errorf("DrawText end = %d, want 6", end)
	}
	if scr.cells[[2]int{2, 0}].r != '世' {
		t.Errorf("column 2 = %q, want 世", scr.cells[[2]int{2, 0}].r)
	}
	if got := DrawText(scr, 0, 5, 6, "off", tcell.StyleDefault); got != 0 {
		t.Errorf("DrawText off-screen = %d, want 0", got)
	}
	if TextWidth("世界") != 4 {
		t.Errorf("TextWidth = %d, want 4", TextWidth("世界"))
	}
}

func TestFillRect_Clips(t *testing.T) {
	scr := newMockScreen(4, 4)
	FillRect(scr, -2, 2, 10, 10, tcell.StyleDefault)
	if got := len(scr.cells); got != 8 {
		t.Errorf("filled %d cells, want 8", got)
	}
}
