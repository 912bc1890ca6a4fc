package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/grid"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Paint redraws the whole grid from the snake, food and grid alone
// Background first, then body tail to head, head, food last
func Paint(scr Surface, s *engine.State, pal Palette) {
	if s == nil || !s.Grid.Valid() {
		return
	}
	w, h := scr.Size()
	g := s.Grid

	bg := tcell.StyleDefault.Background(pal.Background)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fillCell(scr, g, grid.Cell{Col: c, Row: r}, bg, w, h)
		}
	}

	if s.Snake != nil {
		body := s.Snake.Body
		for i := len(body) - 1; i >= 1; i-- {
			style := tcell.StyleDefault.Background(pal.TrailShade(i, len(body)))
			fillCell(scr, g, body[i], style, w, h)
		}
		if len(body) > 0 {
			fillCell(scr, g, body[0], tcell.StyleDefault.Background(pal.Head), w, h)
		}
	}

	if s.HasFood {
		fillCell(scr, g, s.Food, tcell.StyleDefault.Background(pal.Food), w, h)
	}
}

// fillCell paints the cellSize×cellSize block of c, clipped to the surface
func fillCell(scr Surface, g grid.Grid, c grid.Cell, style tcell.Style, w, h int) {
	x0, y0 := g.Origin(c)
	for dy := 0; dy < g.CellSize; dy++ {
		y := y0 + dy
		if y >= h {
			return
		}
		for dx := 0; dx < g.CellSize; dx++ {
			x := x0 + dx
			if x >= w {
				break
			}
			scr.SetContent(x, y, ' ', nil, style)
		}
	}
}
