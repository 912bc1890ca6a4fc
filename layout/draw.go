package layout

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/render"
)

// Draw paints the navbar, panels and theme toggle over the background
func (l *Layout) Draw(scr render.Surface) {
	pal := l.palette
	panelStyle := tcell.StyleDefault.Background(pal.Panel).Foreground(pal.Text)
	borderStyle := tcell.StyleDefault.Background(pal.Panel).Foreground(pal.PanelBorder)
	titleStyle := panelStyle.Bold(true)

	for _, p := range l.panels {
		x, y := l.screenPos(p)
		render.FillRect(scr, x, y, p.W, p.H, panelStyle)

		switch p.Name {
		case PanelNavbar:
			l.drawTabs(scr, y+1, panelStyle)
			continue
		case PanelModeToggle:
			label := "( night )"
			if pal.Name == render.DayPalette.Name {
				label = "(  day  )"
			}
			render.DrawText(scr, x+1, y+1, x+p.W-1, label, panelStyle.Foreground(pal.Accent))
			continue
		}

		drawBorder(scr, x, y, p.W, p.H, borderStyle)
		if p.Title != "" {
			render.DrawText(scr, x+2, y, x+p.W-2, " "+p.Title+" ", titleStyle)
		}
		for i, line := range p.Lines {
			ly := y + 1 + i
			if ly >= y+p.H-1 {
				break
			}
			render.DrawText(scr, x+2, ly, x+p.W-2, line, panelStyle)
		}
	}
}

func (l *Layout) drawTabs(scr render.Surface, y int, style tcell.Style) {
	for _, t := range l.tabs {
		s := style
		if t.page == l.page {
			s = s.Foreground(l.palette.Accent).Underline(true)
		}
		render.DrawText(scr, t.x, y, l.width, t.label, s)
	}
}

func drawBorder(scr render.Surface, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	sw, sh := scr.Size()
	set := func(cx, cy int, r rune) {
		if cx >= 0 && cy >= 0 && cx < sw && cy < sh {
			scr.SetContent(cx, cy, r, nil, style)
		}
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		set(cx, y, tcell.RuneHLine)
		set(cx, y+h-1, tcell.RuneHLine)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		set(x, cy, tcell.RuneVLine)
		set(x+w-1, cy, tcell.RuneVLine)
	}
	set(x, y, tcell.RuneULCorner)
	set(x+w-1, y, tcell.RuneURCorner)
	set(x, y+h-1, tcell.RuneLLCorner)
	set(x+w-1, y+h-1, tcell.RuneLRCorner)
}
