package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FillRect paints a clipped rectangle with spaces in style
func FillRect(scr Surface, x, y, w, h int, style tcell.Style) {
	sw, sh := scr.Size()
	for row := max(y, 0); row < y+h && row < sh; row++ {
		for col := max(x, 0); col < x+w && col < sw; col++ {
			scr.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText writes s starting at (x, y), stopping at maxX (exclusive)
// Wide runes advance two columns; returns the column after the last rune drawn
func DrawText(scr Surface, x, y, maxX int, s string, style tcell.Style) int {
	sw, sh := scr.Size()
	if y < 0 || y >= sh {
		return x
	}
	if maxX > sw {
		maxX = sw
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > maxX {
			break
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// TextWidth returns the display width of s in terminal columns
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
