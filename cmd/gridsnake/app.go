package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/layout"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/status"
)

const wheelStep = 3

// poster queues events for the driver loop
type poster interface {
	Post(ev engine.Event) bool
}

// app translates terminal input into driver events
// Layout mutation is posted as FuncEvent so it runs on the driver loop
type app struct {
	cfg       engine.Config
	layout    *layout.Layout
	presenter *presenter
	post      poster

	lastButtons tcell.ButtonMask
}

// handleEvent processes one terminal event, returning false on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
			a.layout.Resize(w, h, a.cfg.CompactFor(w))
			d.HandleResize(w, h)
		}))

	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
			a.switchPage(d, a.layout.Page().Next())
		}))
	case tcell.KeyUp:
		a.scroll(-1)
	case tcell.KeyDown:
		a.scroll(1)
	case tcell.KeyPgUp:
		a.scroll(-a.pageRows())
	case tcell.KeyPgDn:
		a.scroll(a.pageRows())
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 't':
			a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
				a.layout.ToggleTheme()
				d.SetVisible(d.Visible())
			}))
		case r == 'd':
			a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
				a.presenter.overlay = !a.presenter.overlay
				d.SetVisible(d.Visible())
			}))
		case r >= '1' && r < '1'+rune(layout.PageCount):
			page := layout.Page(r - '1')
			a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
				a.switchPage(d, page)
			}))
		}
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		a.scroll(-wheelStep)
	case buttons&tcell.WheelDown != 0:
		a.scroll(wheelStep)
	case pressed:
		a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
			a.click(d, x, y)
		}))
	}
}

// click routes a press to a tab, the theme toggle, or the driver when no panel is hit
func (a *app) click(d *engine.Driver, x, y int) {
	if page, ok := a.layout.TabAt(x, y); ok {
		a.switchPage(d, page)
		return
	}
	if a.layout.ToggleAt(x, y) {
		a.layout.ToggleTheme()
		d.SetVisible(d.Visible())
		return
	}
	if _, hit := a.layout.HitPanel(x, y); hit {
		return
	}
	d.HandleClick(x, y)
}

func (a *app) scroll(delta int) {
	a.post.Post(engine.FuncEvent(func(d *engine.Driver) {
		if a.layout.Scroll(delta) {
			d.HandleScroll()
		}
	}))
}

func (a *app) switchPage(d *engine.Driver, page layout.Page) {
	if !a.layout.SetPage(page) {
		return
	}
	d.HandleScroll()
	d.SetVisible(a.layout.EffectVisible())
}

func (a *app) pageRows() int {
	_, h := a.presenter.size()
	return max(1, h-4)
}

// presenter composes background, host page and metrics overlay on the terminal
type presenter struct {
	screen  tcell.Screen
	layout  *layout.Layout
	reg     *status.Registry
	overlay bool
}

func (p *presenter) size() (int, int) {
	return p.screen.Size()
}

// Present runs on the driver loop after every tick and event
func (p *presenter) Present(s *engine.State, visible bool) {
	pal := p.layout.Palette()
	w, h := p.screen.Size()

	render.FillRect(p.screen, 0, 0, w, h, tcell.StyleDefault.Background(pal.Background))
	if visible {
		render.Paint(p.screen, s, pal)
	}
	p.layout.Draw(p.screen)
	if p.overlay {
		p.drawOverlay(s, pal, w, h)
	}
	p.screen.Show()
}

func (p *presenter) drawOverlay(s *engine.State, pal render.Palette, w, h int) {
	lines := p.reg.Lines()
	if s != nil {
		lines = append(lines, fmt.Sprintf("grid=%dx%d cell=%d", s.Grid.Cols, s.Grid.Rows, s.Grid.CellSize))
	}
	width := 0
	for _, l := range lines {
		width = max(width, render.TextWidth(l))
	}
	x := max(0, w-width-2)
	y := 4
	style := tcell.StyleDefault.Background(pal.Panel).Foreground(pal.Accent)
	render.FillRect(p.screen, x-1, y, width+2, len(lines), style)
	for i, l := range lines {
		if y+i >= h {
			break
		}
		render.DrawText(p.screen, x, y+i, w, l, style)
	}
}
