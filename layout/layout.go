package layout

import (
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/render"
)

// Tracked panel names, each becomes a barrier region on the home page
const (
	PanelNavbar     = "navbar"
	PanelModeToggle = "mode-toggle-bar"
	PanelAbout      = "about-card"
	PanelGallery    = "gallery"
	PanelDownload   = "download-btn"
	PanelCV         = "cv"
	PanelContacts   = "contacts"
	PanelPage       = "page"
)

// Geometry in terminal cells
const (
	navbarHeight  = 3
	toggleWidth   = 12
	toggleHeight  = 3
	contentTop    = navbarHeight + 2
	panelGap      = 2
	bottomMargin  = 4
	maxContentW   = 72
	wideMargin    = 4
	compactMargin = 1
	tabGap        = 2
)

// Panel is a rectangular UI region in page content coordinates
// Fixed panels ignore the scroll offset
type Panel struct {
	Name  string
	Title string
	Lines []string
	X, Y  int
	W, H  int
	Fixed bool
}

// tab is a clickable navbar entry in screen coordinates
type tab struct {
	page  Page
	x, w  int
	label string
}

// Layout is the host page: navbar tabs, content panels, scroll offset and theme
// Not safe for concurrent use; the driver loop owns it
type Layout struct {
	width, height int
	compact       bool

	page    Page
	scroll  int
	palette render.Palette

	panels        []Panel
	tabs          []tab
	contentHeight int
}

// New creates a layout on the home page
func New(width, height int, compact bool, pal render.Palette) *Layout {
	l := &Layout{palette: pal}
	l.Resize(width, height, compact)
	return l
}

// Resize re-arranges panels for a new viewport and clamps the scroll offset
func (l *Layout) Resize(width, height int, compact bool) {
	l.width, l.height, l.compact = width, height, compact
	l.arrange()
	l.scroll = clampInt(l.scroll, 0, l.MaxScroll())
}

// Page returns the active page
func (l *Layout) Page() Page {
	return l.page
}

// SetPage switches tabs and resets the scroll offset; returns false if already active
func (l *Layout) SetPage(p Page) bool {
	if p < 0 || p >= PageCount || p == l.page {
		return false
	}
	l.page = p
	l.scroll = 0
	l.arrange()
	return true
}

// EffectVisible reports whether the background animation shows on the active page
func (l *Layout) EffectVisible() bool {
	return l.page == PageHome
}

// Palette returns the active theme
func (l *Layout) Palette() render.Palette {
	return l.palette
}

// ToggleTheme flips between day and night
func (l *Layout) ToggleTheme() render.Palette {
	l.palette = l.palette.Toggle()
	return l.palette
}

// Scroll moves the content by delta rows, clamped; returns whether the offset changed
func (l *Layout) Scroll(delta int) bool {
	next := clampInt(l.scroll+delta, 0, l.MaxScroll())
	if next == l.scroll {
		return false
	}
	l.scroll = next
	return true
}

// ScrollOffset returns the current scroll offset in rows
func (l *Layout) ScrollOffset() int {
	return l.scroll
}

// MaxScroll returns the largest scroll offset for the active page
func (l *Layout) MaxScroll() int {
	return max(0, l.contentHeight-l.height)
}

// Panels returns the panels of the active page in content coordinates
func (l *Layout) Panels() []Panel {
	return l.panels
}

// Regions returns the viewport rectangles of every panel, scroll applied
func (l *Layout) Regions() []grid.Rect {
	rects := make([]grid.Rect, 0, len(l.panels))
	for _, p := range l.panels {
		x, y := l.screenPos(p)
		rects = append(rects, grid.RectXYWH(x, y, p.W, p.H))
	}
	return rects
}

// HitPanel returns the topmost panel under a screen position
func (l *Layout) HitPanel(x, y int) (Panel, bool) {
	for i := len(l.panels) - 1; i >= 0; i-- {
		p := l.panels[i]
		px, py := l.screenPos(p)
		if x >= px && x < px+p.W && y >= py && y < py+p.H {
			return p, true
		}
	}
	return Panel{}, false
}

// TabAt returns the navbar tab under a screen position
func (l *Layout) TabAt(x, y int) (Page, bool) {
	if y != 1 {
		return 0, false
	}
	for _, t := range l.tabs {
		if x >= t.x && x < t.x+t.w {
			return t.page, true
		}
	}
	return 0, false
}

// ToggleAt reports whether a screen position hits the theme toggle
func (l *Layout) ToggleAt(x, y int) bool {
	p, ok := l.HitPanel(x, y)
	return ok && p.Name == PanelModeToggle
}

func (l *Layout) screenPos(p Panel) (x, y int) {
	if p.Fixed {
		return p.X, p.Y
	}
	return p.X, p.Y - l.scroll
}

// arrange computes panel and tab geometry for the active page and viewport
func (l *Layout) arrange() {
	l.panels = l.panels[:0]
	l.tabs = l.tabs[:0]

	l.panels = append(l.panels, Panel{
		Name: PanelNavbar, X: 0, Y: 0, W: l.width, H: navbarHeight, Fixed: true,
	})
	x := 2
	for p := PageHome; p < PageCount; p++ {
		label := p.String()
		w := render.TextWidth(label)
		l.tabs = append(l.tabs, tab{page: p, x: x, w: w, label: label})
		x += w + tabGap
	}

	margin := wideMargin
	if l.compact {
		margin = compactMargin
	}
	cw := max(1, min(l.width-2*margin, maxContentW))
	cx := max(0, (l.width-cw)/2)
	y := contentTop

	if l.page == PageHome {
		add := func(name, title string, w, h int, lines ...string) {
			l.panels = append(l.panels, Panel{
				Name: name, Title: title, Lines: lines, X: cx, Y: y, W: w, H: h,
			})
			y += h + panelGap
		}
		add(PanelAbout, "About", cw, 7,
			"Terminal developer. Builds simulations,",
			"command line tools and long running services.",
			"A snake roams the gaps around these panels.")
		galleryH := 10
		if l.compact {
			galleryH = 7
		}
		add(PanelGallery, "Gallery", cw, galleryH,
			"[ maze ]  [ swarm ]  [ lightning ]",
			"[ ember ] [ beatie ] [ font-editor ]")
		add(PanelDownload, "", min(cw, 20), 3, "  Download CV")
		add(PanelCV, "CV", cw, 7,
			"2021-  systems engineer",
			"2017-  backend developer",
			"2014-  computer science")
		add(PanelContacts, "Contacts", cw, 5,
			"mail hello@example.org",
			"code github.com/lixenwraith")
	} else {
		lines := pageText[l.page]
		add := Panel{
			Name: PanelPage, Title: l.page.String(), Lines: lines,
			X: cx, Y: y, W: cw, H: len(lines) + 2,
		}
		l.panels = append(l.panels, add)
		y += add.H + panelGap
	}
	l.contentHeight = y - panelGap + bottomMargin

	l.panels = append(l.panels, Panel{
		Name:  PanelModeToggle,
		Title: "",
		X:     max(0, l.width-toggleWidth-1),
		Y:     max(navbarHeight, l.height-toggleHeight-1),
		W:     toggleWidth,
		H:     toggleHeight,
		Fixed: true,
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
