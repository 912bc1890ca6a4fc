package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gridsnake/constant"
)

// Palette is one visual theme for the background surface and host panels
type Palette struct {
	Name string

	Background  tcell.Color
	Text        tcell.Color
	Panel       tcell.Color
	PanelBorder tcell.Color
	Accent      tcell.Color

	Food  tcell.Color
	Head  tcell.Color
	Trail tcell.Color
}

// Theme palettes mirroring the host page day/night toggle
var (
	DayPalette = Palette{
		Name:        "day",
		Background:  hexColor(constant.DayBackground),  // Warm paper
		Text:        hexColor(constant.DayText),        // Near black
		Panel:       hexColor(constant.DayPanel),       // White cards
		PanelBorder: hexColor(constant.DayPanelBorder), // Sand gray
		Accent:      hexColor(constant.DayAccent),      // Link blue
		Food:        hexColor(constant.FoodColor),      // Alizarin red
		Head:        hexColor(constant.HeadColor),      // Deep orange
		Trail:       hexColor(constant.TrailColor),     // Light orange
	}

	NightPalette = Palette{
		Name:        "night",
		Background:  hexColor(constant.NightBackground),
		Text:        hexColor(constant.NightText),
		Panel:       hexColor(constant.NightPanel),
		PanelBorder: hexColor(constant.NightPanelBorder),
		Accent:      hexColor(constant.NightAccent),
		Food:        hexColor(constant.FoodColor),
		Head:        hexColor(constant.HeadColor),
		Trail:       hexColor(constant.TrailColor),
	}
)

// PaletteByName resolves a theme name, defaulting to night
func PaletteByName(name string) Palette {
	if name == DayPalette.Name {
		return DayPalette
	}
	return NightPalette
}

// Toggle returns the other theme
func (p Palette) Toggle() Palette {
	if p.Name == DayPalette.Name {
		return NightPalette
	}
	return DayPalette
}

// TrailShade returns the body color of segment i in a snake of n segments
// Segments fade toward the background along the body, head end strongest
func (p Palette) TrailShade(i, n int) tcell.Color {
	if n <= 1 || i <= 0 {
		return p.Trail
	}
	t := constant.TrailFadeMax * float64(i) / float64(n-1)
	blended := toColorful(p.Trail).BlendLab(toColorful(p.Background), t).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
