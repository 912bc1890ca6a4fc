package constant

// Palette Colors
// Hex values of the host page themes
const (
	DayBackground  = "#f4f1ea"
	DayText        = "#2b2b2b"
	DayPanel       = "#ffffff"
	DayPanelBorder = "#c9c2b4"
	DayAccent      = "#3a6ea5"

	NightBackground  = "#14161c"
	NightText        = "#e6e6e6"
	NightPanel       = "#1f232b"
	NightPanelBorder = "#3b4252"
	NightAccent      = "#88c0d0"

	// FoodColor and TrailColor are shared by both themes
	FoodColor  = "#e74c3c"
	TrailColor = "#ffa04f"
	HeadColor  = "#ff7f11"
)

// Trail Rendering
const (
	// TrailFadeMax is the blend fraction toward the background at the tail end
	TrailFadeMax = 0.65
)
