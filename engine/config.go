package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/gridsnake/constant"
)

// LayoutMode selects cell size and auto food spawning
type LayoutMode int

const (
	LayoutAuto LayoutMode = iota
	LayoutStandard
	LayoutCompact
)

// String returns the mode name
func (m LayoutMode) String() string {
	switch m {
	case LayoutAuto:
		return "auto"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ParseLayoutMode converts a flag value into a LayoutMode
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LayoutAuto, nil
	case "standard", "desktop":
		return LayoutStandard, nil
	case "compact", "mobile":
		return LayoutCompact, nil
	default:
		return LayoutAuto, fmt.Errorf("unknown layout mode %q", s)
	}
}

// Config parameterizes the single engine for both layouts
type Config struct {
	Mode             LayoutMode
	StandardCellSize int
	CompactCellSize  int
	CompactMaxWidth  int // Auto mode: viewports this wide or narrower are compact

	TickInterval     time.Duration
	TurnIntervalMin  time.Duration
	TurnIntervalMax  time.Duration
	AutoFoodInterval time.Duration // Compact only, zero disables

	InitialLength int
	PauseHidden   bool // Skip simulation steps while the surface is hidden
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		Mode:             LayoutAuto,
		StandardCellSize: constant.StandardCellSize,
		CompactCellSize:  constant.CompactCellSize,
		CompactMaxWidth:  constant.CompactMaxWidth,
		TickInterval:     constant.TickInterval,
		TurnIntervalMin:  constant.TurnIntervalMin,
		TurnIntervalMax:  constant.TurnIntervalMax,
		AutoFoodInterval: constant.AutoFoodInterval,
		InitialLength:    constant.InitialLength,
		PauseHidden:      true,
	}
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	if c.StandardCellSize <= 0 || c.CompactCellSize <= 0 {
		return fmt.Errorf("cell sizes must be positive (standard=%d compact=%d)", c.StandardCellSize, c.CompactCellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.TurnIntervalMin < 0 || c.TurnIntervalMax < c.TurnIntervalMin {
		return fmt.Errorf("invalid turn interval range [%v, %v]", c.TurnIntervalMin, c.TurnIntervalMax)
	}
	if c.AutoFoodInterval < 0 {
		return fmt.Errorf("auto food interval must not be negative, got %v", c.AutoFoodInterval)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("initial length must be at least 1, got %d", c.InitialLength)
	}
	return nil
}

// CompactFor reports whether a viewport of the given width runs in compact layout
func (c Config) CompactFor(viewportW int) bool {
	switch c.Mode {
	case LayoutStandard:
		return false
	case LayoutCompact:
		return true
	default:
		return viewportW <= c.CompactMaxWidth
	}
}

// CellSizeFor returns the cell size for a viewport width
func (c Config) CellSizeFor(viewportW int) int {
	if c.CompactFor(viewportW) {
		return c.CompactCellSize
	}
	return c.StandardCellSize
}
