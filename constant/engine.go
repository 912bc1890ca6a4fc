package constant

import "time"

// Tick Loop Timing
const (
	// TickInterval is the simulation step cadence, decoupled from display refresh
	TickInterval = 150 * time.Millisecond

	// MaxTickLag is how many intervals the scheduler may fall behind before re-anchoring
	MaxTickLag = 2

	// EventQueueSize is the buffered capacity of the driver event channel
	EventQueueSize = 64
)

// Layout Modes
// Viewport units are terminal character cells
const (
	// StandardCellSize is the cell side in standard layout
	StandardCellSize = 2

	// CompactCellSize is the cell side in compact layout
	CompactCellSize = 1

	// CompactMaxWidth is the widest viewport still treated as compact (auto mode)
	CompactMaxWidth = 60

	// AutoFoodInterval is the compact-mode food respawn cadence in simulated time
	AutoFoodInterval = 10 * time.Second
)

// Snake Motion
const (
	// InitialLength is the snake body length and target length at setup
	InitialLength = 8

	// TurnIntervalMin and TurnIntervalMax bound the randomized wander turn interval
	TurnIntervalMin = 500 * time.Millisecond
	TurnIntervalMax = 3000 * time.Millisecond
)
