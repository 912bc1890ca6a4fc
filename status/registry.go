package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeyTicks      = "engine.ticks"
	KeyMoves      = "engine.moves"
	KeyHolds      = "engine.holds"
	KeyRecoveries = "engine.recoveries"
	KeyEaten      = "engine.eaten"
	KeyResets     = "engine.resets"
	KeyLength     = "snake.length"
	KeyPaths      = "nav.paths"
	KeyPathFails  = "nav.failures"
	KeySpawns     = "food.spawns"
	KeyClicks     = "food.clicks"
	KeySession    = "engine.session"
	KeyState      = "engine.state"
)

// Registry is the central metrics facade
// Components cache pointers during init; the tick loop writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Lines formats every metric as "key=value" in sorted key order, strings first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	return lines
}
