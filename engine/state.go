package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/gridsnake/grid"
)

// ErrNoFreeCell is returned when no snake placement exists on the current mask
var ErrNoFreeCell = errors.New("no free cell for snake")

// State is the complete simulation state owned by the driver
// Controller, Spawner, Pathfinder and Renderer receive it by reference
type State struct {
	Session uuid.UUID
	Grid    grid.Grid
	Mask    *grid.Mask
	Snake   *Snake
	Compact bool

	Food    grid.Cell
	HasFood bool

	// Tick counts simulation steps since reset; simulated time is Tick × TickInterval
	Tick uint64

	// Cached path toward pathFood, path[pathCursor] is the head while fresh
	path       []grid.Cell
	pathCursor int
	pathFood   grid.Cell
	seekFailed bool

	// Wander timing in simulated time
	lastTurn     time.Duration
	turnInterval time.Duration

	// Compact auto-spawn timing in simulated time
	lastAutoFood time.Duration

	Last StepResult
}

// NewState builds a fresh state: grid, mask and a placed snake
// A placement failure still returns a usable state with an empty snake
func NewState(g grid.Grid, mask *grid.Mask, initialLength int, compact bool) (*State, error) {
	if mask == nil {
		mask = grid.NewMask(g)
	}
	s := &State{
		Session: uuid.New(),
		Grid:    g,
		Mask:    mask,
		Compact: compact,
	}
	snake, err := PlaceSnake(g, mask, initialLength)
	if snake == nil {
		snake = NewSnake(nil, grid.DirE, initialLength)
	}
	s.Snake = snake
	return s, err
}

// Blocked reports whether c is under a UI region
func (s *State) Blocked(c grid.Cell) bool {
	return s.Mask.Blocked(c)
}

// Free reports whether c is neither blocked nor occupied by the snake
func (s *State) Free(c grid.Cell) bool {
	return !s.Mask.Blocked(c) && (s.Snake == nil || !s.Snake.Occupies(c))
}

// SetFood places food on c and drops any cached path
func (s *State) SetFood(c grid.Cell) {
	s.Food = s.Grid.Wrap(c)
	s.HasFood = true
	s.seekFailed = false
	s.ClearPath()
}

// ClearFood removes the food target and its path
func (s *State) ClearFood() {
	s.HasFood = false
	s.seekFailed = false
	s.ClearPath()
}

// ClearPath drops the cached path
func (s *State) ClearPath() {
	s.path = nil
	s.pathCursor = 0
}

// Path returns the remaining cached path starting at the head, nil if none
func (s *State) Path() []grid.Cell {
	if !s.pathFresh() {
		return nil
	}
	return s.path[s.pathCursor:]
}

// SeekFailed reports whether the last path search toward the current food failed
func (s *State) SeekFailed() bool {
	return s.seekFailed
}

// pathFresh reports whether the cached path targets the current food from the current head
func (s *State) pathFresh() bool {
	if !s.HasFood || len(s.path) == 0 || s.pathFood != s.Food || s.pathCursor >= len(s.path) {
		return false
	}
	return s.Snake != nil && s.Snake.Len() > 0 && s.path[s.pathCursor] == s.Snake.Head()
}

// PlaceSnake finds a straight horizontal run of free cells for the initial body
// The head sits at the east end, direction east, preferred anchor (cols/4, rows/2)
// If no run of the full length fits, shorter runs are tried down to a single cell
func PlaceSnake(g grid.Grid, mask *grid.Mask, length int) (*Snake, error) {
	if !g.Valid() {
		return nil, grid.ErrDegenerateGrid
	}
	if length < 1 {
		length = 1
	}
	want := min(length, g.Cols)

	anchor := grid.Cell{Col: g.Cols / 4, Row: g.Rows / 2}
	for run := want; run >= 1; run-- {
		for dr := 0; dr < g.Rows; dr++ {
			// Alternate rows around the anchor: 0, +1, -1, +2, -2 ...
			off := (dr + 1) / 2
			if dr%2 == 0 {
				off = -off
			}
			row := anchor.Row + off
			for dc := 0; dc < g.Cols; dc++ {
				head := g.Wrap(grid.Cell{Col: anchor.Col + dc, Row: row})
				if body, ok := runWest(g, mask, head, run); ok {
					return NewSnake(body, grid.DirE, length), nil
				}
			}
		}
	}
	return nil, ErrNoFreeCell
}

// runWest returns the head-first run of n cells extending west from head if all are free
func runWest(g grid.Grid, mask *grid.Mask, head grid.Cell, n int) ([]grid.Cell, bool) {
	body := make([]grid.Cell, 0, n)
	c := head
	for i := 0; i < n; i++ {
		if mask.Blocked(c) {
			return nil, false
		}
		body = append(body, c)
		c = g.Step(c, grid.DirW)
	}
	return body, true
}
