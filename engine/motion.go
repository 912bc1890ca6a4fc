package engine

import (
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/navigation"
	"github.com/lixenwraith/gridsnake/status"
)

// MotionState is the controller mode chosen for a tick
type MotionState uint8

const (
	MotionIdle MotionState = iota // No snake on the grid
	MotionSeeking
	MotionWandering
	MotionRecovering
)

func (m MotionState) String() string {
	switch m {
	case MotionSeeking:
		return "seeking"
	case MotionWandering:
		return "wandering"
	case MotionRecovering:
		return "recovering"
	default:
		return "idle"
	}
}

// StepResult reports what one simulation step did
type StepResult struct {
	State MotionState
	Moved bool // False when the snake held position
	Ate   bool
	Dir   grid.Dir
}

// Controller advances the snake one cell per tick
// Seeks food along a BFS path, wanders with randomized turns otherwise, and recovers from blocked moves
type Controller struct {
	cfg      Config
	rng      *rand.Rand
	spawner  *Spawner
	searcher *navigation.Searcher

	onEat func(*State)

	// Cached metric pointers
	statTicks      *atomic.Int64
	statMoves      *atomic.Int64
	statHolds      *atomic.Int64
	statRecoveries *atomic.Int64
	statEaten      *atomic.Int64
	statLength     *atomic.Int64
	statPaths      *atomic.Int64
	statPathFails  *atomic.Int64
	statSpawns     *atomic.Int64
	statState      *status.AtomicString
}

// NewController creates a controller; a nil registry gets a private one
func NewController(cfg Config, rng *rand.Rand, reg *status.Registry) *Controller {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Controller{
		cfg:            cfg,
		rng:            rng,
		spawner:        NewSpawner(rng),
		searcher:       navigation.NewSearcher(),
		statTicks:      reg.Ints.Get(status.KeyTicks),
		statMoves:      reg.Ints.Get(status.KeyMoves),
		statHolds:      reg.Ints.Get(status.KeyHolds),
		statRecoveries: reg.Ints.Get(status.KeyRecoveries),
		statEaten:      reg.Ints.Get(status.KeyEaten),
		statLength:     reg.Ints.Get(status.KeyLength),
		statPaths:      reg.Ints.Get(status.KeyPaths),
		statPathFails:  reg.Ints.Get(status.KeyPathFails),
		statSpawns:     reg.Ints.Get(status.KeySpawns),
		statState:      reg.Strings.Get(status.KeyState),
	}
}

// Spawner returns the food spawner shared with the driver
func (c *Controller) Spawner() *Spawner {
	return c.spawner
}

// OnEat registers a hook called on the loop goroutine after food is eaten and respawned
func (c *Controller) OnEat(fn func(*State)) {
	c.onEat = fn
}

// Spawn places new food and counts it
func (c *Controller) Spawn(s *State) (grid.Cell, bool) {
	cell, ok := c.spawner.Spawn(s)
	if ok {
		c.statSpawns.Add(1)
	}
	return cell, ok
}

// SimTime converts a tick count into simulated time
func (c *Controller) SimTime(tick uint64) time.Duration {
	return time.Duration(tick) * c.cfg.TickInterval
}

// ArmWander restarts the wander turn clock at the current simulated time
func (c *Controller) ArmWander(s *State) {
	s.lastTurn = c.SimTime(s.Tick)
	s.turnInterval = c.drawTurnInterval()
}

// Step advances the simulation by one tick
func (c *Controller) Step(s *State) StepResult {
	s.Tick++
	c.statTicks.Add(1)

	if s.Snake == nil || s.Snake.Len() == 0 {
		s.Last = StepResult{State: MotionIdle, Dir: grid.DirNone}
		c.statState.Store(s.Last.State.String())
		return s.Last
	}

	res := c.step(s)
	s.Last = res
	c.statState.Store(res.State.String())
	c.statLength.Store(int64(s.Snake.Len()))
	return res
}

func (c *Controller) step(s *State) StepResult {
	now := c.SimTime(s.Tick)
	snake := s.Snake
	head := snake.Head()

	if s.HasFood && !s.pathFresh() {
		c.plan(s, head)
	}

	var (
		next     grid.Cell
		dir      grid.Dir
		fromPath bool
		res      StepResult
	)

	if s.pathFresh() && len(s.path)-s.pathCursor > 1 {
		next = s.path[s.pathCursor+1]
		dir = s.Grid.Fold(head, next)
		if !dir.Valid() {
			dir = snake.Direction
		}
		fromPath = true
		res.State = MotionSeeking
	} else {
		dir = c.wander(s, now)
		next = s.Grid.Step(head, dir)
		res.State = MotionWandering
	}

	if !c.enterable(s, next) {
		if fromPath {
			s.ClearPath()
		}
		res.State = MotionRecovering
		c.statRecoveries.Add(1)

		d, ok := c.recover(s)
		if !ok {
			c.statHolds.Add(1)
			res.Dir = snake.Direction
			return res
		}
		dir = d
		next = s.Grid.Step(head, d)
	} else if fromPath {
		s.pathCursor++
	}

	eating := s.HasFood && next == s.Food
	snake.Direction = dir
	snake.Push(next)
	c.statMoves.Add(1)
	res.Moved = true
	res.Dir = dir

	if eating {
		snake.Grow()
		s.ClearFood()
		snake.Trim()
		res.Ate = true
		c.statEaten.Add(1)
		c.Spawn(s)
		if c.onEat != nil {
			c.onEat(s)
		}
		return res
	}

	snake.Trim()
	return res
}

// plan computes a fresh path from head to food
// A failure is remembered until the food changes or a later search succeeds
func (c *Controller) plan(s *State, head grid.Cell) {
	s.ClearPath()
	c.statPaths.Add(1)

	path, ok := c.searcher.FindPath(s.Grid, head, s.Food, s.Free)
	if !ok {
		if !s.seekFailed {
			log.Printf("engine: session %s food at %d,%d unreachable from %d,%d, wandering",
				s.Session, s.Food.Col, s.Food.Row, head.Col, head.Row)
		}
		s.seekFailed = true
		c.statPathFails.Add(1)
		return
	}
	s.path = path
	s.pathCursor = 0
	s.pathFood = s.Food
	s.seekFailed = false
}

// wander keeps the current heading until the turn interval elapses, then picks a random legal heading
func (c *Controller) wander(s *State, now time.Duration) grid.Dir {
	dir := s.Snake.Direction
	if !dir.Valid() {
		dir = grid.DirE
	}
	if now-s.lastTurn <= s.turnInterval {
		return dir
	}
	if d, ok := c.pick(s, dir, true); ok {
		dir = d
	}
	s.lastTurn = now
	s.turnInterval = c.drawTurnInterval()
	return dir
}

// recover picks a legal non-reversing heading, falling back to any legal heading
func (c *Controller) recover(s *State) (grid.Dir, bool) {
	if d, ok := c.pick(s, s.Snake.Direction, true); ok {
		return d, true
	}
	return c.pick(s, s.Snake.Direction, false)
}

// pick chooses uniformly among headings whose next cell is enterable
func (c *Controller) pick(s *State, cur grid.Dir, noReverse bool) (grid.Dir, bool) {
	var options [grid.DirCount]grid.Dir
	n := 0
	head := s.Snake.Head()
	reverse := cur.Opposite()
	for d := grid.DirN; d < grid.DirCount; d++ {
		if noReverse && d == reverse {
			continue
		}
		if c.enterable(s, s.Grid.Step(head, d)) {
			options[n] = d
			n++
		}
	}
	if n == 0 {
		return grid.DirNone, false
	}
	return options[c.rng.Intn(n)], true
}

// enterable reports whether the head may move onto cell this tick
// The tail cell is enterable only when it is popped by the same move
func (c *Controller) enterable(s *State, cell grid.Cell) bool {
	if s.Blocked(cell) {
		return false
	}
	count := s.Snake.Count(cell)
	if count == 0 {
		return true
	}
	eating := s.HasFood && cell == s.Food
	return count == 1 && cell == s.Snake.Tail() && s.Snake.TailVacates(eating)
}

func (c *Controller) drawTurnInterval() time.Duration {
	lo, hi := c.cfg.TurnIntervalMin, c.cfg.TurnIntervalMax
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(c.rng.Int63n(int64(hi-lo)+1))
}
