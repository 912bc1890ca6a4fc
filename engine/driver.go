package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridsnake/constant"
	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/status"
)

// ErrAlreadyRunning is returned by Run when the loop is already active
var ErrAlreadyRunning = errors.New("driver already running")

// Host supplies the viewport-relative rectangles of the UI regions to avoid
// Called only from the driver loop goroutine
type Host interface {
	Regions() []grid.Rect
}

// HostFunc adapts a function to Host
type HostFunc func() []grid.Rect

// Regions calls f
func (f HostFunc) Regions() []grid.Rect {
	return f()
}

// Presenter receives the state after every tick and event
// state is nil while the grid is degenerate
type Presenter interface {
	Present(state *State, visible bool)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(state *State, visible bool)

// Present calls f
func (f PresenterFunc) Present(state *State, visible bool) {
	f(state, visible)
}

// Option customizes a Driver
type Option func(*Driver)

// WithRand injects the random source used for turns and food placement
func WithRand(rng *rand.Rand) Option {
	return func(d *Driver) { d.rng = rng }
}

// WithClock injects the wall clock used for tick deadlines
func WithClock(clock Clock) Option {
	return func(d *Driver) { d.clock = clock }
}

// WithRegistry shares a metrics registry with the host
func WithRegistry(reg *status.Registry) Option {
	return func(d *Driver) { d.reg = reg }
}

// WithEatHook registers a callback run on the loop goroutine whenever food is eaten
func WithEatHook(fn func(*State)) Option {
	return func(d *Driver) { d.onEat = fn }
}

// Driver owns the simulation state and runs the tick loop
// All state mutation happens on the goroutine running Run, other goroutines Post events
type Driver struct {
	cfg       Config
	host      Host
	presenter Presenter
	ctrl      *Controller

	rng   *rand.Rand
	clock Clock
	reg   *status.Registry
	onEat func(*State)

	state         *State
	width, height int
	visible       bool

	// Tick configuration
	nextTickDeadline time.Time

	// Control channels
	events   chan Event
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Cached metric pointers
	statResets  *atomic.Int64
	statClicks  *atomic.Int64
	statSession *status.AtomicString
}

// NewDriver builds the grid for the viewport and places the snake and first food
// A degenerate viewport is refused with grid.ErrDegenerateGrid
func NewDriver(cfg Config, viewportW, viewportH int, host Host, presenter Presenter, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}

	d := &Driver{
		cfg:       cfg,
		host:      host,
		presenter: presenter,
		width:     viewportW,
		height:    viewportH,
		visible:   true,
		events:    make(chan Event, constant.EventQueueSize),
		stopChan:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.clock == nil {
		d.clock = NewTimeProvider()
	}
	if d.reg == nil {
		d.reg = status.NewRegistry()
	}

	d.statResets = d.reg.Ints.Get(status.KeyResets)
	d.statClicks = d.reg.Ints.Get(status.KeyClicks)
	d.statSession = d.reg.Strings.Get(status.KeySession)

	d.ctrl = NewController(cfg, d.rng, d.reg)
	if d.onEat != nil {
		d.ctrl.OnEat(d.onEat)
	}

	if err := d.reset(); err != nil {
		return nil, fmt.Errorf("engine: viewport %dx%d: %w", viewportW, viewportH, err)
	}
	return d, nil
}

// State returns the live simulation state, nil while suspended on a degenerate grid
// Only safe on the loop goroutine or before Run
func (d *Driver) State() *State {
	return d.state
}

// Registry returns the metrics registry
func (d *Driver) Registry() *status.Registry {
	return d.reg
}

// Visible reports whether the surface is shown
func (d *Driver) Visible() bool {
	return d.visible
}

// Run ticks at the configured interval until ctx is cancelled or Stop is called
// Posted events are applied between ticks
func (d *Driver) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer d.running.Store(false)

	d.nextTickDeadline = d.clock.Now().Add(d.cfg.TickInterval)
	timer := time.NewTimer(d.cfg.TickInterval)
	defer timer.Stop()

	d.present()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.stopChan:
			return nil

		case ev := <-d.events:
			ev.apply(d)

		case <-timer.C:
			d.Tick()
			timer.Reset(d.reschedule())
		}
	}
}

// Stop halts the loop; no further ticks are scheduled
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
}

// Post queues an event for the loop goroutine, blocking while the queue is full
// Returns false once the driver is stopped
func (d *Driver) Post(ev Event) bool {
	select {
	case <-d.stopChan:
		return false
	default:
	}
	select {
	case d.events <- ev:
		return true
	case <-d.stopChan:
		return false
	}
}

// reschedule advances the tick deadline and returns the wait until it
// Falling more than MaxTickLag intervals behind re-anchors the deadline to now
func (d *Driver) reschedule() time.Duration {
	now := d.clock.Now()
	d.nextTickDeadline = d.nextTickDeadline.Add(d.cfg.TickInterval)

	maxBehind := d.cfg.TickInterval * constant.MaxTickLag
	if now.Sub(d.nextTickDeadline) > maxBehind {
		d.nextTickDeadline = now.Add(d.cfg.TickInterval)
	}

	wait := d.nextTickDeadline.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return wait
}

// Tick runs one simulation step and presents the result
func (d *Driver) Tick() StepResult {
	s := d.state
	if s == nil {
		return StepResult{State: MotionIdle, Dir: grid.DirNone}
	}
	if d.cfg.PauseHidden && !d.visible {
		return s.Last
	}

	if s.Snake.Len() == 0 {
		d.retryPlacement(s)
	}

	res := d.ctrl.Step(s)
	d.autoFood(s)
	d.present()
	return res
}

// HandleResize rebuilds grid and mask for the new viewport and resets the simulation
// A degenerate viewport suspends ticking until a valid resize arrives
func (d *Driver) HandleResize(w, h int) error {
	d.width, d.height = w, h
	err := d.reset()
	if err != nil {
		log.Printf("engine: resize to %dx%d suspended: %v", w, h, err)
	}
	d.present()
	return err
}

// HandleScroll recomputes the blocked mask after UI regions moved
// Body cells now under a region are cut off, a covered head respawns the snake
// Food on a covered cell is replaced
func (d *Driver) HandleScroll() {
	s := d.state
	if s == nil {
		return
	}
	s.Mask = grid.BuildMask(d.regions(), s.Grid)
	s.ClearPath()

	snake := s.Snake
	for i, c := range snake.Body {
		if !s.Mask.Blocked(c) {
			continue
		}
		if i > 0 {
			snake.Truncate(i)
			break
		}
		placed, err := PlaceSnake(s.Grid, s.Mask, snake.TargetLength)
		if err != nil {
			log.Printf("engine: session %s snake covered by scroll, placement deferred: %v", s.Session, err)
			placed = NewSnake(nil, grid.DirE, snake.TargetLength)
		}
		s.Snake = placed
		d.ctrl.ArmWander(s)
		break
	}

	if s.HasFood && !s.Free(s.Food) {
		d.ctrl.Spawn(s)
	}
	d.present()
}

// HandleClick turns a free cell under the pointer into the food target
// Returns false for points outside the grid, blocked cells and snake cells
func (d *Driver) HandleClick(x, y int) bool {
	s := d.state
	if s == nil {
		return false
	}
	cell, ok := s.Grid.CellAt(x, y)
	if !ok || !s.Free(cell) {
		return false
	}
	s.SetFood(cell)
	d.statClicks.Add(1)
	d.present()
	return true
}

// SetVisible shows or hides the surface
func (d *Driver) SetVisible(visible bool) {
	d.visible = visible
	d.present()
}

// reset rebuilds everything from the current viewport
func (d *Driver) reset() error {
	compact := d.cfg.CompactFor(d.width)
	g, err := grid.New(d.width, d.height, d.cfg.CellSizeFor(d.width))
	if err != nil {
		d.state = nil
		return err
	}

	s, err := NewState(g, grid.BuildMask(d.regions(), g), d.cfg.InitialLength, compact)
	d.state = s
	d.ctrl.ArmWander(s)
	if err != nil {
		log.Printf("engine: session %s placement deferred: %v", s.Session, err)
	} else {
		d.ctrl.Spawn(s)
	}

	d.statResets.Add(1)
	d.statSession.Store(s.Session.String())
	log.Printf("engine: session %s grid %dx%d cell=%d compact=%v blocked=%d",
		s.Session, g.Cols, g.Rows, g.CellSize, compact, s.Mask.Count())
	return nil
}

// retryPlacement places a snake that could not be placed before
func (d *Driver) retryPlacement(s *State) {
	target := s.Snake.TargetLength
	if target < 1 {
		target = d.cfg.InitialLength
	}
	placed, err := PlaceSnake(s.Grid, s.Mask, target)
	if err != nil {
		return
	}
	s.Snake = placed
	d.ctrl.ArmWander(s)
	if !s.HasFood || !s.Free(s.Food) {
		d.ctrl.Spawn(s)
	}
	log.Printf("engine: session %s snake placed at %d,%d", s.Session, placed.Head().Col, placed.Head().Row)
}

// autoFood respawns food in compact layout when it is absent or unreachable
// Runs on simulated time so hidden or paused stretches do not count
func (d *Driver) autoFood(s *State) {
	if !s.Compact || d.cfg.AutoFoodInterval <= 0 {
		return
	}
	now := d.ctrl.SimTime(s.Tick)
	if now-s.lastAutoFood < d.cfg.AutoFoodInterval {
		return
	}
	s.lastAutoFood = now
	if !s.HasFood || s.seekFailed {
		d.ctrl.Spawn(s)
	}
}

func (d *Driver) regions() []grid.Rect {
	if d.host == nil {
		return nil
	}
	return d.host.Regions()
}

func (d *Driver) present() {
	if d.presenter != nil {
		d.presenter.Present(d.state, d.visible)
	}
}
