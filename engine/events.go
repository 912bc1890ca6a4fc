package engine

// Event is a host notification applied on the driver loop goroutine between ticks
type Event interface {
	apply(d *Driver)
}

// ResizeEvent reports new viewport dimensions; the simulation resets wholesale
type ResizeEvent struct {
	Width, Height int
}

func (e ResizeEvent) apply(d *Driver) {
	_ = d.HandleResize(e.Width, e.Height)
}

// ScrollEvent reports that UI regions moved relative to the viewport
type ScrollEvent struct{}

func (ScrollEvent) apply(d *Driver) {
	d.HandleScroll()
}

// ClickEvent carries a pointer press in viewport coordinates
type ClickEvent struct {
	X, Y int
}

func (e ClickEvent) apply(d *Driver) {
	d.HandleClick(e.X, e.Y)
}

// VisibilityEvent shows or hides the rendered surface
type VisibilityEvent struct {
	Visible bool
}

func (e VisibilityEvent) apply(d *Driver) {
	d.SetVisible(e.Visible)
}

// FuncEvent runs host code on the loop goroutine, e.g. layout mutation that must not race a tick
type FuncEvent func(d *Driver)

func (f FuncEvent) apply(d *Driver) {
	f(d)
}
