package grid

import "math"

// Rect is an axis-aligned viewport rectangle, Right and Bottom exclusive
// Coordinates are viewport relative and may be negative or exceed the viewport
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from an integer origin and size
func RectXYWH(x, y, w, h int) Rect {
	return Rect{
		Left:   float64(x),
		Top:    float64(y),
		Right:  float64(x + w),
		Bottom: float64(y + h),
	}
}

// Empty reports whether r covers no area
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Mask is the blocked-cell mask, one flag per grid cell
type Mask struct {
	cols, rows int
	cells      []bool
}

// NewMask creates an all-free mask sized for g
func NewMask(g Grid) *Mask {
	return &Mask{
		cols:  g.Cols,
		rows:  g.Rows,
		cells: make([]bool, g.Size()),
	}
}

// BuildMask marks every cell overlapped by any of rects
// Rect edges map to floor(left/cs)..ceil(right/cs) columns, same for rows, clipped to the grid
func BuildMask(rects []Rect, g Grid) *Mask {
	m := NewMask(g)
	for _, r := range rects {
		m.Mark(r, g.CellSize)
	}
	return m
}

// Mark blocks the cells covered by r and returns how many cells were newly blocked
func (m *Mask) Mark(r Rect, cellSize int) int {
	if r.Empty() || cellSize <= 0 || len(m.cells) == 0 {
		return 0
	}
	cs := float64(cellSize)

	left := clamp(int(math.Floor(r.Left/cs)), 0, m.cols)
	right := clamp(int(math.Ceil(r.Right/cs)), 0, m.cols)
	top := clamp(int(math.Floor(r.Top/cs)), 0, m.rows)
	bottom := clamp(int(math.Ceil(r.Bottom/cs)), 0, m.rows)

	marked := 0
	for row := top; row < bottom; row++ {
		base := row * m.cols
		for col := left; col < right; col++ {
			if !m.cells[base+col] {
				m.cells[base+col] = true
				marked++
			}
		}
	}
	return marked
}

// Blocked reports whether c is covered by a UI region; c is wrapped first
// A nil mask blocks nothing
func (m *Mask) Blocked(c Cell) bool {
	if m == nil || len(m.cells) == 0 {
		return false
	}
	return m.cells[mod(c.Row, m.rows)*m.cols+mod(c.Col, m.cols)]
}

// Free is the negation of Blocked
func (m *Mask) Free(c Cell) bool {
	return !m.Blocked(c)
}

// Set overrides the flag for c
func (m *Mask) Set(c Cell, blocked bool) {
	if m == nil || len(m.cells) == 0 {
		return
	}
	m.cells[mod(c.Row, m.rows)*m.cols+mod(c.Col, m.cols)] = blocked
}

// Count returns the number of blocked cells
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.cells {
		if b {
			n++
		}
	}
	return n
}

// Dims returns the grid dimensions the mask was built for
func (m *Mask) Dims() (cols, rows int) {
	if m == nil {
		return 0, 0
	}
	return m.cols, m.rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
