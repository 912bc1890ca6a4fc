package grid

import (
	"errors"
	"fmt"
)

// ErrDegenerateGrid is returned when a viewport yields zero columns or rows
var ErrDegenerateGrid = errors.New("degenerate grid")

// Grid describes a toroidal cols×rows grid laid over a viewport
// All coordinate arithmetic wraps modulo the dimensions
type Grid struct {
	Cols, Rows int
	CellSize   int // Viewport units per cell side
}

// Dimensions ceiling-divides the viewport by the cell size
func Dimensions(viewportW, viewportH, cellSize int) (cols, rows int, err error) {
	if cellSize <= 0 {
		return 0, 0, fmt.Errorf("%w: cell size %d", ErrDegenerateGrid, cellSize)
	}
	if viewportW > 0 {
		cols = (viewportW + cellSize - 1) / cellSize
	}
	if viewportH > 0 {
		rows = (viewportH + cellSize - 1) / cellSize
	}
	if cols == 0 || rows == 0 {
		return 0, 0, fmt.Errorf("%w: viewport %dx%d", ErrDegenerateGrid, viewportW, viewportH)
	}
	return cols, rows, nil
}

// New builds the grid for a viewport
func New(viewportW, viewportH, cellSize int) (Grid, error) {
	cols, rows, err := Dimensions(viewportW, viewportH, cellSize)
	if err != nil {
		return Grid{}, err
	}
	return Grid{Cols: cols, Rows: rows, CellSize: cellSize}, nil
}

// Valid reports whether modulo arithmetic is safe on g
func (g Grid) Valid() bool {
	return g.Cols > 0 && g.Rows > 0
}

// Size returns the total cell count
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Wrap folds any coordinate onto the torus
func (g Grid) Wrap(c Cell) Cell {
	return Cell{Col: mod(c.Col, g.Cols), Row: mod(c.Row, g.Rows)}
}

// Contains reports whether c lies inside the grid without wrapping
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Step returns the neighbor of c in direction d, wrapping at the edges
func (g Grid) Step(c Cell, d Dir) Cell {
	dc, dr := d.Delta()
	return g.Wrap(Cell{Col: c.Col + dc, Row: c.Row + dr})
}

// Neighbors returns the four wrapped neighbors in DirN..DirW order
// On grids narrower than 3 cells some entries coincide or equal c itself
func (g Grid) Neighbors(c Cell) [DirCount]Cell {
	var out [DirCount]Cell
	for d := DirN; d < DirCount; d++ {
		out[d] = g.Step(c, d)
	}
	return out
}

// Index returns the flat row-major index of the wrapped cell
func (g Grid) Index(c Cell) int {
	c = g.Wrap(c)
	return c.Row*g.Cols + c.Col
}

// CellOf is the inverse of Index
func (g Grid) CellOf(idx int) Cell {
	return Cell{Col: idx % g.Cols, Row: idx / g.Cols}
}

// CellAt translates viewport coordinates to the covering cell
// Points outside the grid report false; no wrapping is applied
func (g Grid) CellAt(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || g.CellSize <= 0 {
		return Cell{}, false
	}
	c := Cell{Col: x / g.CellSize, Row: y / g.CellSize}
	return c, g.Contains(c)
}

// Origin returns the viewport position of the top-left corner of c
func (g Grid) Origin(c Cell) (x, y int) {
	return c.Col * g.CellSize, c.Row * g.CellSize
}

// Fold converts a single step from one cell to an adjacent one into a direction
// Deltas larger than one cell are wraparound steps and fold to the opposite sign
func (g Grid) Fold(from, to Cell) Dir {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	if dc > 1 {
		dc = -1
	} else if dc < -1 {
		dc = 1
	}
	if dr > 1 {
		dr = -1
	} else if dr < -1 {
		dr = 1
	}
	return DirFromDelta(dc, dr)
}

func mod(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
