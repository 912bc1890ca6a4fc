package engine

import "github.com/lixenwraith/gridsnake/grid"

// Snake is the ordered body (head first), heading and growth target
type Snake struct {
	Body         []grid.Cell
	Direction    grid.Dir
	TargetLength int

	// Occupancy counts; a cell may be counted twice between Push and Trim
	occupied map[grid.Cell]int
}

// NewSnake creates a snake from a head-first body
func NewSnake(body []grid.Cell, dir grid.Dir, targetLength int) *Snake {
	s := &Snake{
		Body:         make([]grid.Cell, 0, max(len(body), targetLength)+1),
		Direction:    dir,
		TargetLength: targetLength,
		occupied:     make(map[grid.Cell]int, targetLength+1),
	}
	for _, c := range body {
		s.Body = append(s.Body, c)
		s.occupied[c]++
	}
	return s
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.Body)
}

// Head returns the first body cell; callers check Len first
func (s *Snake) Head() grid.Cell {
	return s.Body[0]
}

// Tail returns the last body cell; callers check Len first
func (s *Snake) Tail() grid.Cell {
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether any body segment sits on c
func (s *Snake) Occupies(c grid.Cell) bool {
	return s.occupied[c] > 0
}

// Count returns how many segments sit on c
func (s *Snake) Count(c grid.Cell) int {
	return s.occupied[c]
}

// Push prepends a new head
func (s *Snake) Push(c grid.Cell) {
	s.Body = append(s.Body, grid.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = c
	s.occupied[c]++
}

// PopTail removes and returns the last segment
func (s *Snake) PopTail() grid.Cell {
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	s.release(tail)
	return tail
}

// Grow raises the target length by one
func (s *Snake) Grow() {
	s.TargetLength++
}

// Trim pops tail segments until the body fits the target length
func (s *Snake) Trim() int {
	n := 0
	for len(s.Body) > s.TargetLength {
		s.PopTail()
		n++
	}
	return n
}

// Truncate keeps only the first n segments
func (s *Snake) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.Body) > n {
		s.PopTail()
	}
}

// TailVacates reports whether the tail will be popped after the next push
func (s *Snake) TailVacates(eating bool) bool {
	target := s.TargetLength
	if eating {
		target++
	}
	return len(s.Body)+1 > target
}

func (s *Snake) release(c grid.Cell) {
	if n := s.occupied[c]; n > 1 {
		s.occupied[c] = n - 1
	} else {
		delete(s.occupied, c)
	}
}
