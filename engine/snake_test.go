package engine

import (
	"testing"

	"github.com/lixenwraith/gridsnake/grid"
)

func row(cols ...int) []grid.Cell {
	out := make([]grid.Cell, len(cols))
	for i, c := range cols {
		out[i] = grid.Cell{Col: c, Row: 0}
	}
	return out
}

func TestSnake_PushTrimKeepsOccupancy(t *testing.T) {
	s := NewSnake(row(3, 2, 1), grid.DirE, 3)

	s.Push(grid.Cell{Col: 4})
	if s.Len() != 4 {
		t.Fatalf("Len() after push = %d, want 4", s.Len())
	}
	if popped := s.Trim(); popped != 1 {
		t.Errorf("Trim() = %d, want 1", popped)
	}
	if s.Occupies(grid.Cell{Col: 1}) {
		t.Error("popped tail should be released")
	}
	if s.Head() != (grid.Cell{Col: 4}) || s.Tail() != (grid.Cell{Col: 2}) {
		t.Errorf("head/tail = %v/%v, want {4 0}/{2 0}", s.Head(), s.Tail())
	}
}

func TestSnake_PushOntoTailCountsTwice(t *testing.T) {
	s := NewSnake(row(1, 0), grid.DirW, 2)
	tail := s.Tail()

	s.Push(tail)
	if got := s.Count(tail); got != 2 {
		t.Errorf("Count(tail) after push = %d, want 2", got)
	}
	s.Trim()
	if got := s.Count(tail); got != 1 {
		t.Errorf("Count(tail) after trim = %d, want 1", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSnake_GrowSkipsOneTrim(t *testing.T) {
	s := NewSnake(row(2, 1, 0), grid.DirE, 3)
	s.Push(grid.Cell{Col: 3})
	s.Grow()
	s.Trim()
	if s.Len() != 4 || s.TargetLength != 4 {
		t.Errorf("Len/Target = %d/%d, want 4/4", s.Len(), s.TargetLength)
	}
}

func TestSnake_TailVacates(t *testing.T) {
	tests := []struct {
		name   string
		length int
		target int
		eating bool
		want   bool
	}{
		{"steady", 4, 4, false, true},
		{"steady eating", 4, 4, true, false},
		{"growing", 3, 4, false, false},
		{"over target", 5, 4, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := make([]grid.Cell, tt.length)
			for i := range body {
				body[i] = grid.Cell{Col: tt.length - i}
			}
			s := NewSnake(body, grid.DirE, tt.target)
			if got := s.TailVacates(tt.eating); got != tt.want {
				t.Errorf("TailVacates(%v) = %v, want %v", tt.eating, got, tt.want)
			}
		})
	}
}

func TestSnake_Truncate(t *testing.T) {
	s := NewSnake(row(5, 4, 3, 2, 1), grid.DirE, 5)
	s.Truncate(2)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	for _, c := range row(3, 2, 1) {
		if s.Occupies(c) {
			t.Errorf("cell %v should be released", c)
		}
	}
	if s.TargetLength != 5 {
		t.Errorf("TargetLength = %d, want 5", s.TargetLength)
	}

	s.Truncate(-1)
	if s.Len() != 0 {
		t.Errorf("Len() after negative truncate = %d, want 0", s.Len())
	}
}
