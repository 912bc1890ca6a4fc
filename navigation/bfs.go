package navigation

import "github.com/lixenwraith/gridsnake/grid"

// Passability reports whether a cell may be entered, nil treats every cell as open
type Passability func(c grid.Cell) bool

// noParent marks cells without a BFS predecessor
const noParent = -1

// Searcher runs breadth-first searches on a toroidal grid
// Buffers are reused across calls and only grow with the grid
type Searcher struct {
	visited []bool
	parent  []int32
	queue   []int32
}

// NewSearcher creates a searcher with empty buffers
func NewSearcher() *Searcher {
	return &Searcher{}
}

// reset sizes and clears buffers for a search over size cells
func (s *Searcher) reset(size int) {
	if cap(s.visited) < size {
		s.visited = make([]bool, size)
		s.parent = make([]int32, size)
		s.queue = make([]int32, 0, size)
	} else {
		s.visited = s.visited[:size]
		s.parent = s.parent[:size]
		clear(s.visited)
	}
	for i := range s.parent {
		s.parent[i] = noParent
	}
	s.queue = s.queue[:0]
}

// FindPath returns the shortest 4-connected path from start to goal, both inclusive
// start and goal are always enterable; every other cell must pass the passability check
// Returns false once all cols×rows cells are exhausted without reaching goal
func (s *Searcher) FindPath(g grid.Grid, start, goal grid.Cell, passable Passability) ([]grid.Cell, bool) {
	if !g.Valid() {
		return nil, false
	}
	start = g.Wrap(start)
	goal = g.Wrap(goal)
	if start == goal {
		return []grid.Cell{start}, true
	}

	s.reset(g.Size())
	startIdx := int32(g.Index(start))
	goalIdx := int32(g.Index(goal))
	s.visited[startIdx] = true
	s.queue = append(s.queue, startIdx)

	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		for _, n := range g.Neighbors(g.CellOf(int(cur))) {
			nIdx := int32(g.Index(n))
			if s.visited[nIdx] {
				continue
			}
			if nIdx != goalIdx && passable != nil && !passable(n) {
				continue
			}
			s.visited[nIdx] = true
			s.parent[nIdx] = cur
			if nIdx == goalIdx {
				return s.reconstruct(g, startIdx, goalIdx), true
			}
			s.queue = append(s.queue, nIdx)
		}
	}
	return nil, false
}

// reconstruct walks parent links back from goal
func (s *Searcher) reconstruct(g grid.Grid, startIdx, goalIdx int32) []grid.Cell {
	n := 1
	for idx := goalIdx; idx != startIdx; idx = s.parent[idx] {
		n++
	}
	path := make([]grid.Cell, n)
	idx := goalIdx
	for i := n - 1; i >= 0; i-- {
		path[i] = g.CellOf(int(idx))
		if idx != startIdx {
			idx = s.parent[idx]
		}
	}
	return path
}

// FindPath runs a one-off search with a fresh Searcher
func FindPath(g grid.Grid, start, goal grid.Cell, passable Passability) ([]grid.Cell, bool) {
	return NewSearcher().FindPath(g, start, goal, passable)
}
