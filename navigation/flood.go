package navigation

import "github.com/lixenwraith/gridsnake/grid"

// Reachable flood-fills from start over passable cells
// The result lists every reachable cell in BFS order, start itself excluded
func (s *Searcher) Reachable(g grid.Grid, start grid.Cell, passable Passability) []grid.Cell {
	if !g.Valid() {
		return nil
	}
	start = g.Wrap(start)

	s.reset(g.Size())
	startIdx := int32(g.Index(start))
	s.visited[startIdx] = true
	s.queue = append(s.queue, startIdx)

	for head := 0; head < len(s.queue); head++ {
		for _, n := range g.Neighbors(g.CellOf(int(s.queue[head]))) {
			nIdx := int32(g.Index(n))
			if s.visited[nIdx] {
				continue
			}
			s.visited[nIdx] = true
			if passable != nil && !passable(n) {
				continue
			}
			s.queue = append(s.queue, nIdx)
		}
	}

	out := make([]grid.Cell, 0, len(s.queue)-1)
	for _, idx := range s.queue[1:] {
		out = append(out, g.CellOf(int(idx)))
	}
	return out
}

// Reachable runs a one-off flood fill with a fresh Searcher
func Reachable(g grid.Grid, start grid.Cell, passable Passability) []grid.Cell {
	return NewSearcher().Reachable(g, start, passable)
}
