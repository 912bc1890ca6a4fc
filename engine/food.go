package engine

import (
	"math/rand"

	"github.com/lixenwraith/gridsnake/grid"
	"github.com/lixenwraith/gridsnake/navigation"
)

// Spawner places food on cells the snake head can reach
type Spawner struct {
	rng      *rand.Rand
	searcher *navigation.Searcher
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng, searcher: navigation.NewSearcher()}
}

// Candidates returns the free cells reachable from the head, excluding the head itself
func (sp *Spawner) Candidates(s *State) []grid.Cell {
	if s.Snake == nil || s.Snake.Len() == 0 {
		return nil
	}
	return sp.searcher.Reachable(s.Grid, s.Snake.Head(), s.Free)
}

// Spawn picks a uniformly random reachable free cell as the new food
// With no candidate the food is cleared and false is returned
func (sp *Spawner) Spawn(s *State) (grid.Cell, bool) {
	cells := sp.Candidates(s)
	if len(cells) == 0 {
		s.ClearFood()
		return grid.Cell{}, false
	}
	c := cells[sp.rng.Intn(len(cells))]
	s.SetFood(c)
	return c, true
}
