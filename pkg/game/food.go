package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// FoodSpawner places food on uniformly random free cells
type FoodSpawner struct {
	grid Grid
	rng  *rand.Rand
}

// NewFoodSpawner creates a spawner drawing from rng
func NewFoodSpawner(g Grid, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{grid: g, rng: rng}
}

// Place returns a random cell that is not in occupied.
// It fails with ErrBoardFull when every cell of the grid is taken.
func (f *FoodSpawner) Place(occupied map[Cell]struct{}) (Cell, error) {
	taken := 0
	for c := range occupied {
		if f.grid.Contains(c) {
			taken++
		}
	}
	if taken >= f.grid.Cells() {
		return Cell{}, fmt.Errorf("%d of %d cells occupied: %w", taken, f.grid.Cells(), ErrBoardFull)
	}

	// Rejection sampling terminates with probability one since a free cell exists.
	for {
		pos := Cell{
			X: f.rng.Intn(f.grid.Width),
			Y: f.rng.Intn(f.grid.Height),
		}
		if _, ok := occupied[pos]; !ok {
			return pos, nil
		}
	}
}
