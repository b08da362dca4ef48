package game

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

// TestPlaceAvoidsOccupied tests food never lands on an occupied cell
func TestPlaceAvoidsOccupied(t *testing.T) {
	g := NewGrid(4, 4, 20, BoundaryWrap)
	f := NewFoodSpawner(g, rand.New(rand.NewSource(7)))

	occupied := map[Cell]struct{}{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			occupied[Cell{X: x, Y: y}] = struct{}{}
		}
	}

	seen := map[Cell]bool{}
	for i := 0; i < 500; i++ {
		c, err := f.Place(occupied)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, bad := occupied[c]; bad {
			t.Fatalf("Food placed on occupied cell %v", c)
		}
		if !g.Contains(c) {
			t.Fatalf("Food placed off grid at %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected all 4 free cells to be drawn eventually, got %d", len(seen))
	}
}

func TestPlaceLastFreeCell(t *testing.T) {
	g := NewGrid(4, 4, 20, BoundaryWrap)
	f := NewFoodSpawner(g, rand.New(rand.NewSource(1)))

	occupied := map[Cell]struct{}{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x != 2 || y != 1 {
				occupied[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	c, err := f.Place(occupied)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (Cell{X: 2, Y: 1}) {
		t.Errorf("Expected the only free cell (2,1), got %v", c)
	}
}

// TestPlaceBoardFull tests a saturated board fails instead of retrying forever
func TestPlaceBoardFull(t *testing.T) {
	g := NewGrid(4, 4, 20, BoundaryWrap)
	f := NewFoodSpawner(g, rand.New(rand.NewSource(1)))

	occupied := map[Cell]struct{}{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			occupied[Cell{X: x, Y: y}] = struct{}{}
		}
	}
	// Off-grid cells do not count toward saturation.
	occupied[Cell{X: -1, Y: 0}] = struct{}{}

	if _, err := f.Place(occupied); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}
