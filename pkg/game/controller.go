package game

// Controller defines the brain of a player (human input or autopilot)
type Controller interface {
	Next(s Snapshot) Direction
}

// --- Implementation: Greedy Autopilot ---

// Autopilot steers straight for the food, avoiding cells the body will
// still occupy after the move. It keeps no state between ticks.
type Autopilot struct {
	Grid Grid
}

// Next picks the safe direction closest to the food. Ties favour the
// current heading. It returns None when every move is blocked.
func (a Autopilot) Next(s Snapshot) Direction {
	if len(s.Snake) == 0 {
		return None
	}
	head := s.Head()

	// A full-length tail moves away this tick. Food is never on the body,
	// so the move that eats cannot target the kept tail.
	cells := s.Snake
	if len(cells) > 1 && len(cells) >= s.Length {
		cells = cells[:len(cells)-1]
	}
	blocked := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		blocked[c] = struct{}{}
	}

	best := None
	bestDist := -1
	for _, d := range Directions {
		if d == s.Direction.Opposite() {
			continue
		}
		next, ok := a.Grid.Advance(head, d)
		if !ok {
			continue
		}
		if _, hit := blocked[next]; hit {
			continue
		}
		dist := a.Grid.Distance(next, s.Food)
		if bestDist < 0 || dist < bestDist || (dist == bestDist && d == s.Direction) {
			best, bestDist = d, dist
		}
	}
	return best
}
