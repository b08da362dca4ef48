package game

// Body is the snake: an ordered list of cells, head first.
// length is the target size; the body only grows through it.
type Body struct {
	cells       []Cell
	length      int
	lastRemoved Cell
	removed     bool
}

// NewBody creates a one-cell body at head. A length above one makes the
// body unfurl from head over the following moves.
func NewBody(head Cell, length int) *Body {
	if length < 1 {
		length = 1
	}
	return &Body{
		cells:  []Cell{head},
		length: length,
	}
}

// Head returns the first cell
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Tail returns the last cell
func (b *Body) Tail() Cell {
	return b.cells[len(b.cells)-1]
}

// Len returns the number of cells currently on the grid
func (b *Body) Len() int {
	return len(b.cells)
}

// Length returns the target length
func (b *Body) Length() int {
	return b.length
}

// Cells returns a copy of the body, head first
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Move inserts a new head one step in direction d and trims the tail back
// to the target length. It returns the new head and whether it is still
// inside the grid (always true on a wrapping grid).
func (b *Body) Move(g Grid, d Direction) (Cell, bool) {
	head, inside := g.Advance(b.Head(), d)

	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head

	b.removed = false
	if len(b.cells) > b.length {
		b.lastRemoved = b.cells[len(b.cells)-1]
		b.cells = b.cells[:len(b.cells)-1]
		b.removed = true
	}
	return head, inside
}

// LastRemoved returns the tail cell dropped by the latest Move, if any
func (b *Body) LastRemoved() (Cell, bool) {
	return b.lastRemoved, b.removed
}

// Grow extends the target length by one; it takes effect on the next Move
func (b *Body) Grow() {
	b.length++
}

// Occupies reports whether any segment is on c
func (b *Body) Occupies(c Cell) bool {
	for _, s := range b.cells {
		if s == c {
			return true
		}
	}
	return false
}

// CollidedWithSelf reports whether the head overlaps another segment
func (b *Body) CollidedWithSelf() bool {
	head := b.cells[0]
	for _, s := range b.cells[1:] {
		if s == head {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body
func (b *Body) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(b.cells))
	for _, s := range b.cells {
		set[s] = struct{}{}
	}
	return set
}
