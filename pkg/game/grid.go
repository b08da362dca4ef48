package game

// Boundary selects what happens when the head crosses a grid edge
type Boundary int

const (
	BoundaryWrap  Boundary = iota // re-enter on the opposite edge
	BoundarySolid                 // leaving the grid kills the snake
)

func (b Boundary) String() string {
	if b == BoundarySolid {
		return "solid"
	}
	return "wrap"
}

// Grid is the fixed playing field geometry
type Grid struct {
	Width    int
	Height   int
	CellSize int // pixels per cell side
	Boundary Boundary
}

// NewGrid creates a grid. Dimensions are validated by the caller.
func NewGrid(width, height, cellSize int, b Boundary) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize, Boundary: b}
}

// Wrap maps any cell onto [0,Width) x [0,Height) with modulo arithmetic
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Step moves c one cell in direction d, wrapping around the edges
func (g Grid) Step(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d))
}

// Advance moves c one cell according to the grid's boundary mode.
// The bool is false when a solid grid was left.
func (g Grid) Advance(c Cell, d Direction) (Cell, bool) {
	if g.Boundary == BoundaryWrap {
		return g.Step(c, d), true
	}
	next := c.Add(d)
	return next, g.Contains(next)
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the starting cell for a fresh snake
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Pixel returns the top-left pixel coordinate of c
func (g Grid) Pixel(c Cell) (x, y int) {
	return c.X * g.CellSize, c.Y * g.CellSize
}

// Distance is the Manhattan distance between a and b, taking the shorter
// way around each axis on a wrapping grid.
func (g Grid) Distance(a, b Cell) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if g.Boundary == BoundaryWrap {
		dx = min(dx, g.Width-dx)
		dy = min(dy, g.Height-dy)
	}
	return dx + dy
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
