package game

import "fmt"

// Cell represents a coordinate on the game grid (column, row)
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell shifted by one step in direction d (no wrapping)
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit vector on the grid. The zero value means "no direction".
type Direction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	None  = Direction{}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four movement directions in a fixed order
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse direction. Opposite(None) is None.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsNone reports whether d carries no movement
func (d Direction) IsNone() bool {
	return d == None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}
	return fmt.Sprintf("dir(%d,%d)", d.X, d.Y)
}

// State is the full simulation state. It is a copy: mutating it does not
// affect the simulation until passed to Restore.
type State struct {
	Snake     []Cell    `json:"snake"`
	Length    int       `json:"length"`
	Food      Cell      `json:"food"`
	Direction Direction `json:"direction"`
	Pending   Direction `json:"pending"`
	Alive     bool      `json:"alive"`
}

// Snapshot is the read-only view handed to renderers after every tick
type Snapshot struct {
	Snake     []Cell    `json:"snake"`  // head first
	Length    int       `json:"length"` // target length, >= len(Snake)
	Food      Cell      `json:"food"`
	Direction Direction `json:"direction"`
	Alive     bool      `json:"alive"` // false on the tick that ended in a reset
	Reset     bool      `json:"reset"`
	Ate       bool      `json:"ate"`
	Vacated   *Cell     `json:"vacated,omitempty"` // tail cell freed by this tick's move
	Tick      uint64    `json:"tick"`
	Resets    int       `json:"resets"`
}

// Head returns the first snake cell
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}
