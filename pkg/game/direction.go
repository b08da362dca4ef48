package game

// DirectionController buffers at most one direction change between ticks
// and never lets the snake turn back into its own neck.
type DirectionController struct {
	current Direction
	pending Direction
}

// NewDirectionController creates a controller heading in the initial direction
func NewDirectionController(initial Direction) *DirectionController {
	return &DirectionController{current: initial}
}

// Request queues d for the next commit. A request for the reverse of the
// current direction is dropped. Later requests overwrite earlier ones.
func (c *DirectionController) Request(d Direction) bool {
	if d.IsNone() || d == c.current.Opposite() {
		return false
	}
	c.pending = d
	return true
}

// Commit applies the pending direction, if any, and returns the direction
// to move in this tick
func (c *DirectionController) Commit() Direction {
	if !c.pending.IsNone() {
		c.current = c.pending
	}
	c.pending = None
	return c.current
}

// Current returns the last committed direction
func (c *DirectionController) Current() Direction {
	return c.current
}

// Pending returns the queued direction, or None
func (c *DirectionController) Pending() Direction {
	return c.pending
}

// Reset sets a new heading and drops any queued input
func (c *DirectionController) Reset(d Direction) {
	c.current = d
	c.pending = None
}
