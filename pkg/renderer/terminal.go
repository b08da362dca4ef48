package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xVismar/the-snake/pkg/config"
	"github.com/xVismar/the-snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	grid   game.Grid
	out    io.Writer
	board  [][]int
	buffer strings.Builder
	frame  int // wall thickness, 1 on solid grids
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
)

// NewTerminalRenderer creates a renderer for grid writing to stdout
func NewTerminalRenderer(grid game.Grid) *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout, grid)
}

// NewTerminalRendererTo creates a renderer writing to out
func NewTerminalRendererTo(out io.Writer, grid game.Grid) *TerminalRenderer {
	frame := 0
	if grid.Boundary == game.BoundarySolid {
		frame = 1
	}

	// Pre-allocate board to reduce GC pressure
	board := make([][]int, grid.Height+2*frame)
	for i := range board {
		board[i] = make([]int, grid.Width+2*frame)
	}

	return &TerminalRenderer{
		grid:  grid,
		out:   out,
		board: board,
		frame: frame,
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render draws a full frame for snap
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.buffer.Reset()
	// Clear screen and scrollback with ANSI escape codes
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	if r.frame > 0 {
		last := len(r.board) - 1
		for x := range r.board[0] {
			r.board[0][x] = cellWall
			r.board[last][x] = cellWall
		}
		for y := range r.board {
			r.board[y][0] = cellWall
			r.board[y][len(r.board[y])-1] = cellWall
		}
	}

	r.set(snap.Food, cellFood)
	// Body first so the head wins if they overlap on a reset frame
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.set(snap.Snake[i], cellHead)
		} else {
			r.set(snap.Snake[i], cellBody)
		}
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Length: %d  |  Resets: %d  |  Tick: %d\n",
		len(snap.Snake), snap.Resets, snap.Tick))
	if snap.Reset {
		r.buffer.WriteString("  💥 Ouch! Starting over\n")
	} else {
		r.buffer.WriteString("\n")
	}
	r.buffer.WriteString("\n")

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, Q to quit\n")

	io.WriteString(r.out, r.buffer.String())
}

func (r *TerminalRenderer) set(c game.Cell, kind int) {
	if !r.grid.Contains(c) {
		return
	}
	r.board[c.Y+r.frame][c.X+r.frame] = kind
}
