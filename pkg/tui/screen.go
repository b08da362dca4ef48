// Package tui is a full-screen tcell front end for the simulation.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/xVismar/the-snake/pkg/game"
)

// Glyphs, two terminal columns per grid cell
const (
	runeHead = '@'
	runeBody = 'o'
	runeFood = '*'
	runeWall = '#'
)

// Command is one decoded user action
type Command struct {
	Dir  game.Direction
	Quit bool
}

// Screen draws snapshots on a tcell screen and decodes its key events
type Screen struct {
	screen tcell.Screen
	grid   game.Grid
	frame  int

	defStyle  tcell.Style
	headStyle tcell.Style
	bodyStyle tcell.Style
	foodStyle tcell.Style
	wallStyle tcell.Style
}

// NewScreen opens the terminal and initializes tcell
func NewScreen(grid game.Grid) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Wrap(s, grid), nil
}

// Wrap uses an already initialized screen, e.g. a simulation screen
func Wrap(s tcell.Screen, grid game.Grid) *Screen {
	frame := 0
	if grid.Boundary == game.BoundarySolid {
		frame = 1
	}
	defStyle := tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	s.SetStyle(defStyle)
	s.HideCursor()

	return &Screen{
		screen:    s,
		grid:      grid,
		frame:     frame,
		defStyle:  defStyle,
		headStyle: defStyle.Foreground(tcell.ColorYellow),
		bodyStyle: defStyle.Foreground(tcell.ColorGreen),
		foodStyle: defStyle.Foreground(tcell.ColorRed),
		wallStyle: defStyle.Foreground(tcell.ColorWhite),
	}
}

// Close restores the terminal
func (s *Screen) Close() {
	s.screen.Fini()
}

// Draw renders one snapshot and shows it
func (s *Screen) Draw(snap game.Snapshot) {
	s.screen.Clear()

	status := fmt.Sprintf("Length: %d  Resets: %d  Tick: %d", len(snap.Snake), snap.Resets, snap.Tick)
	if snap.Reset {
		status += "  ouch!"
	}
	s.text(0, 0, status)

	if s.frame > 0 {
		for x := -1; x <= s.grid.Width; x++ {
			s.cell(game.Cell{X: x, Y: -1}, runeWall, s.wallStyle)
			s.cell(game.Cell{X: x, Y: s.grid.Height}, runeWall, s.wallStyle)
		}
		for y := 0; y < s.grid.Height; y++ {
			s.cell(game.Cell{X: -1, Y: y}, runeWall, s.wallStyle)
			s.cell(game.Cell{X: s.grid.Width, Y: y}, runeWall, s.wallStyle)
		}
	}

	s.cell(snap.Food, runeFood, s.foodStyle)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			s.cell(snap.Snake[i], runeHead, s.headStyle)
		} else {
			s.cell(snap.Snake[i], runeBody, s.bodyStyle)
		}
	}

	s.text(0, s.grid.Height+2*s.frame+2, "arrows/hjkl/wasd to steer, q to quit")
	s.screen.Show()
}

// cell draws a grid cell; row 0 of the terminal holds the status line
func (s *Screen) cell(c game.Cell, r rune, style tcell.Style) {
	x := (c.X + s.frame) * 2
	y := c.Y + s.frame + 1
	s.screen.SetContent(x, y, r, nil, style)
	s.screen.SetContent(x+1, y, ' ', nil, s.defStyle)
}

func (s *Screen) text(x, y int, msg string) {
	for _, r := range msg {
		s.screen.SetContent(x, y, r, nil, s.defStyle)
		x++
	}
}

// Events decodes key presses until ctx is done
func (s *Screen) Events(ctx context.Context) <-chan Command {
	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{})
	go s.screen.ChannelEvents(evChan, quitChan)

	out := make(chan Command, 8)
	go func() {
		defer close(out)
		defer close(quitChan)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-evChan:
				if !ok {
					return
				}
				if _, resized := ev.(*tcell.EventResize); resized {
					s.screen.Sync()
					continue
				}
				cmd, ok := Translate(ev)
				if !ok {
					continue
				}
				select {
				case out <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Translate maps a tcell event to a command
func Translate(ev tcell.Event) (Command, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Command{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return Command{Dir: game.Up}, true
	case tcell.KeyDown:
		return Command{Dir: game.Down}, true
	case tcell.KeyLeft:
		return Command{Dir: game.Left}, true
	case tcell.KeyRight:
		return Command{Dir: game.Right}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}, true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'k', 'w', 'W':
			return Command{Dir: game.Up}, true
		case 'j', 's', 'S':
			return Command{Dir: game.Down}, true
		case 'h', 'a', 'A':
			return Command{Dir: game.Left}, true
		case 'l', 'd', 'D':
			return Command{Dir: game.Right}, true
		case 'q', 'Q':
			return Command{Quit: true}, true
		}
	}
	return Command{}, false
}
