package input

import (
	"github.com/eiannone/keyboard"

	"github.com/xVismar/the-snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
	done      chan struct{}
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput, 8),
		done:      make(chan struct{}),
	}
}

// Start puts the terminal in raw mode and begins forwarding key presses
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case h.inputChan <- KeyInput{Char: char, Key: key}:
			case <-h.done:
				return
			}
		}
	}()

	return nil
}

// Stop restores the terminal
func (h *KeyboardHandler) Stop() {
	close(h.done)
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}

	return game.None, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' ||
		input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}
