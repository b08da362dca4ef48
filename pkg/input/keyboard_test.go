package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/xVismar/the-snake/pkg/game"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   KeyInput
		want game.Direction
		ok   bool
	}{
		{KeyInput{Key: keyboard.KeyArrowUp}, game.Up, true},
		{KeyInput{Key: keyboard.KeyArrowDown}, game.Down, true},
		{KeyInput{Key: keyboard.KeyArrowLeft}, game.Left, true},
		{KeyInput{Key: keyboard.KeyArrowRight}, game.Right, true},
		{KeyInput{Char: 'w'}, game.Up, true},
		{KeyInput{Char: 'S'}, game.Down, true},
		{KeyInput{Char: 'a'}, game.Left, true},
		{KeyInput{Char: 'D'}, game.Right, true},
		{KeyInput{Char: 'x'}, game.None, false},
		{KeyInput{Key: keyboard.KeyEnter}, game.None, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDirection(%+v) = %v, %v; expected %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuit(t *testing.T) {
	for _, in := range []KeyInput{{Char: 'q'}, {Char: 'Q'}, {Key: keyboard.KeyEsc}, {Key: keyboard.KeyCtrlC}} {
		if !IsQuit(in) {
			t.Errorf("Expected %+v to quit", in)
		}
	}
	if IsQuit(KeyInput{Char: 'w'}) {
		t.Error("w should not quit")
	}
}
