package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/xVismar/the-snake/pkg/config"
	"github.com/xVismar/the-snake/pkg/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Snake:  []game.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Length: 3,
		Food:   game.Cell{X: 3, Y: 3},
		Alive:  true,
		Tick:   7,
	}
}

// boardLines returns the rendered board rows without the left margin
func boardLines(out string, rows int) []string {
	lines := strings.Split(out, "\n")
	// clear+blank, title, stats, message, blank
	return lines[5 : 5+rows]
}

func TestRenderWrapGrid(t *testing.T) {
	var buf bytes.Buffer
	grid := game.NewGrid(4, 4, 20, game.BoundaryWrap)
	r := NewTerminalRendererTo(&buf, grid)

	r.Render(testSnapshot())
	out := buf.String()

	if !strings.HasPrefix(out, "\033[H\033[2J") {
		t.Error("Expected frame to start with a screen clear")
	}
	if !strings.Contains(out, "Length: 3") || !strings.Contains(out, "Tick: 7") {
		t.Errorf("Missing stats header in output:\n%s", out)
	}

	rows := boardLines(out, 4)
	want := "  " + config.CharBody + config.CharBody + config.CharHead + config.CharEmpty
	if rows[1] != want {
		t.Errorf("Row 1 = %q, expected %q", rows[1], want)
	}
	if !strings.HasSuffix(rows[3], config.CharFood) {
		t.Errorf("Expected food at end of row 3, got %q", rows[3])
	}
	if strings.Contains(out, config.CharWall) {
		t.Error("Wrapping grid should not draw walls")
	}
}

func TestRenderSolidGridDrawsWalls(t *testing.T) {
	var buf bytes.Buffer
	grid := game.NewGrid(4, 4, 20, game.BoundarySolid)
	r := NewTerminalRendererTo(&buf, grid)

	r.Render(testSnapshot())
	rows := boardLines(buf.String(), 6)

	if rows[0] != "  "+strings.Repeat(config.CharWall, 6) {
		t.Errorf("Expected full wall on top row, got %q", rows[0])
	}
	want := "  " + config.CharWall + config.CharBody + config.CharBody + config.CharHead + config.CharEmpty + config.CharWall
	if rows[2] != want {
		t.Errorf("Row 2 = %q, expected %q", rows[2], want)
	}
}

func TestRenderResetMessage(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRendererTo(&buf, game.NewGrid(4, 4, 20, game.BoundaryWrap))

	snap := testSnapshot()
	snap.Reset = true
	r.Render(snap)
	if !strings.Contains(buf.String(), "Starting over") {
		t.Error("Expected reset message")
	}
}

// BenchmarkStringBuilderRender benchmarks buffered rendering of a full board
func BenchmarkStringBuilderRender(b *testing.B) {
	grid := game.NewGrid(config.DefaultWidth, config.DefaultHeight, config.DefaultCellSize, game.BoundarySolid)
	renderer := NewTerminalRendererTo(io.Discard, grid)
	snap := testSnapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.Render(snap)
	}
}
