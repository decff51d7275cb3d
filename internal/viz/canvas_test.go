package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/topics"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5, "#ffffff")
	if !c.IsSet(3, 5) {
		t.Fatal("dot not set")
	}
	if c.Grid[1][1] != blank|0x10 {
		t.Errorf("cell = %U, want %U", c.Grid[1][1], blank|0x10)
	}
	c.Unset(3, 5)
	if c.IsSet(3, 5) || c.Grid[1][1] != blank {
		t.Error("dot not cleared")
	}

	// out of range is ignored
	c.Set(-1, 0, "")
	c.Set(100, 100, "")
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 11, "#ef4444")
	if !c.IsSet(0, 0) || !c.IsSet(19, 11) {
		t.Error("line endpoints missing")
	}
}

func TestCanvasWideText(t *testing.T) {
	c := NewCanvas(6, 1)
	c.PutText(0, 0, "日x", "#ffffff")
	if c.Cell(0, 0) != '日' {
		t.Errorf("cell 0 = %q", c.Cell(0, 0))
	}
	if c.Cell(1, 0) != 0 {
		t.Errorf("wide tail = %q, want 0", c.Cell(1, 0))
	}
	if c.Cell(2, 0) != 'x' {
		t.Errorf("cell 2 = %q", c.Cell(2, 0))
	}

	line := strings.TrimSuffix(c.String(), "\n")
	if got := len([]rune(line)); got != 5 {
		t.Errorf("rendered %d runes, want 5", got)
	}
}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillPolygon([]float64{2, 18, 10}, []float64{2, 2, 18}, "#10b981")
	if !c.IsSet(10, 6) {
		t.Error("triangle interior not filled")
	}
	if c.IsSet(1, 18) {
		t.Error("filled outside triangle")
	}
}

func TestRasterScalesToCanvas(t *testing.T) {
	c := NewCanvas(64, 16)
	r := NewRaster(c, 800, 384)

	r.FillCircle(scene.Pt(400, 192), 40, "#ef4444")
	// 400 * 128/800 = 64, 192 * 64/384 = 32
	if !c.IsSet(64, 32) {
		t.Error("circle center not set")
	}
	if c.Colors[32/4][64/2] != "#ef4444" {
		t.Errorf("cell color = %q", c.Colors[8][32])
	}

	r.Clear("")
	r.Text(scene.Pt(400, 200), "ab", 12, scene.AlignCenter, "#ffffff")
	if c.Cell(31, 8) != 'a' || c.Cell(32, 8) != 'b' {
		t.Errorf("centered text at row 8 = %q", c.String())
	}
}

func TestRasterAcceptsEveryTopic(t *testing.T) {
	for _, id := range append(topics.Default.Topics(), topics.Placeholder) {
		c := NewCanvas(40, 10)
		r := NewRaster(c, 800, 384)
		e := topics.Lookup(string(id))
		cmds := e.Render(topics.Frame{Width: 800, Height: 384, Elapsed: 1.5, Playing: true}, e.Defaults())
		scene.Replay(r, cmds)

		lit := false
		for row := range c.Grid {
			for col := range c.Grid[row] {
				if c.Grid[row][col] != blank || c.Text[row][col] != 0 {
					lit = true
				}
			}
		}
		if !lit {
			t.Errorf("%s: nothing drawn", id)
		}
	}
}
