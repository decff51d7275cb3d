package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fieldlab/internal/scene"
)

// frameBuffer keeps only the most recent frame. raylib redraws the whole
// window every tick, so a paused topic is replayed from here.
type frameBuffer struct {
	scene.Recorder
}

func (b *frameBuffer) Clear(bg scene.Color) {
	b.Reset()
	b.Recorder.Clear(bg)
}

// Surface draws scene commands with raylib, mapping scene pixels into the
// window through Offset and Scale.
type Surface struct {
	Offset rl.Vector2
	Scale  float32
	Font   rl.Font
	// canvas size in scene pixels, used by Clear
	Width, Height float32
}

func toColor(c scene.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

func (s *Surface) v(p scene.Point) rl.Vector2 {
	return rl.NewVector2(s.Offset.X+float32(p.X)*s.Scale, s.Offset.Y+float32(p.Y)*s.Scale)
}

func (s *Surface) n(v float64) float32 { return float32(v) * s.Scale }

func (s *Surface) Clear(bg scene.Color) {
	rl.DrawRectangleV(s.Offset, rl.NewVector2(s.Width*s.Scale, s.Height*s.Scale), toColor(bg))
}

func (s *Surface) FillCircle(c scene.Point, r float64, fill scene.Color) {
	rl.DrawCircleV(s.v(c), s.n(r), toColor(fill))
}

func (s *Surface) StrokeCircle(c scene.Point, r float64, stroke scene.Color, width float64) {
	w := max(s.n(width), 1)
	outer := s.n(r) + w/2
	rl.DrawRing(s.v(c), outer-w, outer, 0, 360, 64, toColor(stroke))
}

func (s *Surface) FillRect(x, y, w, h float64, fill scene.Color) {
	rl.DrawRectangleV(s.v(scene.Pt(x, y)), rl.NewVector2(s.n(w), s.n(h)), toColor(fill))
}

func (s *Surface) StrokeRect(x, y, w, h float64, stroke scene.Color, width float64) {
	p := s.v(scene.Pt(x, y))
	rl.DrawRectangleLinesEx(rl.NewRectangle(p.X, p.Y, s.n(w), s.n(h)), max(s.n(width), 1), toColor(stroke))
}

func (s *Surface) Line(from, to scene.Point, stroke scene.Color, width float64) {
	rl.DrawLineEx(s.v(from), s.v(to), max(s.n(width), 1), toColor(stroke))
}

func (s *Surface) Polyline(pts []scene.Point, stroke scene.Color, width float64) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1], pts[i], stroke, width)
	}
}

// FillPolygon fans from the first vertex. raylib culls clockwise triangles,
// so each one is emitted counter-clockwise on screen.
func (s *Surface) FillPolygon(pts []scene.Point, fill scene.Color) {
	col := toColor(fill)
	a := s.v(pts[0])
	for i := 1; i+1 < len(pts); i++ {
		b, c := s.v(pts[i]), s.v(pts[i+1])
		if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
			b, c = c, b
		}
		rl.DrawTriangle(a, b, c, col)
	}
}

// Text treats at as the baseline anchor.
func (s *Surface) Text(at scene.Point, text string, size float64, align scene.Align, fill scene.Color) {
	fs := s.n(size)
	p := s.v(at)
	p.Y -= fs * 0.8
	if align == scene.AlignCenter {
		p.X -= rl.MeasureTextEx(s.Font, text, fs, 1).X / 2
	}
	rl.DrawTextEx(s.Font, text, p, fs, 1, toColor(fill))
}
