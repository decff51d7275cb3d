package topics

import (
	"math"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

const (
	waveAmplitude = 50.0
	waveNumber    = 0.02
	waveSpeed     = 100.0
	waveSample    = 5.0
)

func drawMaxwell(f Frame, _ params.Set) []scene.Command {
	_, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	if f.Playing && f.Width > 0 && !math.IsInf(f.Width, 0) {
		shift := f.Elapsed * waveSpeed
		e := make([]scene.Point, 0, int(f.Width/waveSample)+1)
		m := make([]scene.Point, 0, cap(e))
		for x := 0.0; x < f.Width; x += waveSample {
			phase := (x - shift) * waveNumber
			e = append(e, scene.Pt(x, cy+waveAmplitude*math.Sin(phase)))
			m = append(m, scene.Pt(x, cy+waveAmplitude*math.Cos(phase)))
		}
		b.Polyline(e, ColorPositive, 3).Polyline(m, ColorNegative, 3)

		for x := 50.0; x < f.Width; x += 100 {
			b.Polygon([]scene.Point{{X: x, Y: cy - 100}, {X: x - 10, Y: cy - 90}, {X: x - 10, Y: cy - 110}}, ColorField)
		}
	}

	b.Text(scene.Pt(20, 80), "E (Electric Field)", 16, scene.AlignLeft, ColorText).
		Text(scene.Pt(20, 95), "___", 16, scene.AlignLeft, ColorPositive).
		Text(scene.Pt(20, 120), "B (Magnetic Field)", 16, scene.AlignLeft, ColorText).
		Text(scene.Pt(20, 135), "___", 16, scene.AlignLeft, ColorNegative).
		Text(scene.Pt(20, 160), "Direction of Propagation", 16, scene.AlignLeft, ColorText).
		Text(scene.Pt(20, 175), "→", 16, scene.AlignLeft, ColorField)

	b.Text(scene.Pt(20, 30), "∇ × E = -∂B/∂t", 14, scene.AlignLeft, ColorText).
		Text(scene.Pt(20, 50), "∇ × B = μ₀J + μ₀ε₀∂E/∂t", 14, scene.AlignLeft, ColorText)
	return b.Commands()
}
