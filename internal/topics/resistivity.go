package topics

import (
	"math"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

const (
	driftParticles = 10
	driftSpan      = 180.0
	driftSpeed     = 50.0
)

func drawResistivity(f Frame, _ params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	b.FillRect(cx-100, cy-20, 200, 40, ColorPlate)

	if f.Playing {
		for i := 0; i < driftParticles; i++ {
			x := cx - 90 + wrap(f.Elapsed*driftSpeed+float64(i)*20, driftSpan)
			y := cy + math.Sin(f.Elapsed+float64(i))*5
			b.FillCircle(scene.Pt(x, y), 3, ColorCurrent)
		}
	}

	b.Polyline([]scene.Point{{X: cx - 120, Y: cy - 40}, {X: cx - 100, Y: cy - 40}, {X: cx - 100, Y: cy - 20}}, ColorPositive, 2).
		Polyline([]scene.Point{{X: cx + 100, Y: cy - 40}, {X: cx + 120, Y: cy - 40}, {X: cx + 120, Y: cy + 20}}, ColorPositive, 2)

	b.Text(scene.Pt(cx-110, cy-50), "V", 14, scene.AlignCenter, ColorText).
		Text(scene.Pt(cx, cy-40), "I", 14, scene.AlignCenter, ColorText)

	formula(b, "R = ρL/A", "ρ = resistivity (Ω⋅m)")
	return b.Commands()
}

// wrap maps v into [0, span).
func wrap(v, span float64) float64 {
	m := math.Mod(v, span)
	if m < 0 {
		m += span
	}
	return m
}
