package topics

import (
	"fmt"
	"math"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

const chargeRadius = 20

// drawElectricCharge shows two point charges and, while playing, the
// oscillating force vectors acting on them.
func drawElectricCharge(f Frame, p params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	x1 := cx - p.Distance
	x2 := cx + p.Distance

	b.FillCircle(scene.Pt(x1, cy), chargeRadius, chargeColor(p.Charge1)).
		Text(scene.Pt(x1, cy+5), chargeGlyph(p.Charge1), 16, scene.AlignCenter, ColorText)
	b.FillCircle(scene.Pt(x2, cy), chargeRadius, chargeColor(p.Charge2)).
		Text(scene.Pt(x2, cy+5), chargeGlyph(p.Charge2), 16, scene.AlignCenter, ColorText)

	if f.Playing {
		l := 50*math.Sin(f.Elapsed) + 60

		b.Line(scene.Pt(x1, cy), scene.Pt(x1-l, cy), ColorField, 3).
			Polygon([]scene.Point{{X: x1 - l, Y: cy}, {X: x1 - l + 10, Y: cy - 5}, {X: x1 - l + 10, Y: cy + 5}}, ColorField)
		b.Line(scene.Pt(x2, cy), scene.Pt(x2+l, cy), ColorField, 3).
			Polygon([]scene.Point{{X: x2 + l, Y: cy}, {X: x2 + l - 10, Y: cy - 5}, {X: x2 + l - 10, Y: cy + 5}}, ColorField)
	}

	formula(b, "F = k(q₁q₂)/r²", fmt.Sprintf("F = %.2f × 10⁶ N", CoulombForce(p)/1e6))
	return b.Commands()
}

func coulombReading(p params.Set) Reading {
	return Reading{Label: "F", Value: CoulombForce(p), Unit: "N"}
}
