package topics

import (
	"fmt"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

var equipotentials = [...]int{20, 15, 10, 5, 2}

// drawElectricPotential is static: play state and time are ignored.
func drawElectricPotential(f Frame, _ params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	for i, v := range equipotentials {
		r := float64(i+1) * 30
		b.StrokeCircle(scene.Pt(cx, cy), r, ColorField, 2).
			Text(scene.Pt(cx+r+5, cy), fmt.Sprintf("%dV", v), 12, scene.AlignLeft, ColorField)
	}

	b.FillCircle(scene.Pt(cx, cy), 12, ColorPositive).
		Text(scene.Pt(cx, cy+4), "+", 12, scene.AlignCenter, ColorText)

	formula(b, "V = kQ/r", "Equipotential surfaces (circles)")
	return b.Commands()
}
