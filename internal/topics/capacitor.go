package topics

import (
	"fmt"
	"math"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

const (
	plateCharges   = 8
	capacitorLines = 5
)

func drawCapacitor(f Frame, p params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	b.FillRect(cx-60, cy-80, 10, 160, ColorPlate).
		FillRect(cx+50, cy-80, 10, 160, ColorPlate)

	for i := 0; i < plateCharges; i++ {
		y := cy - 70 + float64(i)*140/(plateCharges-1)
		b.FillCircle(scene.Pt(cx-65, y), 4, ColorNegative).
			FillCircle(scene.Pt(cx+65, y), 4, ColorPositive)
	}

	if f.Playing {
		for i := 0; i < capacitorLines; i++ {
			y := cy - 40 + float64(i)*20
			off := 10 * math.Sin(f.Elapsed+float64(i))

			b.Line(scene.Pt(cx-50+off, y), scene.Pt(cx+50+off, y), ColorField, 2).
				Polygon([]scene.Point{{X: cx + 50 + off, Y: y}, {X: cx + 45 + off, Y: y - 3}, {X: cx + 45 + off, Y: y + 3}}, ColorField)
		}
	}

	formula(b, "C = Q/V = ε₀A/d", fmt.Sprintf("C = %.2f F", Capacitance(p)))
	return b.Commands()
}

func capacitanceReading(p params.Set) Reading {
	return Reading{Label: "C", Value: Capacitance(p), Unit: "F"}
}
