package topics

import (
	"math"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

const fieldLines = 8

func drawElectricField(f Frame, p params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	b.FillCircle(scene.Pt(cx, cy), 15, ColorPositive).
		Text(scene.Pt(cx, cy+4), "+Q", 14, scene.AlignCenter, ColorText)

	base := 100 * p.FieldStrength
	for i := 0; i < fieldLines; i++ {
		angle := float64(i) / fieldLines * 2 * math.Pi
		endR := base
		if f.Playing {
			endR += 20 * math.Sin(f.Elapsed+float64(i))
		}

		start := scene.Pt(cx+25*math.Cos(angle), cy+25*math.Sin(angle))
		end := scene.Pt(cx+endR*math.Cos(angle), cy+endR*math.Sin(angle))

		b.Line(start, end, ColorNegative, 2).Polygon([]scene.Point{
			end,
			{X: end.X - 8*math.Cos(angle-0.3), Y: end.Y - 8*math.Sin(angle-0.3)},
			{X: end.X - 8*math.Cos(angle+0.3), Y: end.Y - 8*math.Sin(angle+0.3)},
		}, ColorNegative)
	}

	formula(b, "E = kQ/r²", "Field lines show direction and strength")
	return b.Commands()
}
