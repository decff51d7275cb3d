package topics

import (
	"fmt"
	"strconv"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

// drawOhmsLaw renders a static circuit annotated with the live V, I, R and
// dissipated power.
func drawOhmsLaw(f Frame, p params.Set) []scene.Command {
	cx, cy := f.center()
	b := scene.NewBuilder().Clear(ColorBackground)

	b.StrokeRect(cx-100, cy-60, 200, 120, ColorText, 3)

	b.FillRect(cx-110, cy-15, 20, 30, ColorPositive).
		Text(scene.Pt(cx-100, cy+5), "V", 12, scene.AlignCenter, ColorText)

	ry := cy - 60
	for i := 0; i < 6; i++ {
		x := cx - 60 + float64(i)*20
		peak := ry - 10
		if i%2 != 0 {
			peak = ry + 10
		}
		b.Polyline([]scene.Point{{X: x, Y: ry}, {X: x + 10, Y: peak}, {X: x + 20, Y: ry}}, ColorText, 3)
	}

	b.Polygon([]scene.Point{{X: cx + 120, Y: cy}, {X: cx + 110, Y: cy - 5}, {X: cx + 110, Y: cy + 5}}, ColorCurrent).
		Text(scene.Pt(cx+125, cy+5), "I", 14, scene.AlignLeft, ColorText)

	b.Text(scene.Pt(cx, cy-100), "V = "+num(p.Voltage)+"V", 16, scene.AlignCenter, ColorText).
		Text(scene.Pt(cx, cy+100), "I = "+num(p.Current)+"A", 16, scene.AlignCenter, ColorText).
		Text(scene.Pt(cx, cy+120), "R = "+num(p.Resistance)+"Ω", 16, scene.AlignCenter, ColorText)

	formula(b, "V = IR", fmt.Sprintf("Power P = VI = %.1fW", Power(p)))
	return b.Commands()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func powerReading(p params.Set) Reading {
	return Reading{Label: "P", Value: Power(p), Unit: "W"}
}
