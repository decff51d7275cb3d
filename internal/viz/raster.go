package viz

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/fieldlab/internal/scene"
)

const pi = math.Pi

func sin(a float64) float64 { return math.Sin(a) }
func cos(a float64) float64 { return math.Cos(a) }
func round(v float64) int   { return int(math.Round(v)) }

// Raster adapts a braille Canvas to scene.Surface, scaling surface pixels
// onto the canvas dots.
type Raster struct {
	canvas *Canvas
	sx, sy float64
}

// NewRaster maps a surface of width x height pixels onto canvas.
func NewRaster(canvas *Canvas, width, height float64) *Raster {
	r := &Raster{canvas: canvas}
	r.Resize(width, height)
	return r
}

func (r *Raster) Resize(width, height float64) {
	r.sx = float64(r.canvas.DotsWide()) / width
	r.sy = float64(r.canvas.DotsHigh()) / height
}

func (r *Raster) Canvas() *Canvas { return r.canvas }

func (r *Raster) dot(p scene.Point) (float64, float64) { return p.X * r.sx, p.Y * r.sy }

func (r *Raster) Clear(scene.Color) { r.canvas.Clear() }

func (r *Raster) FillCircle(c scene.Point, rad float64, fill scene.Color) {
	x, y := r.dot(c)
	r.canvas.FillEllipse(x, y, rad*r.sx, rad*r.sy, string(fill))
}

func (r *Raster) StrokeCircle(c scene.Point, rad float64, stroke scene.Color, _ float64) {
	x, y := r.dot(c)
	r.canvas.Ellipse(x, y, rad*r.sx, rad*r.sy, string(stroke))
}

func (r *Raster) FillRect(x, y, w, h float64, fill scene.Color) {
	x0, y0 := r.dot(scene.Pt(x, y))
	x1, y1 := r.dot(scene.Pt(x+w, y+h))
	r.canvas.FillRect(round(x0), round(y0), round(x1), round(y1), string(fill))
}

func (r *Raster) StrokeRect(x, y, w, h float64, stroke scene.Color, width float64) {
	r.Polyline([]scene.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}, {X: x, Y: y}}, stroke, width)
}

func (r *Raster) Line(from, to scene.Point, stroke scene.Color, _ float64) {
	x0, y0 := r.dot(from)
	x1, y1 := r.dot(to)
	r.canvas.DrawLine(round(x0), round(y0), round(x1), round(y1), string(stroke))
}

func (r *Raster) Polyline(pts []scene.Point, stroke scene.Color, width float64) {
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1], pts[i], stroke, width)
	}
}

func (r *Raster) FillPolygon(pts []scene.Point, fill scene.Color) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = r.dot(p)
	}
	r.canvas.FillPolygon(xs, ys, string(fill))
}

// Text anchors on the baseline: the glyph row is the cell holding the
// point just above it.
func (r *Raster) Text(at scene.Point, s string, _ float64, align scene.Align, fill scene.Color) {
	x, y := r.dot(at)
	col := int(x / 2)
	row := int((y - 1) / 4)
	if align == scene.AlignCenter {
		col -= runewidth.StringWidth(s) / 2
	}
	r.canvas.PutText(col, row, s, string(fill))
}
