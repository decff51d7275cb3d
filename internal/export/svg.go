package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/fieldlab/internal/scene"
)

// SVG is a scene.Surface that accumulates SVG elements.
type SVG struct {
	width, height float64
	sb            strings.Builder
}

func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height}
}

// RenderSVG replays cmds onto a fresh document and returns it.
func RenderSVG(cmds []scene.Command, width, height float64) string {
	s := NewSVG(width, height)
	scene.Replay(s, cmds)
	return s.String()
}

func (s *SVG) Clear(bg scene.Color) {
	s.sb.Reset()
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", bg)
}

func (s *SVG) FillCircle(c scene.Point, r float64, fill scene.Color) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", c.X, c.Y, r, fill)
}

func (s *SVG) StrokeCircle(c scene.Point, r float64, stroke scene.Color, width float64) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		c.X, c.Y, r, stroke, width)
}

func (s *SVG) FillRect(x, y, w, h float64, fill scene.Color) {
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n", x, y, w, h, fill)
}

func (s *SVG) StrokeRect(x, y, w, h float64, stroke scene.Color, width float64) {
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		x, y, w, h, stroke, width)
}

func (s *SVG) Line(from, to scene.Point, stroke scene.Color, width float64) {
	fmt.Fprintf(&s.sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%g"/>`+"\n",
		from.X, from.Y, to.X, to.Y, stroke, width)
}

func (s *SVG) Polyline(pts []scene.Point, stroke scene.Color, width float64) {
	fmt.Fprintf(&s.sb, `<path fill="none" stroke="%s" stroke-width="%g" d="%s"/>`+"\n", stroke, width, pathData(pts, false))
}

func (s *SVG) FillPolygon(pts []scene.Point, fill scene.Color) {
	fmt.Fprintf(&s.sb, `<path fill="%s" d="%s"/>`+"\n", fill, pathData(pts, true))
}

func (s *SVG) Text(at scene.Point, text string, size float64, align scene.Align, fill scene.Color) {
	anchor := "start"
	if align == scene.AlignCenter {
		anchor = "middle"
	}
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" font-family="Arial, sans-serif" font-size="%g" text-anchor="%s" fill="%s">%s</text>`+"\n",
		at.X, at.Y, size, anchor, fill, html.EscapeString(text))
}

func (s *SVG) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.width, s.height, s.width, s.height)
	out.WriteString(s.sb.String())
	out.WriteString("</svg>\n")
	return out.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func pathData(pts []scene.Point, closed bool) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}
