package scene

import "fmt"

type Kind uint8

const (
	KindClear Kind = iota
	KindCircle
	KindRect
	KindLine
	KindPolyline
	KindPolygon
	KindText
)

var kindNames = [...]string{"clear", "circle", "rect", "line", "polyline", "polygon", "text"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Color is a CSS hex color such as "#ef4444".
type Color string

// RGB decodes the color. Malformed values decode to white.
func (c Color) RGB() (r, g, b uint8) {
	s := string(c)
	if len(s) == 7 && s[0] == '#' {
		var v uint32
		if _, err := fmt.Sscanf(s[1:], "%06x", &v); err == nil {
			return uint8(v >> 16), uint8(v >> 8), uint8(v)
		}
	}
	return 255, 255, 255
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Command is one drawing instruction. Which fields are meaningful depends on
// Kind: circles use Points[0] and Radius, rects use Points[0] as the top-left
// corner plus W and H, text uses Points[0] as the baseline anchor.
// A shape with a Fill color is filled, otherwise it is stroked.
type Command struct {
	Kind      Kind    `json:"kind"`
	Points    []Point `json:"points,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	W         float64 `json:"w,omitempty"`
	H         float64 `json:"h,omitempty"`
	Text      string  `json:"text,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Align     Align   `json:"align,omitempty"`
	Fill      Color   `json:"fill,omitempty"`
	Stroke    Color   `json:"stroke,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
}

func (c Command) String() string {
	switch c.Kind {
	case KindText:
		return fmt.Sprintf("text %q at (%.1f,%.1f) %s %.0fpx %s", c.Text, c.Points[0].X, c.Points[0].Y, c.Align, c.Size, c.Fill)
	case KindCircle:
		return fmt.Sprintf("circle (%.1f,%.1f) r=%.1f %s", c.Points[0].X, c.Points[0].Y, c.Radius, c.paint())
	case KindRect:
		return fmt.Sprintf("rect (%.1f,%.1f) %.1fx%.1f %s", c.Points[0].X, c.Points[0].Y, c.W, c.H, c.paint())
	case KindClear:
		return fmt.Sprintf("clear %s", c.Fill)
	default:
		return fmt.Sprintf("%s %d points %s", c.Kind, len(c.Points), c.paint())
	}
}

func (c Command) paint() string {
	if c.Fill != "" {
		return "fill " + string(c.Fill)
	}
	return fmt.Sprintf("stroke %s w=%.0f", c.Stroke, c.LineWidth)
}
