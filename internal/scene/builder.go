package scene

// Builder accumulates the commands of a single frame.
type Builder struct {
	cmds []Command
}

func NewBuilder() *Builder {
	return &Builder{cmds: make([]Command, 0, 32)}
}

func (b *Builder) Clear(bg Color) *Builder {
	return b.add(Command{Kind: KindClear, Fill: bg})
}

func (b *Builder) FillCircle(c Point, r float64, fill Color) *Builder {
	return b.add(Command{Kind: KindCircle, Points: []Point{c}, Radius: r, Fill: fill})
}

func (b *Builder) StrokeCircle(c Point, r float64, stroke Color, width float64) *Builder {
	return b.add(Command{Kind: KindCircle, Points: []Point{c}, Radius: r, Stroke: stroke, LineWidth: width})
}

func (b *Builder) FillRect(x, y, w, h float64, fill Color) *Builder {
	return b.add(Command{Kind: KindRect, Points: []Point{{x, y}}, W: w, H: h, Fill: fill})
}

func (b *Builder) StrokeRect(x, y, w, h float64, stroke Color, width float64) *Builder {
	return b.add(Command{Kind: KindRect, Points: []Point{{x, y}}, W: w, H: h, Stroke: stroke, LineWidth: width})
}

func (b *Builder) Line(from, to Point, stroke Color, width float64) *Builder {
	return b.add(Command{Kind: KindLine, Points: []Point{from, to}, Stroke: stroke, LineWidth: width})
}

func (b *Builder) Polyline(pts []Point, stroke Color, width float64) *Builder {
	if len(pts) < 2 {
		return b
	}
	return b.add(Command{Kind: KindPolyline, Points: clonePoints(pts), Stroke: stroke, LineWidth: width})
}

// Polygon adds a closed filled path.
func (b *Builder) Polygon(pts []Point, fill Color) *Builder {
	if len(pts) < 3 {
		return b
	}
	return b.add(Command{Kind: KindPolygon, Points: clonePoints(pts), Fill: fill})
}

func (b *Builder) Text(at Point, s string, size float64, align Align, fill Color) *Builder {
	return b.add(Command{Kind: KindText, Points: []Point{at}, Text: s, Size: size, Align: align, Fill: fill})
}

func (b *Builder) Commands() []Command { return b.cmds }

func (b *Builder) add(c Command) *Builder {
	b.cmds = append(b.cmds, c)
	return b
}

func clonePoints(pts []Point) []Point {
	c := make([]Point, len(pts))
	copy(c, pts)
	return c
}
