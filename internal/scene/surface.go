package scene

// Surface is the abstract 2D context a host renders into. Any concrete
// canvas API (terminal raster, SVG, GPU window) can satisfy it.
type Surface interface {
	Clear(bg Color)
	FillCircle(c Point, r float64, fill Color)
	StrokeCircle(c Point, r float64, stroke Color, width float64)
	FillRect(x, y, w, h float64, fill Color)
	StrokeRect(x, y, w, h float64, stroke Color, width float64)
	Line(from, to Point, stroke Color, width float64)
	Polyline(pts []Point, stroke Color, width float64)
	FillPolygon(pts []Point, fill Color)
	Text(at Point, s string, size float64, align Align, fill Color)
}

// Replay draws cmds onto s in order. Commands with too few points are skipped.
func Replay(s Surface, cmds []Command) {
	if s == nil {
		return
	}
	for _, c := range cmds {
		switch c.Kind {
		case KindClear:
			s.Clear(c.Fill)
		case KindCircle:
			if len(c.Points) < 1 {
				continue
			}
			if c.Fill != "" {
				s.FillCircle(c.Points[0], c.Radius, c.Fill)
			} else {
				s.StrokeCircle(c.Points[0], c.Radius, c.Stroke, c.LineWidth)
			}
		case KindRect:
			if len(c.Points) < 1 {
				continue
			}
			p := c.Points[0]
			if c.Fill != "" {
				s.FillRect(p.X, p.Y, c.W, c.H, c.Fill)
			} else {
				s.StrokeRect(p.X, p.Y, c.W, c.H, c.Stroke, c.LineWidth)
			}
		case KindLine:
			if len(c.Points) < 2 {
				continue
			}
			s.Line(c.Points[0], c.Points[1], c.Stroke, c.LineWidth)
		case KindPolyline:
			if len(c.Points) < 2 {
				continue
			}
			s.Polyline(c.Points, c.Stroke, c.LineWidth)
		case KindPolygon:
			if len(c.Points) < 3 {
				continue
			}
			s.FillPolygon(c.Points, c.Fill)
		case KindText:
			if len(c.Points) < 1 {
				continue
			}
			s.Text(c.Points[0], c.Text, c.Size, c.Align, c.Fill)
		}
	}
}

// Recorder is a Surface that keeps every call as a Command. Replaying a
// command list into a Recorder reproduces the list.
type Recorder struct {
	cmds []Command
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Commands() []Command { return r.cmds }
func (r *Recorder) Reset()              { r.cmds = r.cmds[:0] }
func (r *Recorder) Len() int            { return len(r.cmds) }

func (r *Recorder) Clear(bg Color) {
	r.cmds = append(r.cmds, Command{Kind: KindClear, Fill: bg})
}

func (r *Recorder) FillCircle(c Point, rad float64, fill Color) {
	r.cmds = append(r.cmds, Command{Kind: KindCircle, Points: []Point{c}, Radius: rad, Fill: fill})
}

func (r *Recorder) StrokeCircle(c Point, rad float64, stroke Color, width float64) {
	r.cmds = append(r.cmds, Command{Kind: KindCircle, Points: []Point{c}, Radius: rad, Stroke: stroke, LineWidth: width})
}

func (r *Recorder) FillRect(x, y, w, h float64, fill Color) {
	r.cmds = append(r.cmds, Command{Kind: KindRect, Points: []Point{{x, y}}, W: w, H: h, Fill: fill})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, stroke Color, width float64) {
	r.cmds = append(r.cmds, Command{Kind: KindRect, Points: []Point{{x, y}}, W: w, H: h, Stroke: stroke, LineWidth: width})
}

func (r *Recorder) Line(from, to Point, stroke Color, width float64) {
	r.cmds = append(r.cmds, Command{Kind: KindLine, Points: []Point{from, to}, Stroke: stroke, LineWidth: width})
}

func (r *Recorder) Polyline(pts []Point, stroke Color, width float64) {
	r.cmds = append(r.cmds, Command{Kind: KindPolyline, Points: clonePoints(pts), Stroke: stroke, LineWidth: width})
}

func (r *Recorder) FillPolygon(pts []Point, fill Color) {
	r.cmds = append(r.cmds, Command{Kind: KindPolygon, Points: clonePoints(pts), Fill: fill})
}

func (r *Recorder) Text(at Point, s string, size float64, align Align, fill Color) {
	r.cmds = append(r.cmds, Command{Kind: KindText, Points: []Point{at}, Text: s, Size: size, Align: align, Fill: fill})
}
