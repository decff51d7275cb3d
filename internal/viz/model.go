package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldlab/internal/engine"
	"github.com/san-kum/fieldlab/internal/metrics"
	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/topics"
)

const (
	sidebarWidth = 34
	gaugeWidth   = 20
	gaugeFPS     = 60

	minCols = 24
	minRows = 8
)

// Options configures a preview Model.
type Options struct {
	Topic    string
	Theme    string
	FPS      int
	Width    float64
	Height   float64
	Params   map[string]float64
	Autoplay bool
	Logger   *slog.Logger
	Registry *topics.Registry
}

type gaugeMsg struct{}

type gauge struct {
	pos, vel, target float64
}

// Model is the terminal preview: a braille raster driven by the engine,
// with a topic list and eased parameter gauges beside it.
type Model struct {
	driver *engine.Driver
	sched  *TeaScheduler
	raster *Raster
	styles *styles
	keys   keyMap
	help   help.Model

	topics []topics.Topic
	cursor int
	focus  int

	rate     *metrics.FrameRate
	spring   harmonica.Spring
	gauges   map[params.Name]*gauge
	easing   bool
	cols     int
	rows     int
	quitting bool
}

func NewModel(opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = engine.DefaultWidth, engine.DefaultHeight
	}
	if opts.Registry == nil {
		opts.Registry = topics.Default
	}

	sched := NewTeaScheduler(opts.FPS)
	engineOpts := []engine.Option{
		engine.WithRegistry(opts.Registry),
		engine.WithSize(opts.Width, opts.Height),
	}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(opts.Logger))
	}
	d := engine.New(sched, engineOpts...)

	m := Model{
		driver: d,
		sched:  sched,
		raster: NewRaster(NewCanvas(64, 16), opts.Width, opts.Height),
		styles: newStyles(GetTheme(opts.Theme)),
		keys:   defaultKeys(),
		help:   help.New(),
		topics: opts.Registry.Topics(),
		rate:   metrics.NewFrameRate(30),
		spring: harmonica.NewSpring(harmonica.FPS(gaugeFPS), 6.0, 0.8),
		gauges: make(map[params.Name]*gauge),
		cols:   64,
		rows:   16,
	}
	for i, t := range m.topics {
		if string(t) == opts.Topic {
			m.cursor = i
		}
	}

	d.SelectTopic(opts.Topic)
	d.Attach(m.raster, opts.Width, opts.Height)
	if len(opts.Params) > 0 {
		d.Apply(opts.Params)
	}
	if opts.Autoplay {
		d.Play()
	}
	m.snapGauges()
	return m
}

func (m Model) Driver() *engine.Driver { return m.driver }
func (m Model) Canvas() *Canvas        { return m.raster.Canvas() }

func (m Model) Init() tea.Cmd { return m.sched.Cmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if m.driver.State() == engine.Playing {
			m.rate.Observe(time.Time(msg))
		} else {
			m.rate.Reset()
		}
		return m, m.sched.Deliver(msg)

	case gaugeMsg:
		if m.stepGauges() {
			return m, gaugeTick()
		}
		m.easing = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.driver
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		d.Detach()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Play):
		d.Toggle()
		return m, m.sched.Cmd()

	case key.Matches(msg, m.keys.Reset):
		d.Reset()
		return m, m.retarget()

	case key.Matches(msg, m.keys.NextTopic):
		return m, m.selectTopic(m.cursor + 1)

	case key.Matches(msg, m.keys.PrevTopic):
		return m, m.selectTopic(m.cursor - 1)

	case key.Matches(msg, m.keys.NextParam):
		if n := len(d.Adjustable()); n > 0 {
			m.focus = (m.focus + 1) % n
		}

	case key.Matches(msg, m.keys.Up):
		return m, m.nudge(1)

	case key.Matches(msg, m.keys.Down):
		return m, m.nudge(-1)

	case key.Matches(msg, m.keys.Theme):
		m.styles = newStyles(NextTheme(m.styles.theme))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) selectTopic(i int) tea.Cmd {
	n := len(m.topics)
	if n == 0 {
		return nil
	}
	m.cursor = ((i % n) + n) % n
	m.focus = 0
	m.driver.SelectTopic(string(m.topics[m.cursor]))
	return tea.Batch(m.sched.Cmd(), m.retarget())
}

func (m *Model) nudge(steps int) tea.Cmd {
	ps := m.driver.Adjustable()
	if len(ps) == 0 {
		return nil
	}
	if !m.driver.Nudge(string(ps[m.focus%len(ps)].Name), steps) {
		return nil
	}
	return m.retarget()
}

func (m *Model) resize(w, h int) {
	cols := w - sidebarWidth - 6
	rows := h - 6
	if m.help.ShowAll {
		rows -= 3
	}
	cols = max(cols, minCols)
	rows = max(rows, minRows)
	m.help.Width = w
	if cols == m.cols && rows == m.rows {
		return
	}
	m.cols, m.rows = cols, rows

	m.raster.canvas = NewCanvas(cols, rows)
	sw, sh := m.driver.Size()
	m.raster.Resize(sw, sh)
	m.driver.Resize(sw, sh)
}

// gauge easing

func gaugeTick() tea.Cmd {
	return tea.Tick(time.Second/gaugeFPS, func(_ time.Time) tea.Msg { return gaugeMsg{} })
}

func fraction(p params.Param, v float64) float64 {
	span := p.Domain.Max - p.Domain.Min
	if span == 0 {
		return 0
	}
	return (p.Domain.Clamp(v) - p.Domain.Min) / span
}

func (m *Model) snapGauges() {
	set := m.driver.Params()
	for _, p := range m.driver.Adjustable() {
		v, _ := set.Get(p.Name)
		f := fraction(p, v)
		m.gauges[p.Name] = &gauge{pos: f, target: f}
	}
}

// retarget points every visible gauge at its parameter's current value and
// starts the easing tick if it is not already running.
func (m *Model) retarget() tea.Cmd {
	set := m.driver.Params()
	for _, p := range m.driver.Adjustable() {
		v, _ := set.Get(p.Name)
		g, ok := m.gauges[p.Name]
		if !ok {
			g = &gauge{pos: 0}
			m.gauges[p.Name] = g
		}
		g.target = fraction(p, v)
	}
	if m.easing {
		return nil
	}
	m.easing = true
	return gaugeTick()
}

// stepGauges advances the springs and reports whether any is still moving.
func (m *Model) stepGauges() bool {
	moving := false
	for _, g := range m.gauges {
		g.pos, g.vel = m.spring.Update(g.pos, g.vel, g.target)
		if math.Abs(g.pos-g.target) > 1e-3 || math.Abs(g.vel) > 1e-3 {
			moving = true
		} else {
			g.pos, g.vel = g.target, 0
		}
	}
	return moving
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	d := m.driver

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.title.Render("fieldlab"),
		s.muted.Render("  ·  "),
		s.accent.Render(d.Entry().Title),
		s.muted.Render("  "),
		s.status(d.State()),
		s.muted.Render(fmt.Sprintf("  t=%.1fs  %.0f fps", d.Elapsed(), m.rate.Value())),
	)

	view := s.panel.Render(s.RenderCanvas(m.raster.Canvas()))
	side := s.panel.Width(sidebarWidth).Render(m.sidebar())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, view, side),
		m.help.View(m.keys),
	)
}

func (m Model) sidebar() string {
	s := m.styles
	d := m.driver
	var b strings.Builder

	b.WriteString(s.title.Render("Topics"))
	b.WriteString("\n")
	for i, t := range m.topics {
		if i == m.cursor && d.Topic() == t {
			b.WriteString(s.accent.Render("› " + string(t)))
		} else {
			b.WriteString(s.muted.Render("  " + string(t)))
		}
		b.WriteString("\n")
	}

	ps := d.Adjustable()
	if len(ps) > 0 {
		b.WriteString("\n")
		b.WriteString(s.title.Render("Parameters"))
		b.WriteString("\n")
		set := d.Params()
		for i, p := range ps {
			v, _ := set.Get(p.Name)
			label := fmt.Sprintf("%s %s %s", p.Label, formatValue(v), p.Unit)
			pos := 0.0
			if g, ok := m.gauges[p.Name]; ok {
				pos = g.pos
			}
			if i == m.focus {
				b.WriteString(s.accent.Render("› "+label) + "\n  " + s.gaugeFocus.ViewAs(pos))
			} else {
				b.WriteString(s.text.Render("  "+label) + "\n  " + s.gauge.ViewAs(pos))
			}
			b.WriteString("\n")
		}
	}

	if r, ok := d.Reading(); ok {
		b.WriteString("\n")
		b.WriteString(s.muted.Render(r.Label+" ") + s.text.Render(formatValue(r.Value)+" "+r.Unit))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatValue(v float64) string {
	switch a := math.Abs(v); {
	case a != 0 && (a >= 1e6 || a < 1e-3):
		return fmt.Sprintf("%.3g", v)
	case a == math.Trunc(a):
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
