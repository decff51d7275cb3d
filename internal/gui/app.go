package gui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fieldlab/internal/engine"
	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/topics"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(17, 24, 39, 255)
	ColSelect  = rl.NewColor(249, 250, 251, 255)
	ColText    = rl.NewColor(156, 163, 175, 255)
	ColTextDim = rl.NewColor(75, 85, 99, 255)
	ColAccent  = rl.NewColor(59, 130, 246, 255)
	ColPlaying = rl.NewColor(16, 185, 129, 255)
	ColPaused  = rl.NewColor(251, 191, 36, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	sidebar      = 320
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

// Options configures the desktop window.
type Options struct {
	Topic    string
	FPS      int
	Params   map[string]float64
	Autoplay bool
	Logger   *slog.Logger
	Registry *topics.Registry
}

type App struct {
	driver *engine.Driver
	queue  *engine.FrameQueue
	buf    *frameBuffer
	view   *Surface
	font   rl.Font

	topics []topics.Topic
	cursor int
	focus  int
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "fieldlab")
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) {
	initWindow(opts.FPS)
	defer rl.CloseWindow()

	app := NewApp(opts)
	defer app.driver.Detach()
	app.RunLoop()
}

// NewApp wires a driver to a frame buffer. It must be called after the
// window exists because it loads the font.
func NewApp(opts Options) *App {
	if opts.Registry == nil {
		opts.Registry = topics.Default
	}
	q := engine.NewFrameQueue()
	eo := []engine.Option{engine.WithRegistry(opts.Registry)}
	if opts.Logger != nil {
		eo = append(eo, engine.WithLogger(opts.Logger))
	}

	a := &App{
		driver: engine.New(q, eo...),
		queue:  q,
		buf:    &frameBuffer{},
		font:   loadFont(),
		topics: opts.Registry.Topics(),
	}
	a.view = &Surface{Font: a.font, Scale: 1, Width: engine.DefaultWidth, Height: engine.DefaultHeight}
	for i, t := range a.topics {
		if string(t) == opts.Topic {
			a.cursor = i
		}
	}

	a.driver.SelectTopic(opts.Topic)
	a.driver.Attach(a.buf, engine.DefaultWidth, engine.DefaultHeight)
	if len(opts.Params) > 0 {
		a.driver.Apply(opts.Params)
	}
	if opts.Autoplay {
		a.driver.Play()
	}
	return a
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.queue.Fire(time.Now())
		a.Draw()
	}
}

// Update handles input and reports whether the loop should continue.
func (a *App) Update() bool {
	d := a.driver
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		d.Toggle()
	case rl.IsKeyPressed(rl.KeyR):
		d.Reset()
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL):
		a.selectTopic(a.cursor + 1)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH):
		a.selectTopic(a.cursor - 1)
	case rl.IsKeyPressed(rl.KeyTab):
		if n := len(d.Adjustable()); n > 0 {
			a.focus = (a.focus + 1) % n
		}
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressedRepeat(rl.KeyUp):
		a.nudge(1)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressedRepeat(rl.KeyDown):
		a.nudge(-1)
	}
	a.layout()
	return true
}

func (a *App) selectTopic(i int) {
	n := len(a.topics)
	if n == 0 {
		return
	}
	a.cursor = ((i % n) + n) % n
	a.focus = 0
	a.driver.SelectTopic(string(a.topics[a.cursor]))
}

func (a *App) nudge(steps int) {
	ps := a.driver.Adjustable()
	if len(ps) == 0 {
		return
	}
	a.driver.Nudge(string(ps[a.focus%len(ps)].Name), steps)
}

// layout fits the scene into the space left of the sidebar.
func (a *App) layout() {
	w := float32(rl.GetScreenWidth() - sidebar - 60)
	h := float32(rl.GetScreenHeight() - 160)
	sw, sh := a.driver.Size()
	scale := min(w/float32(sw), h/float32(sh))
	if scale <= 0 {
		scale = 0.1
	}
	a.view.Scale = scale
	a.view.Width, a.view.Height = float32(sw), float32(sh)
	a.view.Offset = rl.NewVector2(30, 90)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	scene.Replay(a.view, a.buf.Commands())
	a.DrawHUD()
	a.drawSidebar()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	d := a.driver
	a.drawText("fieldlab", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", d.Entry().Title), 160, 34, 16, ColText)

	status, col := "PAUSED", ColPaused
	switch d.State() {
	case engine.Playing:
		status, col = "PLAYING", ColPlaying
	case engine.Idle:
		status, col = "IDLE", ColTextDim
	}
	a.drawText(status, int32(rl.GetScreenWidth())-130, 30, 16, col)

	bottom := int32(rl.GetScreenHeight()) - 40
	a.drawText(fmt.Sprintf("%d FPS  t=%.1fs", rl.GetFPS(), d.Elapsed()), 30, bottom, 14, ColTextDim)
	a.drawText("[SPACE] PLAY  [R] RESET  [<-/->] TOPIC  [TAB] PARAM  [UP/DOWN] ADJUST  [Q] QUIT",
		int32(rl.GetScreenWidth())-760, bottom, 14, ColTextDim)
}

func (a *App) drawSidebar() {
	d := a.driver
	x := int32(rl.GetScreenWidth() - sidebar)
	y := int32(90)

	a.drawText("TOPICS", x, y, 16, ColTextDim)
	y += 28
	for i, t := range a.topics {
		if i == a.cursor && d.Topic() == t {
			a.drawText("> "+string(t), x, y, 18, ColSelect)
		} else {
			a.drawText("  "+string(t), x, y, 18, ColText)
		}
		y += 24
	}

	ps := d.Adjustable()
	if len(ps) > 0 {
		y += 20
		a.drawText("PARAMETERS", x, y, 16, ColTextDim)
		y += 28
		set := d.Params()
		for i, p := range ps {
			v, _ := set.Get(p.Name)
			col := ColText
			if i == a.focus {
				col = ColSelect
			}
			a.drawText(fmt.Sprintf("%-14s %6.1f %s", p.Label, v, p.Unit), x, y, 16, col)
			a.drawGauge(p, v, x, y+20, i == a.focus)
			y += 44
		}
	}

	if r, ok := d.Reading(); ok {
		y += 16
		a.drawText(fmt.Sprintf("%s %.3g %s", r.Label, r.Value, r.Unit), x, y, 16, ColAccent)
	}
}

func (a *App) drawGauge(p params.Param, v float64, x, y int32, focused bool) {
	const width = 240
	span := p.Domain.Max - p.Domain.Min
	frac := 0.0
	if span > 0 {
		frac = (v - p.Domain.Min) / span
	}
	col := ColTextDim
	if focused {
		col = ColAccent
	}
	rl.DrawRectangle(x, y, width, 6, ColTextDim)
	rl.DrawRectangle(x, y, int32(frac*width), 6, col)
}

func (a *App) drawText(text string, x, y int32, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
