package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/fieldlab/internal/engine"
	"github.com/san-kum/fieldlab/internal/topics"
)

// AnimateConfig controls an offline render of a playing topic.
type AnimateConfig struct {
	Topic    string
	Frames   int
	FPS      int
	Width    float64
	Height   float64
	Params   map[string]float64
	Registry *topics.Registry
	Logger   *slog.Logger
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

// Animate plays cfg.Topic through a FrameQueue with a synthetic clock, so
// frame i is rendered at exactly i/FPS seconds, and hands every frame to
// sink.
func Animate(ctx context.Context, cfg AnimateConfig, sink func(i int, doc *SVG) error) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = engine.DefaultWidth, engine.DefaultHeight
	}
	if cfg.Registry == nil {
		cfg.Registry = topics.Default
	}

	start := time.Unix(0, 0)
	q := engine.NewFrameQueue()
	opts := []engine.Option{
		engine.WithRegistry(cfg.Registry),
		engine.WithClock(fixedClock(start)),
		engine.WithSize(cfg.Width, cfg.Height),
	}
	if cfg.Logger != nil {
		opts = append(opts, engine.WithLogger(cfg.Logger))
	}
	d := engine.New(q, opts...)
	d.SelectTopic(cfg.Topic)

	doc := NewSVG(cfg.Width, cfg.Height)
	d.Attach(doc, cfg.Width, cfg.Height)
	defer d.Detach()
	if len(cfg.Params) > 0 {
		d.Apply(cfg.Params)
	}
	d.Play()

	step := time.Second / time.Duration(cfg.FPS)
	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if q.Fire(start.Add(time.Duration(i)*step)) == 0 {
			return fmt.Errorf("frame %d: no frame pending", i)
		}
		if err := sink(i, doc); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// DirSink writes frames as <dir>/<prefix>_0000.svg, creating dir if needed.
func DirSink(dir, prefix string) (func(int, *SVG) error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return func(i int, doc *SVG) error {
		name := filepath.Join(dir, fmt.Sprintf("%s_%04d.svg", prefix, i))
		return os.WriteFile(name, []byte(doc.String()), 0o644)
	}, nil
}
