package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldlab/internal/config"
	"github.com/san-kum/fieldlab/internal/engine"
	"github.com/san-kum/fieldlab/internal/export"
	"github.com/san-kum/fieldlab/internal/gui"
	"github.com/san-kum/fieldlab/internal/logger"
	"github.com/san-kum/fieldlab/internal/topics"
	"github.com/san-kum/fieldlab/internal/viz"
)

// newLogger writes to --log-file when given, otherwise to fallback.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	if logFile == "" {
		return logger.New(cfg.LogLevel, fallback), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.New(cfg.LogLevel, f), func() { f.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	// the terminal belongs to bubbletea
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m := viz.NewModel(viz.Options{
		Topic:    cfg.Topic,
		Theme:    cfg.Theme,
		FPS:      cfg.FPS,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Params:   cfg.InitialParams(),
		Autoplay: cfg.Autoplay || autoplay,
		Logger:   log,
	})
	log.Info("starting preview", "topic", cfg.Topic, "theme", cfg.Theme)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("opening window", "topic", cfg.Topic)
	gui.Run(gui.Options{
		Topic:    cfg.Topic,
		FPS:      cfg.FPS,
		Params:   cfg.InitialParams(),
		Autoplay: cfg.Autoplay || autoplay,
		Logger:   log,
	})
	return nil
}

func listTopics(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tTITLE\tPARAMETERS")
	for _, t := range topics.Default.Topics() {
		e := topics.Lookup(string(t))
		var ps []string
		for _, p := range e.Params {
			ps = append(ps, fmt.Sprintf("%s[%g..%g]", p.Name, p.Domain.Min, p.Domain.Max))
		}
		if len(ps) == 0 {
			ps = []string{"-"}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t, e.Title, strings.Join(ps, " "))
	}
	return w.Flush()
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	d := engine.New(engine.NewFrameQueue(), engine.WithSize(cfg.Width, cfg.Height), engine.WithLogger(log))
	d.SelectTopic(cfg.Topic)
	initial := cfg.InitialParams()
	if n := d.Apply(initial); n < len(initial) {
		log.Warn("some parameters were ignored", "topic", d.Topic(), "accepted", n, "given", len(initial))
	}

	cmds := d.FrameAt(time.Duration(at * float64(time.Second)))
	if paused {
		e := d.Entry()
		cmds = e.Render(topics.Frame{Width: cfg.Width, Height: cfg.Height, Elapsed: at}, d.Params())
	}

	out := cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "text":
		return export.WriteText(out, cmds)
	case "svg":
		_, err := io.WriteString(out, export.RenderSVG(cmds, cfg.Width, cfg.Height))
		return err
	case "json":
		doc := export.FrameDoc{
			Topic:    d.Topic(),
			Title:    d.Entry().Title,
			Elapsed:  at,
			Playing:  !paused,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Params:   d.Params(),
			Commands: cmds,
		}
		if r, ok := d.Reading(); ok {
			doc.Reading = &r
		}
		return export.WriteJSON(out, doc)
	}
	return fmt.Errorf("unknown format %q (want text, json or svg)", format)
}

func animate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sink, err := export.DirSink(outDir, cfg.Topic)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = export.Animate(ctx, export.AnimateConfig{
		Topic:  cfg.Topic,
		Frames: frames,
		FPS:    fps,
		Width:  cfg.Width,
		Height: cfg.Height,
		Params: cfg.InitialParams(),
		Logger: log,
	}, sink)
	if err != nil {
		return fmt.Errorf("animate %s: %w", cfg.Topic, err)
	}
	log.Info("frames written", "dir", outDir, "frames", frames, "took", time.Since(start))
	return nil
}

func sweepParam(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[:1])
	if err != nil {
		return err
	}

	res, err := sweep(topics.Lookup(cfg.Topic), args[1], points, cfg.InitialParams())
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s (%s) vs %s [%g..%g %s]",
		res.Reading.Label, res.Reading.Unit, res.Param.Label, res.Param.Domain.Min, res.Param.Domain.Max, res.Param.Unit)
	graph := asciigraph.Plot(res.Values,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for topic: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Fprintf(out, "  %-14s %v\n", p, config.GetPreset(args[0], p))
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err == nil {
		return fmt.Errorf("%s already exists", args[0])
	}
	if err := config.Save(args[0], config.DefaultConfig()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
