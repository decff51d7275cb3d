package viz

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldlab/internal/engine"
)

// styles derived from a Theme
type styles struct {
	title   lipgloss.Style
	accent  lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	panel   lipgloss.Style
	playing lipgloss.Style
	paused  lipgloss.Style
	idle    lipgloss.Style
	cells   map[string]lipgloss.Style
	theme   Theme

	gauge      progress.Model
	gaugeFocus progress.Model
}

func newStyles(t Theme) *styles {
	return &styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		accent: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		playing: lipgloss.NewStyle().Bold(true).Foreground(t.Playing),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Paused),
		idle:    lipgloss.NewStyle().Foreground(t.Idle),
		cells:   make(map[string]lipgloss.Style),
		theme:   t,
		gauge: progress.New(
			progress.WithSolidFill(string(t.Muted)),
			progress.WithoutPercentage(),
			progress.WithWidth(gaugeWidth),
		),
		gaugeFocus: progress.New(
			progress.WithSolidFill(string(t.Accent)),
			progress.WithoutPercentage(),
			progress.WithWidth(gaugeWidth),
		),
	}
}

func (s *styles) status(st engine.State) string {
	switch st {
	case engine.Playing:
		return s.playing.Render("▶ playing")
	case engine.Paused:
		return s.paused.Render("❚❚ paused")
	}
	return s.idle.Render("· idle")
}

func (s *styles) cell(color string) lipgloss.Style {
	if s.theme.Mono != "" {
		color = string(s.theme.Mono)
	}
	st, ok := s.cells[color]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		s.cells[color] = st
	}
	return st
}

// RenderCanvas paints the canvas cell by cell, batching runs of one color.
func (s *styles) RenderCanvas(c *Canvas) string {
	var out strings.Builder
	for row := 0; row < c.Height; row++ {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				out.WriteString(run.String())
			} else {
				out.WriteString(s.cell(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.Width; col++ {
			r := c.Cell(col, row)
			if r == 0 {
				continue
			}
			color := c.Colors[row][col]
			if r == blank {
				color = ""
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(r)
		}
		flush()
		if row < c.Height-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}
