package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the preview chrome. A non-empty Mono paints every canvas cell
// in one color instead of the scene's own palette.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Playing lipgloss.Color
	Paused  lipgloss.Color
	Idle    lipgloss.Color
	Mono    lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:    "slate",
		Title:   lipgloss.Color("#f9fafb"),
		Accent:  lipgloss.Color("#3b82f6"),
		Text:    lipgloss.Color("#e5e7eb"),
		Muted:   lipgloss.Color("#6b7280"),
		Border:  lipgloss.Color("#374151"),
		Playing: lipgloss.Color("#10b981"),
		Paused:  lipgloss.Color("#fbbf24"),
		Idle:    lipgloss.Color("#6b7280"),
	}

	ThemeChalk = Theme{
		Name:    "chalk",
		Title:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#fde68a"),
		Text:    lipgloss.Color("#f3f4f6"),
		Muted:   lipgloss.Color("#9ca3af"),
		Border:  lipgloss.Color("#4b5563"),
		Playing: lipgloss.Color("#a7f3d0"),
		Paused:  lipgloss.Color("#fde68a"),
		Idle:    lipgloss.Color("#9ca3af"),
		Mono:    lipgloss.Color("#f3f4f6"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Title:   lipgloss.Color("#00ff00"), // green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#003300"),
		Playing: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
		Idle:    lipgloss.Color("#005500"),
		Mono:    lipgloss.Color("#00ff00"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		Title:   lipgloss.Color("#111827"),
		Accent:  lipgloss.Color("#1d4ed8"),
		Text:    lipgloss.Color("#1f2937"),
		Muted:   lipgloss.Color("#6b7280"),
		Border:  lipgloss.Color("#d1d5db"),
		Playing: lipgloss.Color("#047857"),
		Paused:  lipgloss.Color("#b45309"),
		Idle:    lipgloss.Color("#6b7280"),
	}

	Themes = []Theme{ThemeSlate, ThemeChalk, ThemePhosphor, ThemePaper}
)

// GetTheme returns a theme by name, falling back to slate.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// NextTheme cycles through Themes.
func NextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
