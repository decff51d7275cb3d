package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play      key.Binding
	Reset     key.Binding
	NextTopic key.Binding
	PrevTopic key.Binding
	NextParam key.Binding
	Up        key.Binding
	Down      key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Play:      key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		NextTopic: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next topic")),
		PrevTopic: key.NewBinding(key.WithKeys("left", "h", "b"), key.WithHelp("←/h", "prev topic")),
		NextParam: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next param")),
		Up:        key.NewBinding(key.WithKeys("up", "k", "+"), key.WithHelp("↑/k", "increase")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "-"), key.WithHelp("↓/j", "decrease")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.NextTopic, k.NextParam, k.Up, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset, k.Theme},
		{k.NextTopic, k.PrevTopic},
		{k.NextParam, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
