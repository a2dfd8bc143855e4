package ui

import "github.com/charmbracelet/bubbles/key"

// watchKeys are the dashboard key bindings
type watchKeys struct {
	EndDay  key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

func newWatchKeys() watchKeys {
	return watchKeys{
		EndDay: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end day"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k watchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.EndDay, k.Quit}
}

// FullHelp implements help.KeyMap
func (k watchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
