package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding

	// Form
	NextField  key.Binding
	PrevField  key.Binding
	ToggleType key.Binding
	Submit     key.Binding

	// Result
	CopyCommand key.Binding
	CopyResult  key.Binding
	Another     key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("left", "right", " "),
			key.WithHelp("←/→", "log type"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert"),
		),

		CopyCommand: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy grep command"),
		),
		CopyResult: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy conversion result"),
		),
		Another: key.NewBinding(
			key.WithKeys("n", "esc", "escape"),
			key.WithHelp("n/esc", "convert another"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// formHelp exposes the form bindings to bubbles/help.
type formHelp struct{ KeyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.NextField, h.ToggleType, h.Submit, h.ForceQuit}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.NextField, h.PrevField},
		{h.ToggleType, h.Submit, h.ForceQuit},
	}
}

// resultHelp exposes the result bindings to bubbles/help.
type resultHelp struct{ KeyMap }

func (h resultHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.CopyCommand, h.CopyResult, h.Another, h.Quit}
}

func (h resultHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.CopyCommand, h.CopyResult, h.Another},
		{h.Up, h.Down, h.PageUp, h.PageDown, h.Quit},
	}
}
