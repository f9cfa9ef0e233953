package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings. The Help().Key labels also feed the block
// titles on the overview screen, so the map is built once and passed by
// reference wherever label text is needed.
type KeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Tab     key.Binding
	Back    key.Binding

	ToggleInfoBar key.Binding
	ToggleFilter  key.Binding
	JumpToFilter  key.Binding

	JumpToNamespaces    key.Binding
	SelectAllNamespaces key.Binding

	CopyName   key.Binding
	ExportJSON key.Binding
	ExportYAML key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		ToggleInfoBar: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle info bar"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "toggle filter"),
		),
		JumpToFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		JumpToNamespaces: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "namespaces"),
		),
		SelectAllNamespaces: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all namespaces"),
		),
		CopyName: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy name"),
		),
		ExportJSON: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export json"),
		),
		ExportYAML: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export yaml"),
		),
	}
}
