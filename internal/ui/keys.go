package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap feeds the bubbles help footer. Selection gestures that have no
// single key (drag, shift-click) are documented in the '?' overlay instead.
type keyMap struct {
	Move    key.Binding
	Extend  key.Binding
	Select  key.Binding
	Clear   key.Binding
	Search  key.Binding
	Goto    key.Binding
	Mode    key.Binding
	Numbers key.Binding
	Export  key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("↑↓←→", "move"),
		),
		Extend: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+↑↓←→", "extend"),
		),
		Select: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "goto"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		Numbers: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "row numbers"),
		),
		Export: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "export"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Search, k.Mode, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Extend, k.Select, k.Clear},
		{k.Search, k.Goto, k.Mode, k.Numbers},
		{k.Export, k.Reload, k.Help, k.Quit},
	}
}
