package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the gallery's keyboard shortcuts. Editor bindings only apply
// while the JSON editor has focus.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Click    key.Binding
	Code     key.Binding
	Edit     key.Binding
	Apply    key.Binding
	Leave    key.Binding
	Reset    key.Binding
	Copy     key.Binding
	Language key.Binding
	Dark     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "click"),
		),
		Code: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle code"),
		),
		Edit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit props"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply JSON"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave editor"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset props"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy markup"),
		),
		Language: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle language"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dark"),
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

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Click, k.Code, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Click, k.Reset},
		{k.Code, k.Edit, k.Apply, k.Leave, k.Copy},
		{k.Language, k.Dark, k.Help, k.Quit},
	}
}

// editorKeyMap is shown while the JSON editor has focus.
type editorKeyMap struct {
	KeyMap
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Leave, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
