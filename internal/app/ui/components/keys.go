package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer key bindings
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	First        key.Binding
	Last         key.Binding
	ExcludeEvent key.Binding
	IncludeEvent key.Binding
	ExcludeUser  key.Binding
	IncludeUser  key.Binding
	Reset        key.Binding
	Orientation  key.Binding
	Grow         key.Binding
	Shrink       key.Binding
	Format       key.Binding
	Copy         key.Binding
	DetailDown   key.Binding
	DetailUp     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default viewer key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		ExcludeEvent: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "exclude event id"),
		),
		IncludeEvent: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "include event id"),
		),
		ExcludeUser: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "exclude user"),
		),
		IncludeUser: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "include user"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset filter"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow table"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink table"),
		),
		Format: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "json/yaml"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy detail"),
		),
		DetailDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "detail down"),
		),
		DetailUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "detail up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Quit, k.Up, k.Down,
		k.ExcludeEvent, k.IncludeEvent, k.ExcludeUser, k.IncludeUser, k.Reset,
		k.Orientation, k.Grow, k.Shrink,
	}
}

// FullHelp returns every binding grouped by concern
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.First, k.Last},
		{k.ExcludeEvent, k.IncludeEvent, k.ExcludeUser, k.IncludeUser, k.Reset},
		{k.Orientation, k.Grow, k.Shrink, k.Format},
		{k.Copy, k.DetailDown, k.DetailUp, k.Quit},
	}
}
