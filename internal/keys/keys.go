// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// DefaultToggleKey opens and closes the navigation menu.
const DefaultToggleKey = "m"

// MenuKeyMap defines the keybindings owned by the navigation menu.
type MenuKeyMap struct {
	Toggle   key.Binding
	Dismiss  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// DefaultMenuKeyMap returns the menu bindings with the given toggle key.
// An empty toggleKey falls back to DefaultToggleKey.
func DefaultMenuKeyMap(toggleKey string) MenuKeyMap {
	if toggleKey == "" {
		toggleKey = DefaultToggleKey
	}
	return MenuKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(toggleKey),
			key.WithHelp(toggleKey, "menu"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j", "ctrl+n"),
			key.WithHelp("tab/↓", "next link"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k", "ctrl+p"),
			key.WithHelp("shift+tab/↑", "previous link"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "follow link"),
		),
	}
}

// PageKeyMap defines the keybindings of the host page.
type PageKeyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Menu bindings are listed in help but handled by the menu itself.
	Menu MenuKeyMap
}

// DefaultPageKeyMap returns the host page bindings.
func DefaultPageKeyMap(menu MenuKeyMap) PageKeyMap {
	return PageKeyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Menu: menu,
	}
}

// ShortHelp returns keybindings for the short help view.
func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.Top, k.Bottom},                                 // Page
		{k.Menu.Toggle, k.Menu.Next, k.Menu.Prev, k.Menu.Activate, k.Menu.Dismiss}, // Menu
		{k.Help, k.Quit}, // General
	}
}
