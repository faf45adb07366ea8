package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the dashboard bindings. List navigation lives in listview.
type keyMap struct {
	Select key.Binding
	Back   key.Binding
	Open   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
	Scroll key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "show details")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back to list")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Open, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Back, k.Scroll},
		{k.Open, k.Reload},
		{k.Help, k.Quit},
	}
}
