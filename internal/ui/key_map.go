package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	nextTab    key.Binding
	prevTab    key.Binding
	enter      key.Binding
	back       key.Binding
	left       key.Binding
	right      key.Binding
	fullscreen key.Binding
	refresh    key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		nextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		prevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.nextTab, k.prevTab, k.back},
		{k.left, k.right, k.fullscreen},
		{k.refresh, k.quit},
	}
}
