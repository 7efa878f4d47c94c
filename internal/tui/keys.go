package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit    key.Binding
	esc     key.Binding
	enter   key.Binding
	copy    key.Binding
	copyAll key.Binding
}

var keys = keyMap{
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	copy:    key.NewBinding(key.WithKeys("c")),
	copyAll: key.NewBinding(key.WithKeys("C")),
}
