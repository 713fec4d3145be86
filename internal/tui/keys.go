package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	refresh    key.Binding
	register   key.Binding
	unregister key.Binding
	history    key.Binding
	copy       key.Binding
	about      key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	register:   key.NewBinding(key.WithKeys("g")),
	unregister: key.NewBinding(key.WithKeys("u")),
	history:    key.NewBinding(key.WithKeys("h")),
	copy:       key.NewBinding(key.WithKeys("c")),
	about:      key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
