package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for fields and the form.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Remount   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Commit    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "step up")),
		Decrement: key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "step down")),
		Remount:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "remount")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// FooterBindings lists the bindings shown in the footer, in order.
func (k KeyMap) FooterBindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Increment, k.Decrement, k.Commit, k.Remount, k.Quit}
}
