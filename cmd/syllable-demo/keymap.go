package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings. Letters, digits and punctuation
// are handled as text input and are not listed here.
type keyMap struct {
	Quit       key.Binding
	Commit     key.Binding
	Choose     key.Binding
	Backspace  key.Binding
	Delete     key.Binding
	Left       key.Binding
	Right      key.Binding
	End        key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	NextSpell  key.Binding
	Toggle     key.Binding
	Completion key.Binding
	Symbols    key.Binding
	Math       key.Binding
	Undo       key.Binding
	Reset      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm/commit")),
		Choose:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "first candidate")),
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:     key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete token")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last gap")),
		NextPage:   key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("ctrl+n", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("ctrl+b", "prev page")),
		NextSpell:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter reading/board")),
		Toggle:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "fix spelling")),
		Completion: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "phrase")),
		Symbols:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "symbols")),
		Math:       key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "math")),
		Undo:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Reset:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Commit, k.NextPage, k.Symbols, k.Undo, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choose, k.Commit, k.Backspace, k.Delete},
		{k.Left, k.Right, k.End, k.NextPage, k.PrevPage},
		{k.NextSpell, k.Toggle, k.Completion, k.Symbols, k.Math},
		{k.Undo, k.Reset, k.Quit},
	}
}
