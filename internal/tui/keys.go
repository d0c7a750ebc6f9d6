package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Edit      key.Binding
	SwitchTab key.Binding

	SelectNext key.Binding
	Deselect   key.Binding
	Add        key.Binding
	Duplicate  key.Binding
	Delete     key.Binding
	Resize     key.Binding

	Code   key.Binding
	Write  key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Resize, k.Edit, k.SwitchTab, k.Code, k.Help, k.Quit}
}

// FullHelp is shown when help is expanded.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next, k.Edit, k.SwitchTab},
		{k.SelectNext, k.Deselect, k.Add, k.Duplicate, k.Delete, k.Resize},
		{k.Code, k.Write, k.Save, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous property")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next property")),
	Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous option")),
	Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
	Edit:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "edit")),
	SwitchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "container/items")),

	SelectNext: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select next item")),
	Deselect:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect")),
	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	Duplicate:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
	Delete:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
	Resize:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "resize")),

	Code:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "view code")),
	Write:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write files")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save layout")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// Keys used while a keyboard resize is active.
var resizeKeys = struct {
	Left, Right, Up, Down                 key.Binding
	FineLeft, FineRight, FineUp, FineDown key.Binding
	Done                                  key.Binding
}{
	Left:      key.NewBinding(key.WithKeys("left", "h")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	Up:        key.NewBinding(key.WithKeys("up", "k")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	FineLeft:  key.NewBinding(key.WithKeys("shift+left", "H")),
	FineRight: key.NewBinding(key.WithKeys("shift+right", "L")),
	FineUp:    key.NewBinding(key.WithKeys("shift+up", "K")),
	FineDown:  key.NewBinding(key.WithKeys("shift+down", "J")),
	Done:      key.NewBinding(key.WithKeys("enter", "esc", "R")),
}
