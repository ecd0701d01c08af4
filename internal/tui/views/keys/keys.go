package keys

import (
	"github.com/charmbracelet/bubbles/key"

	help "notepad/internal/tui/widgets/helpoverlay"
)

// KeyMap defines the editor key bindings.
//
// Terminals cannot tell Ctrl+Shift+S from Ctrl+S, so Save As is on F12 and
// Alt+S.
type KeyMap struct {
	New, Open, Save, SaveAs, Exit key.Binding

	Undo, Redo              key.Binding
	Cut, Copy, Paste        key.Binding
	SelectAll, Find, FindNx key.Binding

	WordWrap, Menu, Help key.Binding

	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End, ShiftHome, ShiftEnd            key.Binding
	DocStart, DocEnd                          key.Binding
	ShiftDocStart, ShiftDocEnd                key.Binding
	PageUp, PageDown                          key.Binding

	Backspace, Delete, Enter, Tab key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs: key.NewBinding(key.WithKeys("f12", "alt+s"), key.WithHelp("f12/alt+s", "save as")),
		Exit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "exit")),

		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Find:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		FindNx:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "find next")),

		WordWrap: key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "word wrap")),
		Menu:     key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10/alt+f", "menu")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "shortcuts")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// terminals vary between alt+arrows and ctrl+arrows
		WordLeft:       key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right")),

		Home:          key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:           key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		ShiftHome:     key.NewBinding(key.WithKeys("shift+home")),
		ShiftEnd:      key.NewBinding(key.WithKeys("shift+end")),
		DocStart:      key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "doc start")),
		DocEnd:        key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "doc end")),
		ShiftDocStart: key.NewBinding(key.WithKeys("ctrl+shift+home")),
		ShiftDocEnd:   key.NewBinding(key.WithKeys("ctrl+shift+end")),
		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tab")),
	}
}

// Sections groups the bindings for the keyboard shortcuts dialog.
func (k KeyMap) Sections() []help.Section {
	return []help.Section{
		{Title: "File", Keys: []key.Binding{k.New, k.Open, k.Save, k.SaveAs, k.Exit}},
		{Title: "Edit", Keys: []key.Binding{k.Undo, k.Redo, k.Cut, k.Copy, k.Paste, k.SelectAll, k.Find, k.FindNx}},
		{Title: "View", Keys: []key.Binding{k.WordWrap, k.Menu, k.Help}},
		{Title: "Navigation", Keys: []key.Binding{k.WordLeft, k.WordRight, k.Home, k.End, k.DocStart, k.DocEnd, k.PageUp, k.PageDown}},
	}
}

// RenderHelp returns the grouped keys overlay content in three columns so it
// fits a standard 80x24 terminal.
func RenderHelp(k KeyMap) string {
	s := k.Sections()
	return help.NewHelpOverlay().ViewColumns([][]help.Section{{s[0], s[2]}, {s[1]}, {s[3]}}, 3)
}
