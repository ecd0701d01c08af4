package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Command is what a menu item does when activated.
type Command int

const (
	CmdNone Command = iota
	CmdNew
	CmdOpen
	CmdSave
	CmdSaveAs
	CmdExit
	CmdUndo
	CmdRedo
	CmdCut
	CmdCopy
	CmdPaste
	CmdSelectAll
	CmdFind
	CmdFindNext
	CmdWordWrap
	CmdStatusBar
	CmdKeys
	CmdAbout
)

type Item struct {
	Label     string
	Accel     string
	Cmd       Command
	Checkable bool
}

// Separator draws a rule between item groups and cannot be selected.
var Separator = Item{}

func (it Item) selectable() bool { return it.Cmd != CmdNone }

type Menu struct {
	Title  string
	Hotkey string
	Items  []Item
}

// Menus returns the menu bar contents in display order.
func Menus() []Menu {
	return []Menu{
		{Title: "File", Hotkey: "alt+f", Items: []Item{
			{Label: "New", Accel: "Ctrl+N", Cmd: CmdNew},
			{Label: "Open...", Accel: "Ctrl+O", Cmd: CmdOpen},
			{Label: "Save", Accel: "Ctrl+S", Cmd: CmdSave},
			{Label: "Save As...", Accel: "F12", Cmd: CmdSaveAs},
			Separator,
			{Label: "Exit", Accel: "Ctrl+Q", Cmd: CmdExit},
		}},
		{Title: "Edit", Hotkey: "alt+e", Items: []Item{
			{Label: "Undo", Accel: "Ctrl+Z", Cmd: CmdUndo},
			{Label: "Redo", Accel: "Ctrl+Y", Cmd: CmdRedo},
			Separator,
			{Label: "Cut", Accel: "Ctrl+X", Cmd: CmdCut},
			{Label: "Copy", Accel: "Ctrl+C", Cmd: CmdCopy},
			{Label: "Paste", Accel: "Ctrl+V", Cmd: CmdPaste},
			Separator,
			{Label: "Select All", Accel: "Ctrl+A", Cmd: CmdSelectAll},
			Separator,
			{Label: "Find...", Accel: "Ctrl+F", Cmd: CmdFind},
			{Label: "Find Next", Accel: "F3", Cmd: CmdFindNext},
		}},
		{Title: "View", Hotkey: "alt+v", Items: []Item{
			{Label: "Word Wrap", Accel: "Alt+Z", Cmd: CmdWordWrap, Checkable: true},
			{Label: "Status Bar", Cmd: CmdStatusBar, Checkable: true},
		}},
		{Title: "Help", Hotkey: "alt+h", Items: []Item{
			{Label: "Keyboard Shortcuts", Accel: "F1", Cmd: CmdKeys},
			{Label: "About", Cmd: CmdAbout},
		}},
	}
}

// IndexOfHotkey returns the menu opened by an Alt hotkey, or -1.
func IndexOfHotkey(menus []Menu, k string) int {
	for i, m := range menus {
		if m.Hotkey == k {
			return i
		}
	}
	return -1
}

// First returns the first selectable item index.
func (m Menu) First() int { return m.Next(-1, 1) }

// Next moves from item i by dir (+1 or -1), skipping separators and
// wrapping around.
func (m Menu) Next(i, dir int) int {
	n := len(m.Items)
	if n == 0 {
		return -1
	}
	for step := 0; step < n; step++ {
		i = ((i+dir)%n + n) % n
		if m.Items[i].selectable() {
			return i
		}
	}
	return -1
}

// Selected returns the command of item i, or CmdNone.
func (m Menu) Selected(i int) Command {
	if i < 0 || i >= len(m.Items) {
		return CmdNone
	}
	return m.Items[i].Cmd
}

var (
	barStyle   = lipgloss.NewStyle().Reverse(true)
	openStyle  = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	selStyle   = lipgloss.NewStyle().Reverse(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Offset is the column where menu i's title starts on the bar.
func Offset(menus []Menu, i int) int {
	x := 0
	for j := 0; j < i && j < len(menus); j++ {
		x += len(menus[j].Title) + 2
	}
	return x
}

// Bar renders the menu bar with title right-aligned. open is the index of
// the menu being shown, or -1.
func Bar(menus []Menu, open, width int, title string) string {
	var b strings.Builder
	for i, m := range menus {
		label := " " + m.Title + " "
		if i == open {
			label = openStyle.Render("[" + m.Title + "]")
		}
		b.WriteString(label)
	}
	left := b.String()
	gap := width - lipgloss.Width(left) - lipgloss.Width(title) - 1
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + title + " "
	if w := lipgloss.Width(line); w > width && width > 0 {
		line = left + strings.Repeat(" ", max(width-lipgloss.Width(left), 0))
	}
	return barStyle.Render(line)
}

// Dropdown renders menu m as a bordered box with item sel selected. checked
// reports the state of checkable items; items enabled rejects are drawn faint.
// Either func may be nil.
func Dropdown(m Menu, sel int, checked, enabled func(Command) bool) string {
	labelW, accelW := 0, 0
	for _, it := range m.Items {
		if l := len(it.Label) + 4; l > labelW {
			labelW = l
		}
		if len(it.Accel) > accelW {
			accelW = len(it.Accel)
		}
	}
	inner := labelW + 2 + accelW

	lines := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		if !it.selectable() {
			lines = append(lines, faintStyle.Render(strings.Repeat("─", inner)))
			continue
		}
		mark := "    "
		if it.Checkable {
			mark = "[ ] "
			if checked != nil && checked(it.Cmd) {
				mark = "[x] "
			}
		}
		row := padRight(mark+it.Label, labelW) + "  " + padLeft(it.Accel, accelW)
		off := enabled != nil && !enabled(it.Cmd)
		switch {
		case i == sel && off:
			row = selStyle.Faint(true).Render(row)
		case i == sel:
			row = selStyle.Render(row)
		case off:
			row = faintStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func padLeft(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}
