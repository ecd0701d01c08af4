package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/runeutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/document"
	"notepad/internal/tui/state"
	"notepad/internal/tui/views/menu"
)

const wheelStep = 3

var pasteSanitizer = runeutil.NewSanitizer(runeutil.ReplaceNewlines("\n"), runeutil.ReplaceTabs("\t"))

// pastedText normalizes a bracketed paste: terminals send line breaks as CR
// or CRLF, the buffer only holds LF. Other control characters are dropped.
func pastedText(rs []rune) string {
	s := strings.ReplaceAll(string(rs), "\r\n", "\n")
	return string(pasteSanitizer.Sanitize([]rune(s)))
}

func (m *model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	if i := menu.IndexOfHotkey(m.menus, msg.String()); i >= 0 {
		m.openMenu(i)
		return nil
	}
	switch {
	case key.Matches(msg, k.Menu):
		m.openMenu(0)
		return nil
	case key.Matches(msg, k.New):
		return m.run(menu.CmdNew)
	case key.Matches(msg, k.Open):
		return m.run(menu.CmdOpen)
	case key.Matches(msg, k.Save):
		return m.run(menu.CmdSave)
	case key.Matches(msg, k.SaveAs):
		return m.run(menu.CmdSaveAs)
	case key.Matches(msg, k.Exit):
		return m.run(menu.CmdExit)
	case key.Matches(msg, k.Undo):
		return m.run(menu.CmdUndo)
	case key.Matches(msg, k.Redo):
		return m.run(menu.CmdRedo)
	case key.Matches(msg, k.Cut):
		return m.run(menu.CmdCut)
	case key.Matches(msg, k.Copy):
		return m.run(menu.CmdCopy)
	case key.Matches(msg, k.Paste):
		return m.run(menu.CmdPaste)
	case key.Matches(msg, k.SelectAll):
		return m.run(menu.CmdSelectAll)
	case key.Matches(msg, k.Find):
		return m.run(menu.CmdFind)
	case key.Matches(msg, k.FindNx):
		return m.run(menu.CmdFindNext)
	case key.Matches(msg, k.WordWrap):
		return m.run(menu.CmdWordWrap)
	case key.Matches(msg, k.Help):
		return m.run(menu.CmdKeys)
	}

	keepGoal := false
	var edit func(d *document.Doc)
	switch {
	case key.Matches(msg, k.Left):
		edit = func(d *document.Doc) { d.Left(false) }
	case key.Matches(msg, k.Right):
		edit = func(d *document.Doc) { d.Right(false) }
	case key.Matches(msg, k.ShiftLeft):
		edit = func(d *document.Doc) { d.Left(true) }
	case key.Matches(msg, k.ShiftRight):
		edit = func(d *document.Doc) { d.Right(true) }
	case key.Matches(msg, k.Up):
		m.vertical(-1, false)
		keepGoal = true
	case key.Matches(msg, k.Down):
		m.vertical(1, false)
		keepGoal = true
	case key.Matches(msg, k.ShiftUp):
		m.vertical(-1, true)
		keepGoal = true
	case key.Matches(msg, k.ShiftDown):
		m.vertical(1, true)
		keepGoal = true
	case key.Matches(msg, k.PageUp):
		m.vertical(-(m.textHeight() - 1), false)
		keepGoal = true
	case key.Matches(msg, k.PageDown):
		m.vertical(m.textHeight()-1, false)
		keepGoal = true
	case key.Matches(msg, k.WordLeft):
		edit = func(d *document.Doc) { d.WordLeft(false) }
	case key.Matches(msg, k.WordRight):
		edit = func(d *document.Doc) { d.WordRight(false) }
	case key.Matches(msg, k.ShiftWordLeft):
		edit = func(d *document.Doc) { d.WordLeft(true) }
	case key.Matches(msg, k.ShiftWordRight):
		edit = func(d *document.Doc) { d.WordRight(true) }
	case key.Matches(msg, k.Home):
		edit = func(d *document.Doc) { d.LineStart(false) }
	case key.Matches(msg, k.End):
		edit = func(d *document.Doc) { d.LineEnd(false) }
	case key.Matches(msg, k.ShiftHome):
		edit = func(d *document.Doc) { d.LineStart(true) }
	case key.Matches(msg, k.ShiftEnd):
		edit = func(d *document.Doc) { d.LineEnd(true) }
	case key.Matches(msg, k.DocStart):
		edit = func(d *document.Doc) { d.DocStart(false) }
	case key.Matches(msg, k.DocEnd):
		edit = func(d *document.Doc) { d.DocEnd(false) }
	case key.Matches(msg, k.ShiftDocStart):
		edit = func(d *document.Doc) { d.DocStart(true) }
	case key.Matches(msg, k.ShiftDocEnd):
		edit = func(d *document.Doc) { d.DocEnd(true) }
	case key.Matches(msg, k.Backspace):
		edit = func(d *document.Doc) { d.Backspace() }
	case key.Matches(msg, k.Delete):
		edit = func(d *document.Doc) { d.DeleteForward() }
	case key.Matches(msg, k.Enter):
		edit = func(d *document.Doc) { d.Type('\n') }
	case key.Matches(msg, k.Tab):
		edit = func(d *document.Doc) { d.Type('\t') }
	case msg.Type == tea.KeySpace:
		edit = func(d *document.Doc) { d.Type(' ') }
	case msg.Type == tea.KeyRunes && msg.Paste:
		s := pastedText(msg.Runes)
		edit = func(d *document.Doc) { d.Insert(s) }
	case msg.Type == tea.KeyRunes && !msg.Alt:
		runes := msg.Runes
		edit = func(d *document.Doc) {
			for _, r := range runes {
				d.Type(r)
			}
		}
	case msg.Type == tea.KeyEsc:
		edit = func(d *document.Doc) { d.ClearSelection() }
	default:
		return nil
	}
	if !keepGoal {
		m.goalCol = -1
	}
	m.ui.Notice = ""
	if edit != nil {
		m.c.Apply(edit)
	}
	m.follow()
	return m.titleCmd()
}

// vertical moves the cursor delta visual rows, keeping the display column it
// started from across consecutive vertical moves.
func (m *model) vertical(delta int, extend bool) {
	text, rows := m.rows()
	row, col := m.ed.Locate(text, rows, m.c.Doc().Cursor())
	if m.goalCol < 0 {
		m.goalCol = col
	}
	target := row + delta
	var off int
	switch {
	case target < 0:
		off = 0
	case target >= len(rows):
		off = len(text)
	default:
		off = m.ed.OffsetAt(text, rows, target, m.goalCol)
	}
	m.c.Apply(func(d *document.Doc) { d.MoveTo(off, extend) })
}

func (m *model) openMenu(i int) {
	m.menuIdx = i
	m.menuSel = m.menus[i].First()
	m.setMode(state.MENU)
}

func (m *model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if i := menu.IndexOfHotkey(m.menus, msg.String()); i >= 0 {
		m.openMenu(i)
		return nil
	}
	n := len(m.menus)
	cur := m.menus[m.menuIdx]
	switch msg.String() {
	case "esc", "f10":
		m.setMode(state.EDIT)
	case "left":
		m.openMenu((m.menuIdx - 1 + n) % n)
	case "right":
		m.openMenu((m.menuIdx + 1) % n)
	case "up":
		m.menuSel = cur.Next(m.menuSel, -1)
	case "down":
		m.menuSel = cur.Next(m.menuSel, 1)
	case "enter", " ":
		if cmd := cur.Selected(m.menuSel); m.enabled(cmd) {
			return m.run(cmd)
		}
	}
	return nil
}

// menuAt returns the menu whose title covers column x of the bar, or -1.
func (m model) menuAt(x int) int {
	for i, mn := range m.menus {
		start := menu.Offset(m.menus, i)
		if x >= start && x < start+len(mn.Title)+2 {
			return i
		}
	}
	return -1
}

// textPos converts a screen cell to a rune offset. The text starts on the
// row below the menu bar.
func (m model) textPos(x, y int) int {
	text, rows := m.rows()
	col := x
	if !m.ed.Wrap {
		col += m.ui.Left
	}
	return m.ed.OffsetAt(text, rows, y-1+m.ui.Top, col)
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	left := msg.Button == tea.MouseButtonLeft
	if msg.Action == tea.MouseActionPress && left && msg.Y == 0 {
		if i := m.menuAt(msg.X); i >= 0 {
			m.openMenu(i)
		} else {
			m.setMode(state.EDIT)
		}
		return nil
	}

	if m.ui.Mode == state.MENU {
		if msg.Action != tea.MouseActionPress || !left {
			return nil
		}
		cur := m.menus[m.menuIdx]
		x0 := menu.Offset(m.menus, m.menuIdx)
		w := lipgloss.Width(menu.Dropdown(cur, m.menuSel, m.checked, m.enabled))
		// items start below the bar and the dropdown's top border
		item := msg.Y - 2
		if msg.X > x0 && msg.X < x0+w-1 && item >= 0 && item < len(cur.Items) {
			cmd := cur.Selected(item)
			if cmd == menu.CmdNone || !m.enabled(cmd) {
				return nil
			}
			return m.run(cmd)
		}
		m.setMode(state.EDIT)
		return nil
	}

	_, rows := m.rows()
	h := m.textHeight()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ui = state.ScrollBy(m.ui, -wheelStep, len(rows), h)
	case msg.Button == tea.MouseButtonWheelDown:
		m.ui = state.ScrollBy(m.ui, wheelStep, len(rows), h)
	case msg.Button == tea.MouseButtonWheelLeft && !m.ed.Wrap:
		m.ui = state.ScrollLeft(m.ui, true)
	case msg.Button == tea.MouseButtonWheelRight && !m.ed.Wrap:
		text, rows := m.rows()
		m.ui = state.ScrollRight(m.ui, true, m.ed.ContentWidth(text, rows), m.ui.Width)
	case msg.Action == tea.MouseActionPress && left:
		if msg.Y < 1 || msg.Y > h {
			return nil
		}
		off := m.textPos(msg.X, msg.Y)
		if msg.Shift {
			m.c.Apply(func(d *document.Doc) { d.MoveTo(off, true) })
		} else {
			m.c.Apply(func(d *document.Doc) { d.SetCursor(off) })
			m.dragAnchor = off
		}
		if r, ok := m.c.Doc().Selection(); ok && msg.Shift {
			m.dragAnchor = r.Start
			if r.Start == off {
				m.dragAnchor = r.End
			}
		}
		m.dragging = true
		m.goalCol = -1
	case msg.Action == tea.MouseActionMotion && m.dragging:
		y := msg.Y
		if y < 1 {
			y = 1
		} else if y > h {
			y = h
		}
		off := m.textPos(msg.X, y)
		anchor := m.dragAnchor
		m.c.Apply(func(d *document.Doc) { d.Select(document.Range{Start: anchor, End: off}) })
		m.follow()
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
	return nil
}
