package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"notepad/internal/notepad"
	"notepad/internal/tui/state"
	"notepad/internal/tui/views/keys"
	"notepad/internal/tui/views/menu"
	"notepad/internal/tui/views/status"
	"notepad/internal/tui/widgets/editor"
)

// Options configure the terminal front end.
type Options struct {
	NoColor  bool
	TabWidth int
	Version  string
}

// Run shows the editor for c until the user exits.
func Run(c *notepad.Controller, opts Options) error {
	m := newModel(c, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type model struct {
	c    *notepad.Controller
	opts Options
	keys keys.KeyMap
	ui   state.UIState
	ed   editor.Editor

	menus   []menu.Menu
	menuIdx int
	menuSel int

	find     textinput.Model
	findCase bool
	findOnCB bool // focus on the match-case checkbox

	file   fileDialog
	review viewport.Model
	alert  *notepad.Alert
	about  string

	goalCol    int // preferred display column for vertical motion, -1 = none
	dragging   bool
	dragAnchor int
	title      string
}

func newModel(c *notepad.Controller, opts Options) model {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 8
	}
	m := model{
		c:       c,
		opts:    opts,
		keys:    keys.DefaultKeyMap(),
		ed:      editor.NewEditor(c.View().WordWrap, opts.TabWidth, opts.NoColor),
		menus:   menu.Menus(),
		goalCol: -1,
		title:   c.Title(),
	}
	// a file named on the command line may have failed to open
	if a := c.TakeAlert(); a != nil {
		m.alert = a
		m.ui.Mode = state.ALERT
	}
	return m
}

func (m model) Init() tea.Cmd { return tea.SetWindowTitle(m.title) }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.review.Width, m.review.Height = m.reviewSize()
		m.follow()
		return m, nil

	case tea.MouseMsg:
		if m.ui.Mode == state.EDIT || m.ui.Mode == state.MENU {
			return m, m.handleMouse(msg)
		}
		if m.ui.Mode == state.REVIEW {
			var cmd tea.Cmd
			m.review, cmd = m.review.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.ui.Mode {
		case state.EDIT:
			cmd = m.handleEditKey(msg)
		case state.MENU:
			cmd = m.handleMenuKey(msg)
		case state.FIND:
			cmd = m.handleFindKey(msg)
		case state.FILE:
			cmd = m.handleFileKey(msg)
		case state.CONFIRM:
			cmd = m.handleConfirmKey(msg)
		case state.REVIEW:
			cmd = m.handleReviewKey(msg)
		case state.ALERT, state.ABOUT:
			m.alert = nil
			m.setMode(state.EDIT)
		}
		return m, cmd
	}
	return m, nil
}

func (m *model) setMode(mode state.Mode) { m.ui = state.SetMode(m.ui, mode) }

// sync moves the UI to whatever the controller is waiting for after an
// action: a dialog, an error, or back to editing. It also keeps the terminal
// title current and quits once Exit has gone through.
func (m *model) sync(req notepad.Request) tea.Cmd {
	switch req {
	case notepad.RequestDiscard:
		m.setMode(state.CONFIRM)
	case notepad.RequestOpenPath:
		m.file = newFileDialog(false, seedPath(m.c.Path()))
		m.setMode(state.FILE)
	case notepad.RequestSavePath:
		m.file = newFileDialog(true, seedPath(m.c.Path()))
		m.setMode(state.FILE)
	default:
		if a := m.c.TakeAlert(); a != nil {
			m.alert = a
			m.setMode(state.ALERT)
		} else {
			m.setMode(state.EDIT)
		}
		if m.c.Quit() {
			return tea.Quit
		}
	}
	m.ed.Wrap = m.c.View().WordWrap
	m.follow()
	return m.titleCmd()
}

func (m *model) titleCmd() tea.Cmd {
	t := m.c.Title()
	if t == m.title {
		return nil
	}
	m.title = t
	return tea.SetWindowTitle(t)
}

// run executes a menu command or its accelerator.
func (m *model) run(cmd menu.Command) tea.Cmd {
	switch cmd {
	case menu.CmdNew:
		return m.sync(m.c.Do(notepad.ActionNew))
	case menu.CmdOpen:
		return m.sync(m.c.Do(notepad.ActionOpen))
	case menu.CmdSave:
		return m.sync(m.c.Do(notepad.ActionSave))
	case menu.CmdSaveAs:
		return m.sync(m.c.Do(notepad.ActionSaveAs))
	case menu.CmdExit:
		return m.sync(m.c.Do(notepad.ActionExit))
	case menu.CmdUndo:
		m.c.Undo()
	case menu.CmdRedo:
		m.c.Redo()
	case menu.CmdCut:
		m.c.Cut()
	case menu.CmdCopy:
		m.c.Copy()
	case menu.CmdPaste:
		m.c.Paste()
	case menu.CmdSelectAll:
		m.c.SelectAll()
	case menu.CmdFind:
		m.openFind()
		return textinput.Blink
	case menu.CmdFindNext:
		if !m.c.HasLastFind() {
			m.openFind()
			return textinput.Blink
		}
		from := m.c.Doc().Cursor()
		found := m.c.FindNext()
		m.setMode(state.EDIT)
		m.noteWrap(from, found)
		m.follow()
		return m.titleCmd()
	case menu.CmdWordWrap:
		m.c.ToggleWordWrap()
		m.ed.Wrap = m.c.View().WordWrap
		m.ui = state.ResetScroll(m.ui)
	case menu.CmdStatusBar:
		m.c.ToggleStatusBar()
	case menu.CmdKeys:
		m.about = "Keyboard Shortcuts\n\n" + keys.RenderHelp(m.keys)
		m.setMode(state.ABOUT)
		return nil
	case menu.CmdAbout:
		m.about = aboutText(m.opts.Version)
		m.setMode(state.ABOUT)
		return nil
	}
	m.setMode(state.EDIT)
	m.follow()
	return m.titleCmd()
}

// ===== Layout =====

// textHeight is the number of rows left for the text once the menu bar,
// the scrollbar and the status bar have theirs.
func (m model) textHeight() int {
	h := m.ui.Height - 1
	if !m.c.View().WordWrap {
		h--
	}
	if m.c.View().StatusBar {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) rows() ([]rune, []editor.Row) {
	text := m.c.Doc().Runes()
	return text, m.ed.Layout(text, m.ui.Width)
}

// follow scrolls the view so the cursor is visible.
func (m *model) follow() {
	if m.ui.Width <= 0 {
		return
	}
	text, rows := m.rows()
	row, col := m.ed.Locate(text, rows, m.c.Doc().Cursor())
	m.ui = state.FollowRow(m.ui, row, m.textHeight())
	if m.ed.Wrap {
		m.ui.Left = 0
	} else {
		m.ui = state.FollowCol(m.ui, col, m.ui.Width)
	}
}

// clearOfDialog scrolls so the cursor row is not hidden under a dialog of
// boxH rows centred over the text, putting it just above the box, or just
// below when there is no room above.
func (m *model) clearOfDialog(boxH int) {
	if m.ui.Width <= 0 {
		return
	}
	h := m.textHeight()
	top := (h - boxH) / 2
	if top < 0 {
		top = 0
	}
	text, rows := m.rows()
	row, _ := m.ed.Locate(text, rows, m.c.Doc().Cursor())
	rel := row - m.ui.Top
	if rel < top || rel >= top+boxH {
		return
	}
	switch {
	case top > 0:
		m.ui.Top = row - (top - 1)
	case boxH < h:
		m.ui.Top = max(row-boxH, 0)
	}
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m model) View() string {
	if m.ui.Width <= 0 || m.ui.Height <= 0 {
		return ""
	}
	open := -1
	if m.ui.Mode == state.MENU {
		open = m.menuIdx
	}
	parts := []string{menu.Bar(m.menus, open, m.ui.Width, m.c.Title())}

	text, rows := m.rows()
	h := m.textHeight()
	body := m.ed.View(text, rows, m.ui, h, m.marks())

	switch m.ui.Mode {
	case state.MENU:
		dd := menu.Dropdown(m.menus[m.menuIdx], m.menuSel, m.checked, m.enabled)
		body = overlay(body, dd, menu.Offset(m.menus, m.menuIdx), 0)
	case state.FIND:
		body = m.center(body, m.viewFind(), h)
	case state.FILE:
		body = m.center(body, m.viewFile(), h)
	case state.CONFIRM:
		body = m.center(body, m.viewConfirm(), h)
	case state.REVIEW:
		body = m.viewReview(h)
	case state.ALERT:
		body = m.center(body, m.viewAlert(), h)
	case state.ABOUT:
		body = m.center(body, boxStyle.Render(m.about+"\n\n"+faintStyle.Render("Press any key")), h)
	}
	parts = append(parts, body)

	if !m.c.View().WordWrap {
		parts = append(parts, editor.Scrollbar(m.ui.Width, m.ui.Left, m.ed.ContentWidth(text, rows)))
	}
	if m.c.View().StatusBar {
		parts = append(parts, status.Render(m.ui, m.c.Status(), string(text), m.c.Encoding(), m.opts.NoColor))
	}
	return strings.Join(parts, "\n")
}

func (m model) marks() editor.Marks {
	d := m.c.Doc()
	sel, hasSel := d.Selection()
	hl, hasHL := d.Highlight()
	return editor.Marks{
		Cursor:       d.Cursor(),
		ShowCursor:   m.ui.Mode == state.EDIT || m.ui.Mode == state.FIND,
		Selection:    sel,
		HasSelection: hasSel,
		Highlight:    hl,
		HasHighlight: hasHL,
	}
}

func (m model) checked(cmd menu.Command) bool {
	switch cmd {
	case menu.CmdWordWrap:
		return m.c.View().WordWrap
	case menu.CmdStatusBar:
		return m.c.View().StatusBar
	}
	return false
}

// enabled greys out Edit items that would do nothing.
func (m model) enabled(cmd menu.Command) bool {
	switch cmd {
	case menu.CmdUndo:
		return m.c.CanUndo()
	case menu.CmdRedo:
		return m.c.CanRedo()
	case menu.CmdCut, menu.CmdCopy:
		_, ok := m.c.Doc().Selection()
		return ok
	}
	return true
}

func (m model) center(body, box string, h int) string {
	x := (m.ui.Width - lipgloss.Width(box)) / 2
	y := (h - lipgloss.Height(box)) / 2
	return overlay(body, box, x, y)
}

// overlay draws box over body with its top-left corner at column x, row y.
// Body text left of the box is kept; text right of it is blanked.
func overlay(body, box string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	lines := strings.Split(body, "\n")
	for i, bl := range strings.Split(box, "\n") {
		row := y + i
		if row >= len(lines) {
			break
		}
		left := truncate.String(lines[row], uint(x))
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		lines[row] = left + bl
	}
	return strings.Join(lines, "\n")
}
