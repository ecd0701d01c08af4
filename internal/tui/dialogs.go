package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"notepad/internal/notepad"
	"notepad/internal/textfile"
	"notepad/internal/tui/state"
	"notepad/internal/tui/widgets/diff"
)

const dialogWidth = 50

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})

// wrapText word-wraps s, then hard-wraps words longer than width such as
// long paths in OS errors.
func wrapText(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}

func aboutText(version string) string {
	head := "Notepad"
	if version != "" {
		head += " " + version
	}
	return titleStyle.Render("About") + "\n\n" + head + "\n\n" +
		wrapText("A simple Notepad-like editor for the terminal.", dialogWidth)
}

// ===== Find =====

func (m *model) openFind() {
	in := textinput.New()
	in.Prompt = "Find what: "
	in.Width = 32
	in.Focus()
	m.find = in
	m.findCase = false
	m.findOnCB = false
	m.setMode(state.FIND)
}

func (m *model) handleFindKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.setMode(state.EDIT)
		return nil
	case "enter":
		from := m.c.Doc().Cursor()
		found := m.c.Find(m.find.Value(), m.findCase)
		m.noteWrap(from, found)
		m.follow()
		m.clearOfDialog(lipgloss.Height(m.viewFind()))
		return nil
	case "alt+c":
		m.findCase = !m.findCase
		return nil
	case "tab", "shift+tab":
		m.findOnCB = !m.findOnCB
		if m.findOnCB {
			m.find.Blur()
			return nil
		}
		return m.find.Focus()
	case " ":
		if m.findOnCB {
			m.findCase = !m.findCase
			return nil
		}
	}
	if m.findOnCB {
		return nil
	}
	var cmd tea.Cmd
	m.find, cmd = m.find.Update(msg)
	return cmd
}

// noteWrap flags a match that was only reached by wrapping to the top.
func (m *model) noteWrap(from int, found bool) {
	m.ui.Notice = ""
	if hl, ok := m.c.Doc().Highlight(); found && ok && hl.Start < from {
		m.ui.Notice = "(search wrapped)"
	}
}

func (m model) viewFind() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Find") + "\n\n")
	b.WriteString(m.find.View() + "\n")
	check := "[ ] Match case"
	if m.findCase {
		check = "[x] Match case"
	}
	if m.findOnCB {
		check = selStyle.Render(check)
	}
	b.WriteString(check + "\n\n")
	b.WriteString(faintStyle.Render("enter: find next   tab/alt+c: match case   esc: close"))
	return boxStyle.Render(b.String())
}

// ===== File picker =====

func (m *model) handleFileKey(msg tea.KeyMsg) tea.Cmd {
	f := &m.file
	switch msg.String() {
	case "esc":
		return m.answerFile("", false)
	case "enter":
		p := expandPath(f.input.Value())
		if p == "" {
			return nil
		}
		if isDir(p) {
			f.input.SetValue(homeRelative(p) + string(filepath.Separator))
			f.input.CursorEnd()
			f.computeSuggestions()
			return nil
		}
		if !f.save && !exists(p) {
			f.msg = fmt.Sprintf("! not found: %s", p)
			return nil
		}
		return m.answerFile(p, true)
	case "tab":
		f.complete()
		return nil
	case "up":
		f.moveSelection(-1)
		return nil
	case "down":
		f.moveSelection(1)
		return nil
	case "ctrl+t":
		f.toggleFilter()
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.msg = ""
		f.computeSuggestions()
	}
	return cmd
}

func (m *model) answerFile(path string, ok bool) tea.Cmd {
	if m.c.Pending() == notepad.RequestSavePath {
		return m.sync(m.c.AnswerSavePath(path, ok))
	}
	return m.sync(m.c.AnswerOpenPath(path, ok))
}

func (m model) viewFile() string {
	f := m.file
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title()) + "\n\n")
	b.WriteString(f.input.View() + "\n")
	b.WriteString("Files of type: " + textfile.Filters[f.filter].Name + faintStyle.Render("  (ctrl+t)") + "\n")
	if f.msg != "" {
		b.WriteString(errStyle.Render(f.msg) + "\n")
	}
	if len(f.suggest) > 0 {
		b.WriteString("\n")
		for i, s := range f.suggest {
			line := "  " + s
			if i == f.sel {
				line = selStyle.Render("> " + s)
			}
			b.WriteString(line + "\n")
		}
	}
	verb := "open"
	if f.save {
		verb = "save"
	}
	b.WriteString("\n" + faintStyle.Render("enter: "+verb+"   tab: complete   ↑/↓: pick   esc: cancel"))
	return boxStyle.Render(b.String())
}

// ===== Discard prompt =====

func (m *model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "s", "y", "enter":
		return m.sync(m.c.AnswerDiscard(notepad.ChoiceSave))
	case "d", "n":
		return m.sync(m.c.AnswerDiscard(notepad.ChoiceDontSave))
	case "c", "esc":
		return m.sync(m.c.AnswerDiscard(notepad.ChoiceCancel))
	case "r":
		m.openReview()
	}
	return nil
}

func (m model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notepad") + "\n\n")
	q := fmt.Sprintf("Do you want to save changes to %s?", notepad.DisplayName(m.c.Path()))
	b.WriteString(wrapText(q, dialogWidth) + "\n\n")
	b.WriteString("[S]ave   [D]on't Save   [C]ancel\n")
	b.WriteString(faintStyle.Render("r: review changes"))
	return boxStyle.Render(b.String())
}

// ===== Review changes =====

func (m model) reviewSize() (int, int) {
	w := m.ui.Width - 4
	h := m.textHeight() - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (m *model) openReview() {
	w, h := m.reviewSize()
	m.review = viewport.New(w, h)
	m.review.SetContent(diff.NewDiffView(m.opts.NoColor).View(m.c.SavedText(), m.c.Text()))
	m.setMode(state.REVIEW)
}

func (m *model) handleReviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "r":
		m.setMode(state.CONFIRM)
		return nil
	}
	var cmd tea.Cmd
	m.review, cmd = m.review.Update(msg)
	return cmd
}

func (m model) viewReview(h int) string {
	head := titleStyle.Render("Unsaved changes: " + notepad.DisplayName(m.c.Path()))
	foot := faintStyle.Render("↑/↓/pgup/pgdn: scroll   esc: back")
	box := boxStyle.Render(head + "\n" + m.review.View() + "\n" + foot)
	return lipgloss.Place(m.ui.Width, h, lipgloss.Center, lipgloss.Center, box)
}

// ===== Alert =====

func (m model) viewAlert() string {
	if m.alert == nil {
		return ""
	}
	return boxStyle.Render(errStyle.Bold(true).Render(m.alert.Title) + "\n\n" +
		wrapText(m.alert.Message, dialogWidth) + "\n\n" +
		faintStyle.Render("Press any key"))
}
