package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/document"
	"notepad/internal/notepad"
	"notepad/internal/tui/state"
	"notepad/internal/tui/views/menu"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	c := notepad.New(notepad.Options{View: notepad.DefaultView(), Clipboard: &notepad.MemoryClipboard{}})
	m := newModel(c, Options{NoColor: true, Version: "test"})
	return update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(m model, msg tea.Msg) model {
	nm, _ := m.Update(msg)
	return nm.(model)
}

func updateCmd(m model, msg tea.Msg) (model, tea.Cmd) {
	nm, cmd := m.Update(msg)
	return nm.(model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingUpdatesDocumentAndView(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("hello"))
	if got := m.c.Text(); got != "hello" {
		t.Fatalf("text=%q, want hello", got)
	}
	view := m.View()
	for _, want := range []string{"Untitled* - Notepad", "hello", "Ln 1, Col 6", "[5 chars]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEnterTabBackspace(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("ab"))
	m = update(m, keyOf(tea.KeyEnter))
	m = update(m, keyOf(tea.KeyTab))
	m = update(m, runes("c"))
	m = update(m, keyOf(tea.KeyBackspace))
	if got, want := m.c.Text(), "ab\n\t"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestPasteInsertsAsOneStep(t *testing.T) {
	m := newTestModel(t)
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("two words"), Paste: true})
	if m.c.Text() != "two words" {
		t.Fatalf("text=%q", m.c.Text())
	}
	m = update(m, keyOf(tea.KeyCtrlZ))
	if m.c.Text() != "" {
		t.Fatalf("expected a paste to undo in one step, got %q", m.c.Text())
	}
}

func TestNewWithChangesAsksAndCancelKeepsText(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("draft"))
	m = update(m, keyOf(tea.KeyCtrlN))
	if m.ui.Mode != state.CONFIRM {
		t.Fatalf("mode=%v, want CONFIRM", m.ui.Mode)
	}
	if !strings.Contains(m.View(), "Do you want to save changes to Untitled?") {
		t.Fatalf("prompt missing:\n%s", m.View())
	}
	m = update(m, runes("c"))
	if m.ui.Mode != state.EDIT || m.c.Text() != "draft" || !m.c.Modified() {
		t.Fatalf("cancel changed state: mode=%v text=%q", m.ui.Mode, m.c.Text())
	}
}

func TestNewDontSave(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("draft"))
	m = update(m, keyOf(tea.KeyCtrlN))
	m = update(m, runes("d"))
	if m.c.Text() != "" || m.c.Status() != notepad.StatusNewFile {
		t.Fatalf("expected a new file, text=%q status=%q", m.c.Text(), m.c.Status())
	}
}

func TestSaveUntitledThroughPicker(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t)
	m = update(m, runes("abc"))
	m = update(m, keyOf(tea.KeyCtrlS))
	if m.ui.Mode != state.FILE || !m.file.save {
		t.Fatalf("expected the Save As picker, mode=%v", m.ui.Mode)
	}
	m.file.input.SetValue(filepath.Join(dir, "notes"))
	m = update(m, keyOf(tea.KeyEnter))

	if m.ui.Mode != state.EDIT {
		t.Fatalf("mode=%v, want EDIT", m.ui.Mode)
	}
	b, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	if err != nil || string(b) != "abc" {
		t.Fatalf("saved file=%q err=%v", b, err)
	}
	if got, want := m.c.Status(), "Saved: notes.txt"; got != want {
		t.Fatalf("status=%q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "notes.txt - Notepad") {
		t.Fatalf("title not refreshed:\n%s", m.View())
	}
}

func TestOpenThroughPicker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("Hello\nWorld"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t)
	m = update(m, keyOf(tea.KeyCtrlO))
	if m.ui.Mode != state.FILE || m.file.save {
		t.Fatalf("expected the Open picker, mode=%v", m.ui.Mode)
	}
	m.file.input.SetValue(path)
	m = update(m, keyOf(tea.KeyEnter))
	if m.c.Text() != "Hello\nWorld" || m.c.Status() != "Opened: hello.txt" {
		t.Fatalf("open failed: text=%q status=%q", m.c.Text(), m.c.Status())
	}
}

func TestOpenPickerRejectsMissingFile(t *testing.T) {
	m := newTestModel(t)
	m = update(m, keyOf(tea.KeyCtrlO))
	m.file.input.SetValue(filepath.Join(t.TempDir(), "nope.txt"))
	m = update(m, keyOf(tea.KeyEnter))
	if m.ui.Mode != state.FILE || !strings.HasPrefix(m.file.msg, "! not found") {
		t.Fatalf("expected the picker to stay open with a message, mode=%v msg=%q", m.ui.Mode, m.file.msg)
	}
	m = update(m, keyOf(tea.KeyEsc))
	if m.ui.Mode != state.EDIT || m.c.Pending() != notepad.RequestNone {
		t.Fatalf("esc must cancel the picker")
	}
}

func TestPickerSuggestionsFollowFilter(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestModel(t)
	m = update(m, keyOf(tea.KeyCtrlO))
	m.file.input.SetValue(dir + string(filepath.Separator))
	m.file.computeSuggestions()
	if len(m.file.suggest) != 1 || !strings.HasSuffix(m.file.suggest[0], "a.txt") {
		t.Fatalf("text filter suggestions=%v", m.file.suggest)
	}
	m = update(m, keyOf(tea.KeyCtrlT))
	if len(m.file.suggest) != 2 {
		t.Fatalf("all-files suggestions=%v", m.file.suggest)
	}
	m = update(m, keyOf(tea.KeyTab))
	if !strings.HasSuffix(m.file.input.Value(), "a.txt") {
		t.Fatalf("tab should complete the first suggestion, got %q", m.file.input.Value())
	}
}

func TestSaveErrorShowsAlert(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("x"))
	m = update(m, keyOf(tea.KeyF12))
	m.file.input.SetValue(filepath.Join(t.TempDir(), "missing", "x.txt"))
	m = update(m, keyOf(tea.KeyEnter))
	if m.ui.Mode != state.ALERT {
		t.Fatalf("mode=%v, want ALERT", m.ui.Mode)
	}
	if !strings.Contains(m.View(), "Save Error") {
		t.Fatalf("alert missing:\n%s", m.View())
	}
	m = update(m, runes("k"))
	if m.ui.Mode != state.EDIT || !m.c.Modified() {
		t.Fatalf("alert should close and leave the document modified")
	}
}

func TestFindDialog(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("abcXabc"))
	m.c.Apply(func(d *document.Doc) { d.SetCursor(3) })
	m = update(m, keyOf(tea.KeyCtrlF))
	if m.ui.Mode != state.FIND {
		t.Fatalf("mode=%v, want FIND", m.ui.Mode)
	}
	m = update(m, runes("abc"))
	m = update(m, keyOf(tea.KeyEnter))
	if r, ok := m.c.Doc().Highlight(); !ok || r.Start != 4 {
		t.Fatalf("highlight=%v ok=%v, want start 4", r, ok)
	}
	m = update(m, keyOf(tea.KeyEnter))
	if r, _ := m.c.Doc().Highlight(); r.Start != 0 {
		t.Fatalf("expected wrap to start 0, got %d", r.Start)
	}
	if !strings.Contains(m.View(), "(search wrapped)") {
		t.Fatalf("expected wrap notice in status line")
	}
	m = update(m, keyOf(tea.KeyEsc))
	if m.ui.Mode != state.EDIT {
		t.Fatalf("esc should close the dialog")
	}
	m = update(m, keyOf(tea.KeyF3))
	if r, _ := m.c.Doc().Highlight(); r.Start != 4 {
		t.Fatalf("F3 should repeat the search, got %d", r.Start)
	}
	if m.ui.Notice != "" {
		t.Fatalf("notice=%q, want none for a forward match", m.ui.Notice)
	}
}

func TestFindMatchCaseToggle(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("Abc abc"))
	m.c.Apply(func(d *document.Doc) { d.SetCursor(0) })
	m = update(m, keyOf(tea.KeyCtrlF))
	m = update(m, alt('c'))
	if !m.findCase {
		t.Fatalf("alt+c should toggle match case")
	}
	m = update(m, runes("abc"))
	m = update(m, keyOf(tea.KeyEnter))
	if r, _ := m.c.Doc().Highlight(); r.Start != 4 {
		t.Fatalf("case-sensitive match at %d, want 4", r.Start)
	}
}

func TestWordWrapToggleShowsScrollbar(t *testing.T) {
	m := newTestModel(t)
	m = update(m, alt('z'))
	if m.c.View().WordWrap {
		t.Fatalf("expected word wrap off")
	}
	if !strings.Contains(m.View(), "━") {
		t.Fatalf("expected a horizontal scrollbar")
	}
	if m.c.Status() != "Word wrap off" {
		t.Fatalf("status=%q", m.c.Status())
	}
	m = update(m, alt('z'))
	if strings.Contains(m.View(), "━") {
		t.Fatalf("scrollbar should be gone with wrap on")
	}
}

func TestLongLineScrollsHorizontallyWithoutWrap(t *testing.T) {
	m := newTestModel(t)
	m = update(m, alt('z'))
	m = update(m, runes(strings.Repeat("x", 100)))
	if m.ui.Left == 0 {
		t.Fatalf("expected horizontal scroll to follow the cursor")
	}
	m = update(m, keyOf(tea.KeyHome))
	if m.ui.Left != 0 {
		t.Fatalf("expected scroll back to column 0, got %d", m.ui.Left)
	}
}

func TestMenuActivatesItems(t *testing.T) {
	m := newTestModel(t)
	m = update(m, keyOf(tea.KeyF10))
	if m.ui.Mode != state.MENU {
		t.Fatalf("mode=%v, want MENU", m.ui.Mode)
	}
	if view := m.View(); !strings.Contains(view, "Ctrl+N") || !strings.Contains(view, "Save As...") {
		t.Fatalf("file menu missing:\n%s", view)
	}
	m = update(m, keyOf(tea.KeyRight))
	m = update(m, keyOf(tea.KeyRight))
	// View > Status Bar
	m = update(m, keyOf(tea.KeyDown))
	m = update(m, keyOf(tea.KeyEnter))
	if m.ui.Mode != state.EDIT || m.c.View().StatusBar {
		t.Fatalf("expected status bar hidden, mode=%v", m.ui.Mode)
	}
	if strings.Contains(m.View(), "Ln 1, Col 1") || strings.Contains(m.View(), "Ready") {
		t.Fatalf("status bar still drawn")
	}
}

func TestAltHotkeyOpensMenu(t *testing.T) {
	m := newTestModel(t)
	m = update(m, alt('h'))
	if m.ui.Mode != state.MENU || m.menuIdx != 3 {
		t.Fatalf("expected the Help menu, mode=%v idx=%d", m.ui.Mode, m.menuIdx)
	}
	m = update(m, keyOf(tea.KeyEsc))
	if m.ui.Mode != state.EDIT {
		t.Fatalf("esc should close the menu")
	}
}

func TestExitQuitsWhenClean(t *testing.T) {
	m := newTestModel(t)
	_, cmd := updateCmd(m, keyOf(tea.KeyCtrlQ))
	if !isQuit(cmd) {
		t.Fatalf("expected tea.Quit")
	}
}

func TestExitWithChangesDontSaveQuits(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("x"))
	m, cmd := updateCmd(m, keyOf(tea.KeyCtrlQ))
	if isQuit(cmd) || m.ui.Mode != state.CONFIRM {
		t.Fatalf("expected the discard prompt first")
	}
	_, cmd = updateCmd(m, runes("n"))
	if !isQuit(cmd) {
		t.Fatalf("expected tea.Quit after Don't Save")
	}
}

func TestReviewChanges(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("added"))
	m = update(m, keyOf(tea.KeyCtrlN))
	m = update(m, runes("r"))
	if m.ui.Mode != state.REVIEW {
		t.Fatalf("mode=%v, want REVIEW", m.ui.Mode)
	}
	view := m.View()
	if !strings.Contains(view, "Unsaved changes: Untitled") || !strings.Contains(view, "+ added") {
		t.Fatalf("review missing:\n%s", view)
	}
	m = update(m, keyOf(tea.KeyEsc))
	if m.ui.Mode != state.CONFIRM {
		t.Fatalf("esc should return to the prompt, mode=%v", m.ui.Mode)
	}
}

func TestVerticalMotionKeepsColumn(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("abc"))
	m = update(m, keyOf(tea.KeyEnter))
	m = update(m, runes("d"))
	m = update(m, keyOf(tea.KeyEnter))
	m = update(m, runes("xyz"))
	m.c.Apply(func(d *document.Doc) { d.SetCursor(2) })

	m = update(m, keyOf(tea.KeyDown))
	if got := m.c.Doc().Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5 (end of short line)", got)
	}
	m = update(m, keyOf(tea.KeyDown))
	if got := m.c.Doc().Cursor(); got != 8 {
		t.Fatalf("cursor=%d, want 8 (column kept)", got)
	}
	if got := m.c.Status(); got != "Ln 3, Col 3" {
		t.Fatalf("status=%q", got)
	}
}

func TestMouseClickPlacesCursor(t *testing.T) {
	m := newTestModel(t)
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello\nworld"), Paste: true})
	m = update(m, tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.c.Doc().Cursor(); got != 8 {
		t.Fatalf("cursor=%d, want 8", got)
	}
	m = update(m, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.c.Doc().SelectedText(); got != "rl" {
		t.Fatalf("drag selection=%q, want %q", got, "rl")
	}
	m = update(m, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease})
	if m.dragging {
		t.Fatalf("release should end the drag")
	}
}

func TestHelpAndAbout(t *testing.T) {
	m := newTestModel(t)
	m = update(m, keyOf(tea.KeyF1))
	if m.ui.Mode != state.ABOUT || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("expected the shortcuts dialog:\n%s", m.View())
	}
	m = update(m, runes("x"))
	if m.ui.Mode != state.EDIT || m.c.Text() != "" {
		t.Fatalf("any key should only dismiss the dialog")
	}
	m = update(m, alt('h'))
	m = update(m, keyOf(tea.KeyDown))
	m = update(m, keyOf(tea.KeyEnter))
	if !strings.Contains(m.View(), "Notepad test") {
		t.Fatalf("expected the About dialog:\n%s", m.View())
	}
}

func TestStartupOpenErrorShowsAlert(t *testing.T) {
	c := notepad.New(notepad.Options{View: notepad.DefaultView(), Clipboard: &notepad.MemoryClipboard{}})
	if c.OpenOrCreate(t.TempDir()) {
		t.Fatalf("opening a directory should fail")
	}
	m := update(newModel(c, Options{NoColor: true}), tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.ui.Mode != state.ALERT || !strings.Contains(m.View(), "Open Error") {
		t.Fatalf("expected the open error on first paint, mode=%v", m.ui.Mode)
	}
	m = update(m, runes("x"))
	if m.ui.Mode != state.EDIT || m.c.Text() != "" {
		t.Fatalf("dismissing the alert should not type, text=%q", m.c.Text())
	}
}

func TestBracketedPasteNormalizesLineBreaks(t *testing.T) {
	m := newTestModel(t)
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\rtwo\rthree"), Paste: true})
	if got, want := m.c.Text(), "one\ntwo\nthree"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := m.c.Doc().LineCount(); got != 3 {
		t.Fatalf("pasted 3 lines, document has %d", got)
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\r\na\tb\x07"), Paste: true})
	if got, want := m.c.Text(), "one\ntwo\nthree\na\tb"; got != want {
		t.Fatalf("text=%q, want %q (CRLF folded, tab kept, bell dropped)", got, want)
	}
}

func TestEditMenuSkipsItemsWithNothingToDo(t *testing.T) {
	m := newTestModel(t)
	m = update(m, alt('e'))
	if m.menus[m.menuIdx].Selected(m.menuSel) != menu.CmdUndo {
		t.Fatalf("expected Undo to be the first Edit item")
	}
	m = update(m, keyOf(tea.KeyEnter))
	if m.ui.Mode != state.MENU {
		t.Fatalf("Undo with empty history should leave the menu open, mode=%v", m.ui.Mode)
	}
	m = update(m, keyOf(tea.KeyEsc))

	m = update(m, runes("abc"))
	m = update(m, alt('e'))
	m = update(m, keyOf(tea.KeyEnter))
	if m.ui.Mode != state.EDIT || m.c.Text() != "" {
		t.Fatalf("Undo should run once there is history, text=%q mode=%v", m.c.Text(), m.ui.Mode)
	}
	if !m.enabled(menu.CmdRedo) || m.enabled(menu.CmdCopy) {
		t.Fatalf("redo should be enabled and copy disabled without a selection")
	}
}

func TestFindKeepsMatchClearOfDialog(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		if i == 10 {
			b.WriteString("needle here\n")
			continue
		}
		b.WriteString("line\n")
	}
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t)
	if !m.c.OpenPath(path) {
		t.Fatalf("open failed: %+v", m.c.TakeAlert())
	}
	m = update(m, keyOf(tea.KeyCtrlF))
	m = update(m, runes("needle"))
	m = update(m, keyOf(tea.KeyEnter))

	text, rows := m.rows()
	row, _ := m.ed.Locate(text, rows, m.c.Doc().Cursor())
	if row != 10 {
		t.Fatalf("cursor row=%d, want 10", row)
	}
	boxH := lipgloss.Height(m.viewFind())
	top := (m.textHeight() - boxH) / 2
	if rel := row - m.ui.Top; rel >= top && rel < top+boxH {
		t.Fatalf("match at screen row %d is under the dialog (rows %d-%d)", rel, top, top+boxH-1)
	}
}
