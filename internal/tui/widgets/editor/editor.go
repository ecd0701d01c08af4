package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"notepad/internal/document"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// Row is one visual row of the text surface: the runes [Start, End) of
// logical line Line, without the newline.
type Row struct {
	Start, End int
	Line       int
	Last       bool // last row of its logical line
}

// Marks are the decorations drawn over the text.
type Marks struct {
	Cursor       int
	ShowCursor   bool
	Selection    document.Range
	HasSelection bool
	Highlight    document.Range
	HasHighlight bool
}

type Editor struct {
	Wrap     bool
	TabWidth int
	NoColor  bool
}

func NewEditor(wrap bool, tabWidth int, noColor bool) Editor {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return Editor{Wrap: wrap, TabWidth: tabWidth, NoColor: noColor}
}

// cellWidth is the number of terminal columns r takes when drawn at col.
func (e Editor) cellWidth(r rune, col int) int {
	switch {
	case r == '\t':
		return e.TabWidth - col%e.TabWidth
	case r == '\r':
		return 0
	case r < ' ' || r == 0x7f:
		return 1
	}
	return runewidth.RuneWidth(r)
}

func (e Editor) glyph(r rune, w int) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", w)
	case r == '\r':
		return ""
	case r < ' ' || r == 0x7f:
		return "?"
	}
	return string(r)
}

// Layout splits text into visual rows. With wrapping on, lines are broken at
// the last whitespace that fits in width columns, or mid-word when a single
// word is wider than the view.
func (e Editor) Layout(text []rune, width int) []Row {
	var rows []Row
	line, ls := 0, 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		rows = append(rows, e.layoutLine(text, ls, i, line, width)...)
		line++
		ls = i + 1
	}
	return rows
}

func (e Editor) layoutLine(text []rune, ls, le, line, width int) []Row {
	if !e.Wrap || width <= 0 || ls == le {
		return []Row{{Start: ls, End: le, Line: line, Last: true}}
	}
	var rows []Row
	start := ls
	for start < le {
		end, col, lastBreak := start, 0, -1
		for end < le {
			w := e.cellWidth(text[end], col)
			if col+w > width && end > start {
				break
			}
			col += w
			if unicode.IsSpace(text[end]) {
				lastBreak = end + 1
			}
			end++
		}
		if end < le && lastBreak > start {
			end = lastBreak
		}
		rows = append(rows, Row{Start: start, End: end, Line: line})
		start = end
	}
	rows[len(rows)-1].Last = true
	return rows
}

// Locate returns the visual row and display column of a rune offset.
func (e Editor) Locate(text []rune, rows []Row, offset int) (row, col int) {
	for i, r := range rows {
		if offset < r.Start {
			break
		}
		if offset < r.End || (offset == r.End && r.Last) {
			return i, e.width(text, r.Start, offset)
		}
	}
	if len(rows) == 0 {
		return 0, 0
	}
	last := rows[len(rows)-1]
	return len(rows) - 1, e.width(text, last.Start, last.End)
}

// OffsetAt maps a visual row and display column back to a rune offset,
// clamping to the row's extent.
func (e Editor) OffsetAt(text []rune, rows []Row, row, col int) int {
	if len(rows) == 0 {
		return 0
	}
	if row < 0 {
		return rows[0].Start
	}
	if row >= len(rows) {
		return rows[len(rows)-1].End
	}
	r := rows[row]
	c := 0
	for i := r.Start; i < r.End; i++ {
		w := e.cellWidth(text[i], c)
		if col < c+w {
			return i
		}
		c += w
	}
	if !r.Last && r.End > r.Start {
		return r.End - 1
	}
	return r.End
}

func (e Editor) width(text []rune, from, to int) int {
	col := 0
	for i := from; i < to && i < len(text); i++ {
		col += e.cellWidth(text[i], col)
	}
	return col
}

// ContentWidth is the widest row plus the cell the cursor takes after it.
func (e Editor) ContentWidth(text []rune, rows []Row) int {
	max := 0
	for _, r := range rows {
		if w := e.width(text, r.Start, r.End); w > max {
			max = w
		}
	}
	return max + 1
}

type cellClass int

const (
	plain cellClass = iota
	highlighted
	selected
	cursor
)

func (e Editor) styles() map[cellClass]lipgloss.Style {
	p := util.DefaultPalette()
	if e.NoColor {
		return map[cellClass]lipgloss.Style{
			highlighted: lipgloss.NewStyle().Underline(true),
			selected:    lipgloss.NewStyle().Reverse(true),
			cursor:      lipgloss.NewStyle().Reverse(true).Underline(true),
		}
	}
	return map[cellClass]lipgloss.Style{
		highlighted: lipgloss.NewStyle().Background(p.Highlight).Foreground(p.Ink),
		selected:    lipgloss.NewStyle().Background(p.Selection).Foreground(lipgloss.Color("#FFFFFF")),
		cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

func (m Marks) class(i int) cellClass {
	switch {
	case m.ShowCursor && i == m.Cursor:
		return cursor
	case m.HasSelection && m.Selection.Contains(i):
		return selected
	case m.HasHighlight && m.Highlight.Contains(i):
		return highlighted
	}
	return plain
}

// View renders height rows starting at s.Top, each s.Width columns wide and
// shifted left by s.Left when wrapping is off.
func (e Editor) View(text []rune, rows []Row, s state.UIState, height int, m Marks) string {
	if height <= 0 {
		return ""
	}
	st := e.styles()
	m.Selection = m.Selection.Normalize()
	m.Highlight = m.Highlight.Normalize()
	left := s.Left
	if e.Wrap {
		left = 0
	}

	out := make([]string, 0, height)
	for y := s.Top; y < s.Top+height; y++ {
		if y < 0 || y >= len(rows) {
			out = append(out, strings.Repeat(" ", max0(s.Width)))
			continue
		}
		out = append(out, e.renderRow(text, rows[y], left, s.Width, m, st))
	}
	return strings.Join(out, "\n")
}

func (e Editor) renderRow(text []rune, r Row, left, width int, m Marks, st map[cellClass]lipgloss.Style) string {
	var b, run strings.Builder
	runClass := plain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runClass == plain {
			b.WriteString(run.String())
		} else {
			b.WriteString(st[runClass].Render(run.String()))
		}
		run.Reset()
	}
	put := func(s string, c cellClass) {
		if c != runClass {
			flush()
			runClass = c
		}
		run.WriteString(s)
	}

	col, drawn := 0, 0
	for i := r.Start; i < r.End; i++ {
		w := e.cellWidth(text[i], col)
		c := m.class(i)
		g := e.glyph(text[i], w)
		start, end := col, col+w
		col = end
		if end <= left || w == 0 {
			if w == 0 && c == cursor && start >= left && start < left+width {
				put(" ", cursor)
				drawn++
			}
			continue
		}
		if start >= left+width {
			break
		}
		if start < left || end > left+width {
			// partly visible wide rune or tab
			vis := minInt(end, left+width) - maxInt(start, left)
			g = strings.Repeat(" ", vis)
			w = vis
		}
		put(g, c)
		drawn += w
	}
	if m.ShowCursor && m.Cursor == r.End && r.Last && col >= left && col < left+width {
		put(" ", cursor)
		drawn++
	}
	flush()
	if pad := width - drawn; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

var (
	trackStyle = lipgloss.NewStyle().Faint(true)
	thumbStyle = lipgloss.NewStyle()
)

// Scrollbar draws the horizontal scrollbar shown under the text when
// wrapping is off.
func Scrollbar(width, left, contentWidth int) string {
	if width <= 0 {
		return ""
	}
	if contentWidth < width {
		contentWidth = width
	}
	size := width * width / contentWidth
	if size < 1 {
		size = 1
	}
	pos := left * width / contentWidth
	if pos+size > width {
		pos = width - size
	}
	if pos < 0 {
		pos = 0
	}
	return trackStyle.Render(strings.Repeat("─", pos)) +
		thumbStyle.Render(strings.Repeat("━", size)) +
		trackStyle.Render(strings.Repeat("─", width-pos-size))
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
