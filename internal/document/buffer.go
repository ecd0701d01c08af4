package document

// Doc is the text surface. The zero value is not usable; call New.
type Doc struct {
	text   []rune
	cursor int
	anchor int // selection anchor; -1 when nothing is selected

	highlight    Range
	hasHighlight bool

	hist     history
	typing   bool // last edit was a typed rune that can absorb the next one
	onChange func()
}

// New returns a document holding text with the cursor at the start.
func New(text string) *Doc {
	return &Doc{text: []rune(text), anchor: -1}
}

// OnChange registers fn to run after every content mutation.
func (d *Doc) OnChange(fn func()) { d.onChange = fn }

func (d *Doc) changed() {
	if d.onChange != nil {
		d.onChange()
	}
}

// Text returns the full content.
func (d *Doc) Text() string { return string(d.text) }

// Len returns the content length in runes.
func (d *Doc) Len() int { return len(d.text) }

// Slice returns the text in r, clamped to the document.
func (d *Doc) Slice(r Range) string {
	n := r.Normalize()
	s := clampInt(n.Start, 0, len(d.text))
	e := clampInt(n.End, s, len(d.text))
	return string(d.text[s:e])
}

// Runes exposes the content for read-only scanning by renderers.
func (d *Doc) Runes() []rune { return d.text }

func (d *Doc) Cursor() int { return d.cursor }

// SetCursor moves the cursor, dropping any selection.
func (d *Doc) SetCursor(i int) {
	d.cursor = clampInt(i, 0, len(d.text))
	d.anchor = -1
	d.typing = false
}

// Selection returns the selected range, normalized.
func (d *Doc) Selection() (Range, bool) {
	if d.anchor < 0 || d.anchor == d.cursor {
		return Range{}, false
	}
	return Range{Start: d.anchor, End: d.cursor}.Normalize(), true
}

// Select selects r and leaves the cursor at r.End.
func (d *Doc) Select(r Range) {
	d.anchor = clampInt(r.Start, 0, len(d.text))
	d.cursor = clampInt(r.End, 0, len(d.text))
	d.typing = false
}

// SelectAll selects the whole buffer with the cursor at the start.
func (d *Doc) SelectAll() {
	d.anchor = len(d.text)
	d.cursor = 0
	d.typing = false
}

func (d *Doc) ClearSelection() { d.anchor = -1 }

// SelectedText returns the selected text, or "" without a selection.
func (d *Doc) SelectedText() string {
	r, ok := d.Selection()
	if !ok {
		return ""
	}
	return d.Slice(r)
}

// Highlight returns the find highlight, if any.
func (d *Doc) Highlight() (Range, bool) { return d.highlight, d.hasHighlight }

func (d *Doc) SetHighlight(r Range) {
	d.highlight = r.Normalize()
	d.hasHighlight = true
}

func (d *Doc) ClearHighlight() {
	d.highlight = Range{}
	d.hasHighlight = false
}

// PosOf converts a rune offset to a line/column position.
func (d *Doc) PosOf(offset int) Pos {
	offset = clampInt(offset, 0, len(d.text))
	line, start := 0, 0
	for i := 0; i < offset; i++ {
		if d.text[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return Pos{Line: line, Col: offset - start}
}

// OffsetOf converts a line/column position to a rune offset, clamping the
// column to the line length.
func (d *Doc) OffsetOf(p Pos) int {
	if p.Line < 0 {
		return 0
	}
	line, start := 0, 0
	for i := 0; i < len(d.text) && line < p.Line; i++ {
		if d.text[i] == '\n' {
			line++
			start = i + 1
		}
	}
	if line < p.Line {
		return len(d.text)
	}
	end := d.lineEnd(start)
	return start + clampInt(p.Col, 0, end-start)
}

// CursorPos is PosOf(Cursor()).
func (d *Doc) CursorPos() Pos { return d.PosOf(d.cursor) }

// LineCount returns the number of logical lines (at least 1).
func (d *Doc) LineCount() int {
	n := 1
	for _, r := range d.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Lines splits the content on '\n'.
func (d *Doc) lineStart(i int) int {
	for i > 0 && d.text[i-1] != '\n' {
		i--
	}
	return i
}

func (d *Doc) lineEnd(i int) int {
	for i < len(d.text) && d.text[i] != '\n' {
		i++
	}
	return i
}
