package document

import "unicode"

// replace swaps the runes in r for s and leaves the cursor after s.
func (d *Doc) replace(r Range, s string) {
	n := r.Normalize()
	start := clampInt(n.Start, 0, len(d.text))
	end := clampInt(n.End, start, len(d.text))
	ins := []rune(s)

	out := make([]rune, 0, len(d.text)-(end-start)+len(ins))
	out = append(out, d.text[:start]...)
	out = append(out, ins...)
	out = append(out, d.text[end:]...)
	d.text = out

	d.cursor = start + len(ins)
	d.anchor = -1
	d.typing = false
	d.ClearHighlight()
	d.changed()
}

// target is the range an insertion replaces: the selection, or the empty
// range at the cursor.
func (d *Doc) target() Range {
	if r, ok := d.Selection(); ok {
		return r
	}
	return Range{Start: d.cursor, End: d.cursor}
}

// Insert inserts s at the cursor, replacing any selection, as one undo step.
func (d *Doc) Insert(s string) {
	r := d.target()
	if s == "" && r.IsEmpty() {
		return
	}
	d.record()
	d.replace(r, s)
}

// Type inserts a single typed rune. Consecutive typed runes are grouped into
// one undo step; whitespace closes the group after itself.
func (d *Doc) Type(c rune) {
	_, sel := d.Selection()
	if !d.typing || sel {
		d.record()
	}
	d.replace(d.target(), string(c))
	d.typing = !unicode.IsSpace(c)
}

// Backspace deletes the selection, or the rune before the cursor.
func (d *Doc) Backspace() bool {
	if d.DeleteSelection() {
		return true
	}
	if d.cursor == 0 {
		return false
	}
	d.record()
	d.replace(Range{Start: d.cursor - 1, End: d.cursor}, "")
	return true
}

// DeleteForward deletes the selection, or the rune after the cursor.
func (d *Doc) DeleteForward() bool {
	if d.DeleteSelection() {
		return true
	}
	if d.cursor >= len(d.text) {
		return false
	}
	d.record()
	d.replace(Range{Start: d.cursor, End: d.cursor + 1}, "")
	return true
}

// DeleteSelection removes the selected text as one undo step.
func (d *Doc) DeleteSelection() bool {
	r, ok := d.Selection()
	if !ok {
		return false
	}
	d.record()
	d.replace(r, "")
	return true
}

// Reset replaces the whole content, puts the cursor at the start and clears
// the history. The change hook still fires.
func (d *Doc) Reset(text string) {
	d.ResetHistory()
	d.replace(Range{Start: 0, End: len(d.text)}, text)
	d.cursor = 0
}
