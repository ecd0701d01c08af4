package document

import "unicode"

// MoveTo places the cursor at rune offset i. With extend the selection grows
// from the current anchor (or the old cursor); without it the selection is
// dropped.
func (d *Doc) MoveTo(i int, extend bool) {
	i = clampInt(i, 0, len(d.text))
	if extend {
		if d.anchor < 0 {
			d.anchor = d.cursor
		}
	} else {
		d.anchor = -1
	}
	d.cursor = i
	d.typing = false
}

func (d *Doc) Left(extend bool) {
	if r, ok := d.Selection(); ok && !extend {
		d.MoveTo(r.Start, false)
	} else {
		d.MoveTo(d.cursor-1, extend)
	}
}

func (d *Doc) Right(extend bool) {
	if r, ok := d.Selection(); ok && !extend {
		d.MoveTo(r.End, false)
	} else {
		d.MoveTo(d.cursor+1, extend)
	}
}

func (d *Doc) LineStart(extend bool) {
	d.MoveTo(d.lineStart(d.cursor), extend)
}

func (d *Doc) LineEnd(extend bool) {
	d.MoveTo(d.lineEnd(d.cursor), extend)
}

func (d *Doc) DocStart(extend bool) {
	d.MoveTo(0, extend)
}

func (d *Doc) DocEnd(extend bool) {
	d.MoveTo(len(d.text), extend)
}

// WordLeft moves to the start of the previous word.
func (d *Doc) WordLeft(extend bool) {
	i := d.cursor
	for i > 0 && !isWord(d.text[i-1]) {
		i--
	}
	for i > 0 && isWord(d.text[i-1]) {
		i--
	}
	d.MoveTo(i, extend)
}

// WordRight moves past the end of the next word.
func (d *Doc) WordRight(extend bool) {
	i := d.cursor
	for i < len(d.text) && !isWord(d.text[i]) {
		i++
	}
	for i < len(d.text) && isWord(d.text[i]) {
		i++
	}
	d.MoveTo(i, extend)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
