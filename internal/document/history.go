package document

type snapshot struct {
	text   string
	cursor int
	anchor int
}

// history is unbounded in both directions.
type history struct {
	undo []snapshot
	redo []snapshot
}

func (d *Doc) snapshot() snapshot {
	return snapshot{text: string(d.text), cursor: d.cursor, anchor: d.anchor}
}

func (d *Doc) restore(s snapshot) {
	d.text = []rune(s.text)
	d.cursor = clampInt(s.cursor, 0, len(d.text))
	d.anchor = -1
	if s.anchor >= 0 {
		d.anchor = clampInt(s.anchor, 0, len(d.text))
	}
	d.typing = false
	d.ClearHighlight()
}

// record pushes the current state as an undo step and invalidates redo.
func (d *Doc) record() {
	d.hist.undo = append(d.hist.undo, d.snapshot())
	d.hist.redo = nil
}

func (d *Doc) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Doc) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo reverts the last edit step. It returns false, changing nothing, when
// the history is empty.
func (d *Doc) Undo() bool {
	if len(d.hist.undo) == 0 {
		return false
	}
	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, d.snapshot())
	d.restore(prev)
	d.changed()
	return true
}

// Redo reapplies the last undone step. It returns false when there is none.
func (d *Doc) Redo() bool {
	if len(d.hist.redo) == 0 {
		return false
	}
	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]
	d.hist.undo = append(d.hist.undo, d.snapshot())
	d.restore(next)
	d.changed()
	return true
}

// ResetHistory forgets all undo and redo steps.
func (d *Doc) ResetHistory() {
	d.hist = history{}
	d.typing = false
}
