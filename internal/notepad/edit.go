package notepad

import (
	"log"

	"notepad/internal/document"
)

// Apply runs a cursor or content operation on the document and refreshes
// the line/column status. Content changes mark the document modified through
// the change hook.
func (c *Controller) Apply(fn func(d *document.Doc)) {
	fn(c.doc)
	c.refreshCursor()
}

// Undo reverts the last edit; with an empty history it does nothing at all.
func (c *Controller) Undo() { c.doc.Undo() }

// Redo reapplies the last undone edit; with nothing to redo it does nothing.
func (c *Controller) Redo() { c.doc.Redo() }

func (c *Controller) CanUndo() bool { return c.doc.CanUndo() }

func (c *Controller) CanRedo() bool { return c.doc.CanRedo() }

// SelectAll selects the buffer and puts the cursor at its start.
func (c *Controller) SelectAll() {
	c.doc.SelectAll()
	c.refreshCursor()
}

func (c *Controller) Copy() {
	text := c.doc.SelectedText()
	if text == "" {
		return
	}
	if err := c.clip.WriteAll(text); err != nil {
		log.Printf("copy: %v", err)
	}
}

func (c *Controller) Cut() {
	text := c.doc.SelectedText()
	if text == "" {
		return
	}
	if err := c.clip.WriteAll(text); err != nil {
		log.Printf("cut: %v", err)
		return
	}
	c.doc.DeleteSelection()
}

func (c *Controller) Paste() {
	text, err := c.clip.ReadAll()
	if err != nil {
		log.Printf("paste: %v", err)
		return
	}
	if text == "" {
		return
	}
	c.doc.Insert(text)
}
