package notepad

// Find searches for needle from the cursor, wrapping to the start of the
// buffer. A match is highlighted and the cursor moves to its end. An empty
// needle only clears the previous highlight.
func (c *Controller) Find(needle string, matchCase bool) bool {
	c.doc.ClearHighlight()
	if needle == "" {
		return false
	}
	c.lastNeedle, c.lastMatchCase = needle, matchCase

	r, ok := c.doc.Find(needle, matchCase)
	if !ok {
		c.setStatus(StatusNotFound)
		return false
	}
	c.doc.SetCursor(r.End)
	c.doc.SetHighlight(r)
	c.setStatus(statusFound(needle))
	return true
}

// FindNext repeats the last search. It reports false without searching when
// nothing has been searched for yet.
func (c *Controller) FindNext() bool {
	if c.lastNeedle == "" {
		return false
	}
	return c.Find(c.lastNeedle, c.lastMatchCase)
}

// HasLastFind reports whether FindNext has something to repeat.
func (c *Controller) HasLastFind() bool { return c.lastNeedle != "" }
