// Package notepad is the editor controller: it owns the document, the file
// it is bound to, the modified flag, the view toggles and the status line,
// and sequences the dialogs that New, Open, Save, Save As and Exit need.
// It has no terminal dependency; internal/tui drives it.
package notepad

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"notepad/internal/document"
	"notepad/internal/textfile"
)

// Alert is an error dialog the UI must show.
type Alert struct {
	Title   string
	Message string
}

// Options configure a new Controller.
type Options struct {
	View      ViewState
	Clipboard Clipboard
}

type Controller struct {
	doc      *document.Doc
	path     string
	modified bool
	encoding textfile.Encoding
	saved    string // content as last loaded or saved

	view   ViewState
	status string
	clip   Clipboard

	// ignoreChanges suppresses the change hook during bulk replacement.
	ignoreChanges bool

	flow  flow
	alert *Alert
	quit  bool

	lastNeedle    string
	lastMatchCase bool
}

// New returns a controller holding an empty untitled document.
func New(opts Options) *Controller {
	c := &Controller{
		doc:      document.New(""),
		encoding: textfile.UTF8,
		view:     opts.View,
		clip:     opts.Clipboard,
	}
	if c.clip == nil {
		c.clip = &SystemClipboard{}
	}
	c.doc.OnChange(c.contentChanged)
	c.setStatus(StatusReady)
	return c
}

func (c *Controller) Doc() *document.Doc { return c.doc }

func (c *Controller) Text() string { return c.doc.Text() }

// SavedText is the content as it was last loaded or saved.
func (c *Controller) SavedText() string { return c.saved }

func (c *Controller) Path() string { return c.path }

func (c *Controller) Modified() bool { return c.modified }

func (c *Controller) Encoding() textfile.Encoding { return c.encoding }

func (c *Controller) Title() string { return Title(c.path, c.modified) }

// Status is the current status line text, kept even while the bar is hidden.
func (c *Controller) Status() string { return c.status }

// Quit reports whether Exit has gone through.
func (c *Controller) Quit() bool { return c.quit }

// TakeAlert returns and clears the pending error dialog.
func (c *Controller) TakeAlert() *Alert {
	a := c.alert
	c.alert = nil
	return a
}

func (c *Controller) setStatus(msg string) { c.status = msg }

func (c *Controller) contentChanged() {
	if c.ignoreChanges {
		return
	}
	c.modified = true
	c.refreshCursor()
}

func (c *Controller) refreshCursor() {
	p := c.doc.CursorPos()
	c.setStatus(LineCol(p.Line+1, p.Col+1))
}

// CursorMoved refreshes the line/column status without touching the
// modified flag.
func (c *Controller) CursorMoved() { c.refreshCursor() }

// replaceAll swaps the whole content without a modified transition.
func (c *Controller) replaceAll(text string) {
	c.ignoreChanges = true
	c.doc.Reset(text)
	c.ignoreChanges = false
	c.saved = text
	c.modified = false
}

func (c *Controller) newFile() {
	c.path = ""
	c.encoding = textfile.UTF8
	c.replaceAll("")
	c.setStatus(StatusNewFile)
	log.Printf("new file")
}

// OpenPath loads path into the document. On failure it raises an Open Error
// alert and leaves everything as it was.
func (c *Controller) OpenPath(path string) bool {
	abs := absPath(path)
	text, enc, err := textfile.Read(abs)
	if err != nil {
		log.Printf("open %s: %v", abs, err)
		c.alert = &Alert{Title: "Open Error", Message: "Could not open file:\n" + err.Error()}
		return false
	}
	c.path = abs
	c.encoding = enc
	c.replaceAll(text)
	c.setStatus(statusOpened(filepath.Base(abs)))
	log.Printf("opened %s (%d bytes, %s)", abs, len(text), enc)
	return true
}

// OpenOrCreate is OpenPath for a path given on the command line: a file that
// does not exist yet gives an empty document bound to that path.
func (c *Controller) OpenOrCreate(path string) bool {
	abs := absPath(path)
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		c.newFile()
		c.path = abs
		return true
	}
	return c.OpenPath(abs)
}

// writeFile saves to the bound path. The modified flag is only cleared when
// the write succeeds.
func (c *Controller) writeFile() bool {
	text := c.doc.Text()
	if err := textfile.Write(c.path, text); err != nil {
		log.Printf("save %s: %v", c.path, err)
		c.alert = &Alert{Title: "Save Error", Message: "Could not save file:\n" + err.Error()}
		return false
	}
	c.modified = false
	c.saved = text
	c.encoding = textfile.UTF8
	c.setStatus(statusSaved(filepath.Base(c.path)))
	log.Printf("saved %s (%d bytes)", c.path, len(text))
	return true
}

func absPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
