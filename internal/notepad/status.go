package notepad

import (
	"fmt"
	"path/filepath"
)

const (
	appName  = "Notepad"
	untitled = "Untitled"
)

// Status line messages.
const (
	StatusReady    = "Ready"
	StatusNewFile  = "New file"
	StatusNotFound = "Not found"
)

func statusOpened(name string) string { return "Opened: " + name }

func statusSaved(name string) string { return "Saved: " + name }

func statusFound(needle string) string { return "Found: " + needle }

func statusWrap(on bool) string {
	if on {
		return "Word wrap on"
	}
	return "Word wrap off"
}

// LineCol formats a 1-based cursor position for the status line.
func LineCol(line, col int) string {
	return fmt.Sprintf("Ln %d, Col %d", line, col)
}

// Title formats the window title for a document.
func Title(path string, modified bool) string {
	star := ""
	if modified {
		star = "*"
	}
	return fmt.Sprintf("%s%s - %s", DisplayName(path), star, appName)
}

// DisplayName is the base name of path, or "Untitled".
func DisplayName(path string) string {
	if path == "" {
		return untitled
	}
	return filepath.Base(path)
}
