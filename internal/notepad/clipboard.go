package notepad

import (
	"log"

	"github.com/atotto/clipboard"
)

// Clipboard is where Cut and Copy put text and Paste takes it from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard and keeps an in-process copy for
// hosts without one (no xclip/xsel, SSH sessions).
type SystemClipboard struct {
	local string
}

func (s *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return s.local, nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard read: %v", err)
		return s.local, nil
	}
	return text, nil
}

func (s *SystemClipboard) WriteAll(text string) error {
	s.local = text
	if clipboard.Unsupported {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard write: %v", err)
	}
	return nil
}

// MemoryClipboard never leaves the process.
type MemoryClipboard struct {
	Text string
}

func (m *MemoryClipboard) ReadAll() (string, error) { return m.Text, nil }

func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	return nil
}
