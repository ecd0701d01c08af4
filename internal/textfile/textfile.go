// Package textfile reads and writes plain text documents.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character set a document was decoded with.
type Encoding string

const (
	UTF8   Encoding = "UTF-8"
	Latin1 Encoding = "Latin-1"
)

// DefaultExt is appended by the Save As dialog when a name has none.
const DefaultExt = ".txt"

// Read loads path as UTF-8. Content that is not valid UTF-8 is decoded as
// Latin-1, which maps every byte to one code point and cannot fail.
func Read(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	if utf8.Valid(data) {
		return string(data), UTF8, nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decode %s as latin-1: %w", filepath.Base(path), err)
	}
	return string(out), Latin1, nil
}

// Write stores text at path as UTF-8 without a byte-order mark, replacing
// any existing content. Line endings are written as they are in text.
func Write(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}

// Filter is a named set of glob patterns offered by the file dialogs.
type Filter struct {
	Name     string
	Patterns []string
}

// Filters lists the dialog filters in display order.
var Filters = []Filter{
	{Name: "Text Documents (*.txt)", Patterns: []string{"*.txt"}},
	{Name: "All Files (*.*)", Patterns: []string{"*"}},
}

// Match reports whether the base name of path matches one of f's patterns.
func (f Filter) Match(path string) bool {
	base := filepath.Base(path)
	for _, p := range f.Patterns {
		if ok, _ := filepath.Match(p, strings.ToLower(base)); ok {
			return true
		}
	}
	return false
}

// WithDefaultExt appends DefaultExt when path has no extension.
func WithDefaultExt(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + DefaultExt
}

// LineEnding reports "CRLF" when text uses Windows line endings and "LF"
// otherwise.
func LineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "CRLF"
	}
	return "LF"
}
