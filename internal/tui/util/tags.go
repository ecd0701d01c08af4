package util

import (
	"unicode/utf8"

	"notepad/internal/textfile"
	"notepad/internal/tui/state"
)

// ComputeTags calculates the status bar chips for a document: the encoding
// it was read with, its line-ending style and its length in characters.
//
// The returned slice preserves a stable order:
//
//	Encoding, Line ending, Chars
func ComputeTags(text string, enc textfile.Encoding) []state.Tag {
	if enc == "" {
		enc = textfile.UTF8
	}
	return []state.Tag{
		{Kind: state.ENCODING, Text: string(enc)},
		{Kind: state.LINE_ENDING, Text: textfile.LineEnding(text)},
		{Kind: state.CHARS, Value: utf8.RuneCountInString(text)},
	}
}
