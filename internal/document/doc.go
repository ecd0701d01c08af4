// Package document implements the editable text surface of notepad: a rune
// buffer with a cursor, an optional selection, an optional find highlight and
// an unbounded linear undo/redo history.
//
// Offsets are rune indices into the text. Every content mutation invokes the
// change hook registered with OnChange; cursor and selection changes do not.
package document
