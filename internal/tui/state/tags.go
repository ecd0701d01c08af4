package state

// TagKind enumerates the status bar chips.
type TagKind int

const (
	// Stable ordering for display: Encoding, Line ending, Chars
	ENCODING TagKind = iota
	LINE_ENDING
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters,
// Text for labels such as the encoding name.
type Tag struct {
	Kind  TagKind
	Value int
	Text  string
}
