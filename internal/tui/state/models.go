package state

// Mode is the editor's current input mode: plain editing, or one of the
// overlays that takes the keyboard.
type Mode int

const (
	EDIT Mode = iota
	MENU
	FIND
	FILE
	CONFIRM
	REVIEW
	ALERT
	ABOUT
)

// UIState holds cross-widget UI state used by the menu bar, editor and status bar.
type UIState struct {
	Mode Mode

	// Layout & scrolling
	Width  int
	Height int
	Top    int // first visible visual row
	Left   int // first visible display column (no-wrap only)

	// Notices and ephemeral messages
	Notice string
}
