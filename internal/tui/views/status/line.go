package status

import (
	"notepad/internal/textfile"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
	"notepad/internal/tui/widgets/statusbar"
	chips "notepad/internal/tui/widgets/tagchips"
)

// Render is a thin adapter composing the status bar from the status text and
// the document chips.
func Render(s state.UIState, msg, text string, enc textfile.Encoding, noColor bool) string {
	tags := util.ComputeTags(text, enc)
	return statusbar.NewStatusBar(noColor).View(s, msg, chips.View(tags, noColor))
}
