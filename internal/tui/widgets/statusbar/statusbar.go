package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"notepad/internal/tui/state"
)

type StatusBar struct {
	NoColor bool
}

func NewStatusBar(noColor bool) StatusBar { return StatusBar{NoColor: noColor} }

var barStyle = lipgloss.NewStyle().Reverse(true)

// View composes the status line: the status message on the left, chips on
// the right, padded or cut to the terminal width. Chips are dropped before
// the message is shortened.
func (b StatusBar) View(s state.UIState, status, chips string) string {
	width := s.Width
	if width <= 0 {
		return ""
	}
	left := " " + status
	if s.Notice != "" {
		left += "  " + s.Notice
	}
	right := ""
	if chips != "" {
		right = chips + " "
	}
	if lipgloss.Width(left)+1+lipgloss.Width(right) > width {
		right = ""
	}
	left = truncate.StringWithTail(left, uint(width-lipgloss.Width(right)), "…")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	line := left + strings.Repeat(" ", gap)
	if b.NoColor {
		return line + right
	}
	return barStyle.Render(line) + right
}
