package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// View renders status chips in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.ENCODING, state.LINE_ENDING:
		return t.Text
	case state.CHARS:
		if t.Value == 1 {
			return "1 char"
		}
		return fmt.Sprintf("%d chars", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch t.Kind {
	case state.ENCODING:
		if t.Text != "UTF-8" {
			return base.Background(p.Warning).Foreground(p.Ink)
		}
		return base.Background(p.Primary)
	case state.LINE_ENDING:
		return base.Background(p.Muted)
	case state.CHARS:
		return base.Background(p.MutedDark)
	default:
		return base
	}
}
