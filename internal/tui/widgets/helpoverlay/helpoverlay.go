package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Section is a titled group of key bindings.
type Section struct {
	Title string
	Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help. Disabled bindings are left out and the key
// column is aligned per section.
func (HelpOverlay) View(sections []Section) string {
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", sec.Title)
		width := 0
		for _, k := range sec.Keys {
			if k.Enabled() && len(k.Help().Key) > width {
				width = len(k.Help().Key)
			}
		}
		for _, k := range sec.Keys {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %-*s  %s\n", width, h.Key, h.Desc)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ViewColumns lays groups of sections side by side, gap columns apart.
func (h HelpOverlay) ViewColumns(cols [][]Section, gap int) string {
	rendered := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", gap))
		}
		rendered = append(rendered, h.View(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
