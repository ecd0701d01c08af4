package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint       = lipgloss.NewStyle().Faint(true)
)

const Header = "SAVED vs CURRENT"

type DiffView struct {
	NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: noColor} }

func (v DiffView) render(st lipgloss.Style, s string) string {
	if v.NoColor || s == "" {
		return s
	}
	return st.Render(s)
}

// View renders a unified diff of the saved text against the current buffer.
// Changed blocks with the same number of lines on both sides get
// character-level spans; other blocks are shown as whole removed and added
// lines.
func (v DiffView) View(before, after string) string {
	var sb strings.Builder
	sb.WriteString(Header + "\n")
	if before == after {
		sb.WriteString("No changes\n")
		return sb.String()
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitLines(df.Text) {
				sb.WriteString("  " + v.render(faint, l) + "\n")
			}
		case dmp.DiffDelete:
			del := splitLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				ins := splitLines(diffs[i+1].Text)
				i++
				if len(del) == len(ins) {
					for j := range del {
						v.writePair(&sb, d, del[j], ins[j])
					}
					continue
				}
				v.writeLines(&sb, "- ", diffDelLine, del)
				v.writeLines(&sb, "+ ", diffAddLine, ins)
				continue
			}
			v.writeLines(&sb, "- ", diffDelLine, del)
		case dmp.DiffInsert:
			v.writeLines(&sb, "+ ", diffAddLine, splitLines(df.Text))
		}
	}
	return sb.String()
}

func (v DiffView) writeLines(sb *strings.Builder, prefix string, st lipgloss.Style, lines []string) {
	for _, l := range lines {
		sb.WriteString(v.render(st, prefix+l) + "\n")
	}
}

// writePair renders one changed line as a removed and an added line with
// the differing characters underlined.
func (v DiffView) writePair(sb *strings.Builder, d *dmp.DiffMatchPatch, bl, al string) {
	diffs := d.DiffMain(bl, al, false)
	diffs = d.DiffCleanupSemantic(diffs)

	sb.WriteString(v.render(diffDelLine, "- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(v.render(diffDelChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(v.render(diffDelLine, df.Text))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(v.render(diffAddLine, "+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(v.render(diffAddChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(v.render(diffAddLine, df.Text))
		}
	}
	sb.WriteString("\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
