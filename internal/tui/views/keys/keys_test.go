package keys

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBindingsMatchKeyMessages(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlN}, km.New},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, km.Save},
		{tea.KeyMsg{Type: tea.KeyF12}, km.SaveAs},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s"), Alt: true}, km.SaveAs},
		{tea.KeyMsg{Type: tea.KeyF3}, km.FindNx},
		{tea.KeyMsg{Type: tea.KeyCtrlHome}, km.DocStart},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, km.ShiftLeft},
	}
	for _, tc := range cases {
		if !key.Matches(tc.msg, tc.want) {
			t.Fatalf("%q did not match %v", tc.msg.String(), tc.want.Keys())
		}
	}
}

func TestRenderHelp(t *testing.T) {
	out := RenderHelp(DefaultKeyMap())
	for _, want := range []string{"File:", "ctrl+n", "f12/alt+s", "Navigation:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in help:\n%s", want, out)
		}
	}
}
