package util

import (
	"testing"

	"notepad/internal/textfile"
	"notepad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestComputeTagsOrder(t *testing.T) {
	tags := ComputeTags("abc", textfile.UTF8)
	want := []state.TagKind{state.ENCODING, state.LINE_ENDING, state.CHARS}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, k := range want {
		if tags[i].Kind != k {
			t.Fatalf("tag %d: expected kind %v, got %v", i, k, tags[i].Kind)
		}
	}
}

func TestComputeTagsCountsRunes(t *testing.T) {
	tags := ComputeTags("héllo 世界", textfile.UTF8)
	i, ok := findKind(tags, state.CHARS)
	if !ok {
		t.Fatalf("expected CHARS tag")
	}
	if tags[i].Value != 8 {
		t.Fatalf("expected 8 chars, got %d", tags[i].Value)
	}
}

func TestComputeTagsLineEnding(t *testing.T) {
	tags := ComputeTags("a\r\nb", textfile.Latin1)
	i, _ := findKind(tags, state.LINE_ENDING)
	if tags[i].Text != "CRLF" {
		t.Fatalf("expected CRLF, got %q", tags[i].Text)
	}
	i, _ = findKind(tags, state.ENCODING)
	if tags[i].Text != "Latin-1" {
		t.Fatalf("expected Latin-1, got %q", tags[i].Text)
	}
}

func TestComputeTagsDefaultsEncoding(t *testing.T) {
	tags := ComputeTags("", "")
	if tags[0].Text != "UTF-8" {
		t.Fatalf("expected UTF-8 default, got %q", tags[0].Text)
	}
}

func TestNoColorExplicit(t *testing.T) {
	if !NoColor(true) {
		t.Fatalf("explicit NoColor must win")
	}
	t.Setenv("NO_COLOR", "1")
	if !NoColor(false) {
		t.Fatalf("NO_COLOR env must disable color")
	}
}
