package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"notepad/internal/textfile"
)

const maxSuggestions = 8

// fileDialog is the Open / Save As picker: a path field with directory
// suggestions and a file-type filter.
type fileDialog struct {
	input   textinput.Model
	save    bool
	filter  int
	suggest []string
	sel     int
	msg     string
}

func newFileDialog(save bool, seed string) fileDialog {
	in := textinput.New()
	in.Prompt = "File name: "
	in.Width = 48
	in.SetValue(seed)
	in.CursorEnd()
	in.Focus()
	f := fileDialog{input: in, save: save}
	f.computeSuggestions()
	return f
}

func (f fileDialog) title() string {
	if f.save {
		return "Save As"
	}
	return "Open"
}

func (f *fileDialog) toggleFilter() {
	f.filter = (f.filter + 1) % len(textfile.Filters)
	f.computeSuggestions()
}

// computeSuggestions lists entries of the directory being typed whose names
// contain the typed base name. Directories are always offered; files only
// when they match the active filter.
func (f *fileDialog) computeSuggestions() {
	f.sel = 0
	in := f.input.Value()
	if strings.TrimSpace(in) == "" {
		f.suggest = nil
		return
	}
	expanded := expandPath(in)
	dir, base := expanded, ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(filepath.Separator)) {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		f.suggest = nil
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	filter := textfile.Filters[f.filter]
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		if !e.IsDir() && !filter.Match(name) {
			continue
		}
		cand := homeRelative(filepath.Join(dir, name))
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		out = append(out, cand)
		if len(out) >= maxSuggestions {
			break
		}
	}
	f.suggest = out
}

// complete replaces the field with the selected suggestion.
func (f *fileDialog) complete() {
	if len(f.suggest) == 0 {
		return
	}
	f.input.SetValue(f.suggest[f.sel])
	f.input.CursorEnd()
	f.computeSuggestions()
}

func (f *fileDialog) moveSelection(delta int) {
	if n := len(f.suggest); n > 0 {
		f.sel = ((f.sel+delta)%n + n) % n
	}
}

// seedPath is the text the picker starts with: the current file, or the
// working directory for an untitled document.
func seedPath(current string) string {
	if current != "" {
		return homeRelative(current)
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return homeRelative(wd) + string(filepath.Separator)
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, strings.TrimPrefix(p[1:], "/"))
		}
	}
	p = os.ExpandEnv(p)
	if p != "" && !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// homeRelative presents paths within the home directory with ~.
func homeRelative(p string) string {
	h, _ := os.UserHomeDir()
	if h == "" || h == string(filepath.Separator) {
		return p
	}
	if p == h {
		return "~"
	}
	if strings.HasPrefix(p, h+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(p, h)
	}
	return p
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
