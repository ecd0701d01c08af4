package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the startup options read from the settings file.
// The editor never writes this file back.
type Settings struct {
	WordWrap  bool   `yaml:"word_wrap"`
	StatusBar bool   `yaml:"status_bar"`
	TabWidth  int    `yaml:"tab_width"`
	LogFile   string `yaml:"log_file,omitempty"`
	NoColor   bool   `yaml:"no_color,omitempty"`
}

func Defaults() Settings {
	return Settings{
		WordWrap:  true,
		StatusBar: true,
		TabWidth:  8,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/notepad/config.yaml (or the platform
// equivalent). It returns "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "notepad", "config.yaml")
}

// Load reads settings from path over the defaults. A missing file is not an
// error when optional is true.
func Load(path string, optional bool) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parse config YAML %s: %w", path, err)
	}
	if s.TabWidth <= 0 {
		s.TabWidth = Defaults().TabWidth
	}
	return s, nil
}
