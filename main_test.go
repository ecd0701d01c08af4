package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flagConfig, flagLogFile = "", ""
	flagNoWrap, flagNoStatusBar, flagNoColor = false, false, false
	t.Cleanup(func() {
		flagConfig, flagLogFile = "", ""
		flagNoWrap, flagNoStatusBar, flagNoColor = false, false, false
	})
}

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("word_wrap: true\nstatus_bar: true\ntab_width: 4\n"), 0o644))

	flagConfig = path
	flagNoWrap = true
	s, err := loadSettings(rootCmd)
	require.NoError(t, err)
	assert.False(t, s.WordWrap)
	assert.True(t, s.StatusBar)
	assert.Equal(t, 4, s.TabWidth)
}

func TestLoadSettingsExplicitConfigMustExist(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := loadSettings(rootCmd)
	assert.Error(t, err)
}

func TestOpenLogFileWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notepad.log")
	f, err := openLogFile(path)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== notepad "+Version+" started at "))

	f, err = openLogFile("")
	assert.NoError(t, err)
	assert.Nil(t, f)
}
