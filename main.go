// Copyright
// SPDX-License-Identifier: MIT
// notepad: a plain-text editor for the terminal in the manner of Windows Notepad
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"notepad/internal/config"
	"notepad/internal/notepad"
	"notepad/internal/tui"
	"notepad/internal/tui/util"
)

const Version = "0.1.0"

var (
	flagConfig      string
	flagLogFile     string
	flagNoWrap      bool
	flagNoStatusBar bool
	flagNoColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "notepad [file]",
	Short: "A simple Notepad-like text editor for the terminal",
	Long: `notepad edits one plain-text file at a time. It offers New, Open, Save and
Save As, undo, clipboard, Find with wrap-around, word wrap and a status bar.
A file named on the command line is opened, or started empty if it does not exist.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		logPath := settings.LogFile
		if logPath == "" {
			logPath = os.Getenv("NOTEPAD_LOG")
		}
		logFile, err := openLogFile(logPath)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		if logFile != nil {
			defer logFile.Close()
			log.SetOutput(logFile)
		} else {
			log.SetOutput(io.Discard)
		}

		c := notepad.New(notepad.Options{
			View: notepad.ViewState{WordWrap: settings.WordWrap, StatusBar: settings.StatusBar},
		})
		if len(args) == 1 {
			c.OpenOrCreate(args[0])
		}

		return tui.Run(c, tui.Options{
			NoColor:  util.NoColor(settings.NoColor),
			TabWidth: settings.TabWidth,
			Version:  Version,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the notepad version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "notepad", Version)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "settings file (default "+displayDefault()+")")
	f.StringVar(&flagLogFile, "log-file", "", "append debug logs to this file (or set NOTEPAD_LOG)")
	f.BoolVar(&flagNoWrap, "no-wrap", false, "start with word wrap off")
	f.BoolVar(&flagNoStatusBar, "no-status-bar", false, "start with the status bar hidden")
	f.BoolVar(&flagNoColor, "no-color", false, "disable colors (also honors NO_COLOR)")
	rootCmd.AddCommand(versionCmd)
}

func displayDefault() string {
	if p := config.DefaultPath(); p != "" {
		return p
	}
	return "none"
}

// loadSettings reads the settings file, then applies command-line flags on
// top. An explicit --config must exist; the default location is optional.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, optional := flagConfig, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	s, err := config.Load(path, optional)
	if err != nil {
		return s, err
	}
	if flagNoWrap {
		s.WordWrap = false
	}
	if flagNoStatusBar {
		s.StatusBar = false
	}
	if flagNoColor {
		s.NoColor = true
	}
	if cmd.Flags().Changed("log-file") {
		s.LogFile = flagLogFile
	}
	return s, nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== notepad %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "notepad: %v\n", err)
		os.Exit(1)
	}
}
