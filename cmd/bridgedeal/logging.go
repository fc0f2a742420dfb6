package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// setupLogger configures zerolog with pretty console output for interactive
// use.
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// setupStructuredLogger configures zerolog for structured (JSON) output,
// for piping generation runs into log aggregation.
func setupStructuredLogger(debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// setupStatusLogger configures a charmbracelet/log logger for the CLI's
// user-facing status line — a handful of terse progress/result lines, as
// distinct from the structured diagnostic detail zerolog carries. Mirrors
// cmd/holdem/main.go's use of log.NewWithOptions for its own CLI-level
// messages outside the TUI.
func setupStatusLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "bridgedeal",
		Level:           level,
	})
}
