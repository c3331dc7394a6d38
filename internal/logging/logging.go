// Package logging builds the charmbracelet/log logger used across pomod.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "pomod",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// OpenFile creates a logger appending to path. The TUI owns the terminal, so
// interactive runs always log to a file.
func OpenFile(path string, opts Options) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opts), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
