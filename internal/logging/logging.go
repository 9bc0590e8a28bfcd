// Package logging builds the charmbracelet/log logger used across t2048.
//
// The TUI owns the terminal while a game runs, so logs normally go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Stderr is the File value that sends logs to standard error.
const Stderr = "-"

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // path, Stderr, or empty to discard
	Format string // text, json or logfmt; empty means text
	Prefix string
}

// New creates a logger from opts. The returned close function releases the
// log file and is safe to call when no file was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer
	closeFn := func() error { return nil }

	switch opts.File {
	case "":
		w = io.Discard
	case Stderr:
		w = os.Stderr
	default:
		if dir := filepath.Dir(opts.File); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.File, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("logging: unknown format %q", format)
	}
}
