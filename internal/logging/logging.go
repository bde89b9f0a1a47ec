// Package logging writes structured logs to a per-process file in the XDG
// state directory. Nothing is written to the terminal the bar is drawn on.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

// ErrInvalidLogLevel is returned when an unrecognised log level is provided.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Logger is a charm logger bound to its log file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a Logger writing to $XDG_STATE_HOME/keybar/keybar-<pid>.log.
// An existing file of the same name is truncated. If level is empty the
// logger discards everything and no file is created.
// Valid levels: debug, info, warn, error (case-insensitive).
func New(level string) (*Logger, error) {
	if level == "" {
		return &Logger{Logger: log.New(io.Discard)}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	path, err := xdg.StateFile(fmt.Sprintf("keybar/keybar-%d.log", os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	// #nosec G304 - path is built from the XDG state dir and our pid
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	l := &Logger{
		Logger: log.NewWithOptions(f, log.Options{
			Level:           lvl,
			ReportTimestamp: true,
			Prefix:          "keybar",
		}),
		file: f,
	}
	l.Info("keybar started", "pid", os.Getpid(), "level", lvl, "log_path", path)
	return l, nil
}

// Path returns the log file path, or "" for a discarding logger.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file if open.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Setup creates a Logger and installs it as the package-level default, so
// log.Warn and friends anywhere in the program end up in the file.
func Setup(level string) (*Logger, error) {
	l, err := New(level)
	if err != nil {
		return nil, err
	}
	log.SetDefault(l.Logger)
	return l, nil
}

// ParseLevel maps a level name to a charm log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: %s (use debug, info, warn, error)", ErrInvalidLogLevel, level)
	}
}
