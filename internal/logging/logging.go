// Package logging builds the structured loggers used across the framework.
//
// Loggers are log/slog loggers backed by a tint handler. The level lives in
// a slog.LevelVar so it can be changed at runtime, for example when the
// configuration file is reloaded. The terminal is owned by the renderer
// while the framework runs, so output normally goes to a log file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures a logger.
type Options struct {
	// Level is the minimum level to output.
	Level slog.Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// NoColor disables ANSI colors. Set it when writing to a file.
	NoColor bool
}

// Logger couples a slog.Logger with its adjustable level.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
}

// New creates a logger.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	handler := tint.NewHandler(opts.Output, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	})
	return &Logger{Logger: slog.New(handler), level: level}
}

// SetLevel changes the minimum level of this logger and every logger
// derived from it.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Component returns a child logger tagged with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// OpenFile opens path for appending, creating it if needed.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
