package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/termweave/internal/logging"
	"github.com/dshills/termweave/internal/renderer/core"
)

// Tick interval bounds.
const (
	MinTickInterval = time.Millisecond
	MaxTickInterval = time.Second
)

// Config holds the runtime settings.
type Config struct {
	// TickInterval is the scheduler clock period.
	TickInterval Duration `toml:"tick_interval" yaml:"tick_interval"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFile receives log output. Empty discards it unless the
	// application is given its own logger.
	LogFile string `toml:"log_file" yaml:"log_file"`

	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse" yaml:"mouse"`

	// Paste enables bracketed paste.
	Paste bool `toml:"paste" yaml:"paste"`

	// Background is the root background color, "default" or a hex color.
	Background string `toml:"background" yaml:"background"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickInterval: Duration(20 * time.Millisecond),
		LogLevel:     "info",
		Mouse:        true,
		Paste:        true,
		Background:   "default",
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate checks every setting and joins the failures.
func (c *Config) Validate() error {
	var errs []error

	if d := c.TickInterval.Std(); d < MinTickInterval || d > MaxTickInterval {
		errs = append(errs, &ValidationError{
			Field:   "tick_interval",
			Message: fmt.Sprintf("must be between %v and %v", MinTickInterval, MaxTickInterval),
			Value:   d,
		})
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Message: "must be debug, info, warn or error",
			Value:   c.LogLevel,
		})
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "background",
			Message: err.Error(),
			Value:   c.Background,
		})
	}

	return errors.Join(errs...)
}

// BackgroundColor parses Background.
func (c *Config) BackgroundColor() (core.Color, error) {
	switch strings.ToLower(strings.TrimSpace(c.Background)) {
	case "", "default":
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(strings.TrimSpace(c.Background))
}

// Duration is a time.Duration written as a string such as "20ms" in
// config files.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a string", node.Line)
	}
	return d.UnmarshalText([]byte(node.Value))
}
