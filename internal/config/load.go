package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TERMWEAVE_"

// Format is a config file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path or a missing file yields the
// defaults with overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			format, err := FormatOf(path)
			if err != nil {
				return nil, err
			}
			if err := decode(cfg, path, format, data); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
// Environment variables are not consulted.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := decode(cfg, "<"+string(format)+">", format, data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode rejects unknown keys so misspelled settings are reported.
func decode(cfg *Config, source string, format Format, data []byte) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return tomlError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
	return nil
}

func tomlError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}

// ApplyEnv overrides cfg with TERMWEAVE_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvPrefix + "TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, envError("TICK_INTERVAL", v, err))
		} else {
			cfg.TickInterval = Duration(d)
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}
	for _, flag := range []struct {
		name string
		dst  *bool
	}{
		{"MOUSE", &cfg.Mouse},
		{"PASTE", &cfg.Paste},
	} {
		if v, ok := lookup(EnvPrefix + flag.name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, envError(flag.name, v, err))
				continue
			}
			*flag.dst = b
		}
	}
	if v, ok := lookup(EnvPrefix + "BACKGROUND"); ok {
		cfg.Background = v
	}

	return errors.Join(errs...)
}

func envError(name, value string, err error) error {
	return &ValidationError{Field: EnvPrefix + name, Message: err.Error(), Value: value}
}
