// Package config loads the optional bindings.yaml runtime configuration.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/bindings/pkg/binding"
	"github.com/go-drift/bindings/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "bindings.yaml"

// Config represents the optional bindings.yaml configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Errors ErrorsConfig `yaml:"errors"`
}

// LogConfig controls binding traces.
type LogConfig struct {
	// Level is one of debug, info, warn or error. Defaults to info.
	Level string `yaml:"level,omitempty"`
	// Format is text or json. Defaults to text.
	Format string `yaml:"format,omitempty"`
}

// ErrorsConfig controls the global error handler.
type ErrorsConfig struct {
	// Verbose adds stack traces to reported errors.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return parse(path, data)
}

// LoadOptional reads bindings.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.format() {
	case "text", "json":
		return nil
	default:
		return &errors.BindingError{
			Op:   "config.Validate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format),
		}
	}
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, &errors.BindingError{
			Op:   "config.Validate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown log.level %q", c.Log.Level),
		}
	}
}

func (c *Config) format() string {
	f := strings.ToLower(strings.TrimSpace(c.Log.Format))
	if f == "" {
		return "text"
	}
	return f
}

// Logger builds a structured logger writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.format() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Apply installs the configured logger for binding traces and the global
// error handler.
func (c *Config) Apply(w io.Writer) error {
	logger, err := c.Logger(w)
	if err != nil {
		return err
	}
	binding.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: c.Errors.Verbose})
	return nil
}
