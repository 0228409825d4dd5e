// Package config loads editor configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	// TabStop is the tab stop width in columns.
	TabStop int `toml:"tab_stop"`

	// QuitTimes is how many consecutive Ctrl-Q presses quit a dirty buffer.
	QuitTimes int `toml:"quit_times"`

	// MessageTimeoutMS is how long status messages stay visible.
	MessageTimeoutMS int `toml:"message_timeout_ms"`

	// RulesDir holds user syntax rule files (*.lua).
	RulesDir string `toml:"rules_dir"`

	// LogFile enables logging when set; logs never go to the terminal.
	LogFile string `toml:"log_file"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabStop:          8,
		QuitTimes:        3,
		MessageTimeoutMS: 5000,
		LogLevel:         "info",
	}
}

// DefaultPath returns the conventional config file location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mite", "config.toml")
}

// ParseError describes a malformed config file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads configuration from path, layered over the defaults. A missing
// or empty path is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsensical values back to the defaults.
func (c *Config) normalize() {
	if c.TabStop < 1 {
		c.TabStop = 8
	}
	if c.QuitTimes < 1 {
		c.QuitTimes = 1
	}
	if c.MessageTimeoutMS < 1 {
		c.MessageTimeoutMS = 5000
	}
}
