// Package config loads crxskill configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/crxdev/crxskill/internal/bundle"
	crxerrors "github.com/crxdev/crxskill/internal/errors"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// DefaultsConfig holds the default install scope and source. Flags
// override both.
type DefaultsConfig struct {
	Scope  string `toml:"scope"`  // "global" or "local"
	Source string `toml:"source"` // "remote" or "self"
}

// RemoteConfig holds the bundle repository settings.
type RemoteConfig struct {
	URL string `toml:"url"`
}

// GitConfig holds the git invocation settings.
type GitConfig struct {
	Binary string `toml:"binary"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file"`
}

// Config is the main configuration struct for crxskill.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Remote   RemoteConfig   `toml:"remote"`
	Git      GitConfig      `toml:"git"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Scope:  "global",
			Source: "remote",
		},
		Remote: RemoteConfig{
			URL: bundle.RemoteURL,
		},
		Git: GitConfig{
			Binary: "git",
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			File:   "",
		},
	}
}

// Load loads configuration from a file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from the standard locations.
// Applies in order: defaults -> ~/.crxskill/config.toml ->
// <dir>/.crxskill/config.toml. Later configs override earlier ones
// (project-level takes precedence).
func LoadFromDir(dir string) (*Config, error) {
	cfg := Default()

	// Load global config first (if exists)
	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, ".crxskill", "config.toml")
		if data, err := os.ReadFile(globalConfig); err == nil {
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	// Load project config (overrides global)
	projectConfig := filepath.Join(dir, ".crxskill", "config.toml")
	if data, err := os.ReadFile(projectConfig); err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing project config: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Defaults.Scope {
	case "global", "local":
	default:
		return crxerrors.ConfigInvalidValue("defaults.scope", fmt.Sprintf("must be %q or %q", "global", "local"))
	}

	switch c.Defaults.Source {
	case "remote", "self":
	default:
		return crxerrors.ConfigInvalidValue("defaults.source", fmt.Sprintf("must be %q or %q", "remote", "self"))
	}

	if c.Remote.URL == "" {
		return crxerrors.ConfigInvalidValue("remote.url", "is required")
	}
	if c.Git.Binary == "" {
		return crxerrors.ConfigInvalidValue("git.binary", "is required")
	}

	return nil
}

// LogFile returns the absolute log file path, or "" when file logging
// is disabled.
func (c *Config) LogFile(baseDir string) string {
	if c.Logging.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(baseDir, c.Logging.File)
}
