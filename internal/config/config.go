// Package config loads the sci tool configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "SCI_CONFIG"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "sci.toml"

// Config holds the complete tool configuration
type Config struct {
	Source SourceConfig `toml:"source"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// path is the file the configuration was read from, empty for defaults.
	path string
}

// SourceConfig controls which files are read
type SourceConfig struct {
	// Extensions are matched when a directory is expanded, with the leading dot.
	Extensions []string `toml:"extensions"`
	// Paths are used when the command line names no files.
	Paths []string `toml:"paths"`
}

// OutputConfig controls how trees and tokens are rendered
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

var (
	validFormats = []string{"text", "json", "yaml"}
	validLevels  = []string{"debug", "info", "warn", "error"}
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Color: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Config{Output: OutputConfig{Color: true}}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.normalize()
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve finds the configuration to use. An explicit path wins, then the
// SCI_CONFIG environment variable, then sci.toml in the working directory.
// Without any of them the defaults are returned.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Default(), nil
}

// Path returns the file the configuration came from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	if !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("output.format %q: must be one of %s", c.Output.Format, strings.Join(validFormats, ", "))
	}
	if !contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log.level %q: must be one of %s", c.Log.Level, strings.Join(validLevels, ", "))
	}
	for _, ext := range c.Source.Extensions {
		if ext == "." {
			return fmt.Errorf("source.extensions: empty extension")
		}
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if len(c.Source.Extensions) == 0 {
		c.Source.Extensions = []string{".sci"}
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// normalize lower-cases choices and makes sure extensions start with a dot.
func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	for i, ext := range c.Source.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Source.Extensions[i] = "." + ext
		}
	}
	for i, p := range c.Source.Paths {
		c.Source.Paths[i] = os.ExpandEnv(p)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
