// Package config loads rosettes configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all rosettes configuration.
type Config struct {
	// Output settings
	Output OutputConfig `yaml:"output"`

	// Extra theme definitions to load at startup
	ThemeFiles []string `yaml:"theme_files"`

	// Batch processing
	Workers int `yaml:"workers"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures default rendering.
type OutputConfig struct {
	Formatter   string `yaml:"formatter"`   // html, html-pygments, terminal, null
	Theme       string `yaml:"theme"`       // registered theme name
	ClassStyle  string `yaml:"class_style"` // semantic, pygments
	CSSClass    string `yaml:"css_class"`   // container class override
	LineNumbers bool   `yaml:"line_numbers"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce   string   `yaml:"debounce"`
	Extensions []string `yaml:"extensions"`
	OutputDir  string   `yaml:"output_dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Formatter:  "html",
			Theme:      "bengal-tiger",
			ClassStyle: "semantic",
		},
		Workers: 4,
		Watch: WatchConfig{
			Debounce:   "300ms",
			Extensions: []string{".c", ".h", ".cpp", ".hpp", ".go", ".py", ".js", ".rs", ".json", ".yaml", ".yml", ".md", ".html"},
			OutputDir:  ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.Output.ClassStyle {
	case "", "semantic", "pygments":
	default:
		return fmt.Errorf("invalid class_style %q (want semantic or pygments)", c.Output.ClassStyle)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("ROSETTES_THEME"); theme != "" {
		c.Output.Theme = theme
	}
	if f := os.Getenv("ROSETTES_FORMATTER"); f != "" {
		c.Output.Formatter = f
	}
	if style := os.Getenv("ROSETTES_CLASS_STYLE"); style != "" {
		c.Output.ClassStyle = style
	}
	if workers := os.Getenv("ROSETTES_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			c.Workers = n
		}
	}
	if level := os.Getenv("ROSETTES_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetDebounce returns the watch debounce interval as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}
