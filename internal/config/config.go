package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/motcom/g/internal/logger"
)

// ColorConfig names the colors used for interactive output.
// Valid names are listed by display.ColorNames; "none" disables a color.
type ColorConfig struct {
	// Match colors the first matched span of a line
	Match string `yaml:"match"`

	// Banner colors the file name printed before a file's first match
	Banner string `yaml:"banner"`

	// LineNumber colors the line number prefix
	LineNumber string `yaml:"line_number"`
}

// Config represents g configuration options
type Config struct {
	// Workers is the size of the scan worker pool (0 = number of CPUs)
	Workers int `yaml:"workers"`

	// LogLevel sets the stderr diagnostics verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Sorted prints each file's matches in enumeration order instead of completion order
	Sorted bool `yaml:"sorted"`

	// Colors contains interactive output colors
	Colors ColorConfig `yaml:"colors"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Workers:  0,
		LogLevel: "warn",
		Sorted:   false,
		Colors: ColorConfig{
			Match:      "red",
			Banner:     "cyan",
			LineNumber: "none",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Workers != 0 {
		cfg.Workers = fileCfg.Workers
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Sorted {
		cfg.Sorted = true
	}
	if fileCfg.Colors.Match != "" {
		cfg.Colors.Match = fileCfg.Colors.Match
	}
	if fileCfg.Colors.Banner != "" {
		cfg.Colors.Banner = fileCfg.Colors.Banner
	}
	if fileCfg.Colors.LineNumber != "" {
		cfg.Colors.LineNumber = fileCfg.Colors.LineNumber
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(workers *int, logLevel *string, sorted *bool) {
	if workers != nil {
		c.Workers = *workers
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if sorted != nil {
		c.Sorted = *sorted
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid. LogLevel is normalized to
// lower case so "DEBUG" and "debug" are the same level.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	c.LogLevel = logger.NormalizeLevel(c.LogLevel)

	return nil
}
