// Package config loads the application configuration for the command-line
// tool: output location and report typography. The processing core takes no
// configuration from here; page geometry defaults live with the layout
// engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool settings loadable from a YAML file.
type Config struct {
	// OutputDir is where generated report PDFs are written.
	OutputDir string `yaml:"output_dir"`

	// FontSize is the report font size in points.
	FontSize float64 `yaml:"font_size"`

	// Verbose enables development logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir: ".",
		FontSize:  9,
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %v", c.FontSize)
	}
	return nil
}
