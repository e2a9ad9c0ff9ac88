// Package config loads the optional YAML configuration file. Flags
// always win over config values; the merge happens in the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxStyleNameLength = 512  // Theme name or CSS file path
	MaxTOCTitleLength  = 100  // TOC heading
	MaxDirLength       = 4096 // Output directory path
	MaxTimeoutLength   = 30   // "30s", "2m30s"
)

// Config holds all configuration for page generation.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Style     StyleConfig     `yaml:"style"`
	TOC       TOCConfig       `yaml:"toc"`
	Highlight HighlightConfig `yaml:"highlight"`
	PDF       PDFConfig       `yaml:"pdf"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Joined with relative -o paths (empty = use -o as given)
}

// StyleConfig selects the stylesheet.
type StyleConfig struct {
	Name string `yaml:"name"` // Embedded theme name or CSS file path
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Title string `yaml:"title"` // Heading above the TOC (empty = default)
}

// HighlightConfig toggles fenced-code syntax highlighting.
type HighlightConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration string (empty = default)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Style: StyleConfig{Name: "default"},
	}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field lengths.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxDirLength},
		{"style.name", c.Style.Name, MaxStyleNameLength},
		{"toc.title", c.TOC.Title, MaxTOCTitleLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}
	return nil
}
