package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/pseudomuto/bqfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds the layout settings passed to the formatter.
	Format struct {
		// PrintWidth is the preferred maximum line length
		PrintWidth int `yaml:"print_width,omitempty"`

		// IndentSize is the number of spaces per indentation level.
		IndentSize int `yaml:"indent_size,omitempty"`
	}

	// Config represents the bqfmt project configuration.
	Config struct {
		// Format contains the layout settings
		Format Format `yaml:"format"`

		// Include lists glob patterns of tree files to format. When empty, every
		// tree file found is formatted.
		Include []string `yaml:"include,omitempty"`

		// Exclude lists glob patterns of tree files to skip
		Exclude []string `yaml:"exclude,omitempty"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Format: Format{
			PrintWidth: consts.DefaultPrintWidth,
			IndentSize: consts.DefaultIndentSize,
		},
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing format
// settings fall back to DefaultPrintWidth and DefaultIndentSize, and every
// include and exclude pattern is checked for validity.
//
// Example:
//
//	yamlData := `
//	format:
//	  print_width: 100
//	exclude:
//	  - "vendor/**"
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Print width: %d\n", cfg.Format.PrintWidth)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	// an empty document leaves every setting at its default
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Format.PrintWidth == 0 {
		cfg.Format.PrintWidth = consts.DefaultPrintWidth
	}
	if cfg.Format.IndentSize == 0 {
		cfg.Format.IndentSize = consts.DefaultIndentSize
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("bqfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	return cfg, errors.Wrapf(err, "invalid config file: %s", path)
}

// FormatterOptions converts the format settings into formatter options.
func (c *Config) FormatterOptions() format.FormatterOptions {
	return format.FormatterOptions{
		MaxWidth:   c.Format.PrintWidth,
		IndentSize: c.Format.IndentSize,
	}
}

// Excluded reports whether the file at path should be skipped. Patterns are
// matched against the slash-separated form of path, so "**/*.json" matches
// at any depth.
func (c *Config) Excluded(path string) bool {
	path = filepath.ToSlash(path)

	for _, pattern := range c.Exclude {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}

	if len(c.Include) == 0 {
		return false
	}

	for _, pattern := range c.Include {
		if doublestar.MatchUnvalidated(pattern, path) {
			return false
		}
	}

	return true
}

func (c *Config) validate() error {
	if c.Format.PrintWidth < 0 {
		return errors.Errorf("print_width must not be negative: %d", c.Format.PrintWidth)
	}
	if c.Format.IndentSize < 0 {
		return errors.Errorf("indent_size must not be negative: %d", c.Format.IndentSize)
	}

	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern: %q", pattern)
		}
	}

	return nil
}
