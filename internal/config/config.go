// Package config loads run configuration from YAML files.
//
// A config file supplies defaults for flags the user does not pass; CLI
// flags always win. Files are located by explicit path or by name, searched
// in the current directory and ~/.config/pelagia/.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pelagia-docs/pelagia/internal/fileutil"
	"github.com/pelagia-docs/pelagia/internal/hints"
	"github.com/pelagia-docs/pelagia/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Config holds all configuration for a conversion run.
type Config struct {
	Title     string          `yaml:"title"`
	TOC       TOCConfig       `yaml:"toc"`
	Diagram   DiagramConfig   `yaml:"diagram"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Timeout   string          `yaml:"timeout"` // Go duration string, e.g. "2m"
}

// TOCConfig defines table-of-contents options.
type TOCConfig struct {
	Depth int `yaml:"depth"` // heading depth 1-6 (0 = default 3)
}

// DiagramConfig defines mermaid rendering defaults.
type DiagramConfig struct {
	Width         int     `yaml:"width"`         // pixels (0 = default)
	Height        int     `yaml:"height"`        // pixels (0 = default)
	Scale         float64 `yaml:"scale"`         // uniform scale factor (0 = 1.0)
	FlowDirection string  `yaml:"flowDirection"` // TB, TD, BT, RL, LR
}

// ArtifactsConfig defines intermediate artifact retention.
type ArtifactsConfig struct {
	Keep    bool   `yaml:"keep"`    // retain images and assembled markdown
	WorkDir string `yaml:"workDir"` // pin the working directory (implies keep)
}

// DefaultConfig returns a config with zero values; the library applies its
// own defaults for unset fields.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field values and cross-field consistency.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.TOC),
		validation.Field(&c.Diagram),
		validation.Field(&c.Timeout, validation.By(validDuration)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate checks TOC depth bounds.
func (c TOCConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Depth, validation.Min(0), validation.Max(6)),
	)
}

// Validate checks diagram sizing bounds and flow direction.
func (c DiagramConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Width, validation.Min(0)),
		validation.Field(&c.Height, validation.Min(0)),
		validation.Field(&c.Scale, validation.Min(0.0)),
		validation.Field(&c.FlowDirection, validation.In("TB", "TD", "BT", "RL", "LR")),
	)
}

// validDuration accepts an empty string or a parseable Go duration.
func validDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return errors.New("must be a duration like 30s or 2m")
	}
	return nil
}

// LoadConfig loads a config by explicit path or by name.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path, searched, err := findConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (searched %d locations)%s",
			ErrConfigNotFound, nameOrPath, len(searched), hints.ForConfigNotFound(searched))
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// findConfig resolves a config name or path to an existing file.
func findConfig(nameOrPath string) (path string, searched []string, err error) {
	if fileutil.IsFilePath(nameOrPath) {
		if fileutil.FileExists(nameOrPath) {
			return nameOrPath, nil, nil
		}
		return "", []string{nameOrPath}, ErrConfigNotFound
	}

	for _, candidate := range searchPaths(nameOrPath) {
		searched = append(searched, candidate)
		if fileutil.FileExists(candidate) {
			return candidate, searched, nil
		}
	}
	return "", searched, ErrConfigNotFound
}

// searchPaths lists candidate locations for a named config.
func searchPaths(name string) []string {
	candidates := []string{name, name + ".yaml", name + ".yml"}

	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}
	configDir := filepath.Join(home, ".config", "pelagia")
	for _, n := range []string{name, name + ".yaml", name + ".yml"} {
		candidates = append(candidates, filepath.Join(configDir, n))
	}
	return candidates
}

// ParseTimeout returns the configured timeout, or zero when unset.
func (c *Config) ParseTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrConfigInvalid, err)
	}
	return d, nil
}
