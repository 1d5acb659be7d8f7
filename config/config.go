// Package config loads the settings that control how failures are rendered.
package config

import (
	"os"
	"strconv"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"

	"github.com/scenarigo/verify/errors"
)

const (
	// DefaultFileName is the configuration file looked up by the CLI.
	DefaultFileName = "verify.yaml"

	envColor = "VERIFY_COLOR"
)

// Config represents the rendering configuration.
type Config struct {
	// MaxElementsForPrinting limits the elements of a collection shown in a
	// failure message.
	MaxElementsForPrinting int `yaml:"maxElementsForPrinting,omitempty"`
	// MaxStringLength truncates long strings in failure messages. Zero means
	// no limit.
	MaxStringLength int `yaml:"maxStringLength,omitempty"`
	// Colored enables colored output. Nil means auto detection.
	Colored *bool `yaml:"colored,omitempty"`
	// Verbose prints passed assertions as well.
	Verbose bool `yaml:"verbose,omitempty"`
	// PrintDescription prefixes messages with the assertion description.
	PrintDescription *bool `yaml:"printDescription,omitempty"`
	// Parallel limits the number of suite files loaded concurrently.
	Parallel int `yaml:"parallel,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	printDescription := true
	return &Config{
		MaxElementsForPrinting: 1000,
		PrintDescription:       &printDescription,
		Parallel:               4,
	}
}

// DescriptionEnabled reports whether descriptions are printed.
func (c *Config) DescriptionEnabled() bool {
	return c == nil || c.PrintDescription == nil || *c.PrintDescription
}

// Load reads the configuration file at path and merges it over the defaults.
// The VERIFY_COLOR environment variable overrides the colored setting.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(b)
}

// LoadDefault loads DefaultFileName when it exists and returns the defaults
// otherwise.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFileName); err != nil {
		if os.IsNotExist(err) {
			return fromEnv(Default())
		}
		return nil, errors.Wrapf(err, "failed to stat %s", DefaultFileName)
	}
	return Load(DefaultFileName)
}

// Parse decodes a YAML document and merges it over the defaults.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalWithOptions(b, &cfg, yaml.Strict()); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if cfg.MaxElementsForPrinting < 0 {
		return nil, errors.ErrorPathf("$.maxElementsForPrinting", "must not be negative")
	}
	if err := mergo.Merge(&cfg, Default()); err != nil {
		return nil, errors.Wrap(err, "failed to merge the default configuration")
	}
	return fromEnv(&cfg)
}

func fromEnv(cfg *Config) (*Config, error) {
	v := os.Getenv(envColor)
	if v == "" {
		return cfg, nil
	}
	colored, err := strconv.ParseBool(v)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", envColor)
	}
	cfg.Colored = &colored
	return cfg, nil
}
