// Package color configures colored output of failure messages and reports.
package color

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/scenarigo/verify/config"
)

const envVerifyColor = "VERIFY_COLOR"

type Color = color.Color

// Config holds the colors used for each kind of output.
type Config struct {
	enabled *bool // nil means auto detection

	pass      *Color
	fail      *Color
	skip      *Color
	highlight *Color
	all       []*Color
}

// New returns a color configuration initialized from the VERIFY_COLOR
// environment variable.
func New() *Config {
	c := &Config{
		pass:      color.New(color.FgGreen),
		fail:      color.New(color.FgHiRed),
		skip:      color.New(color.FgYellow),
		highlight: color.New(color.FgCyan),
	}
	c.all = []*Color{c.pass, c.fail, c.skip, c.highlight}
	if v := os.Getenv(envVerifyColor); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.SetEnabled(enabled)
		}
	}
	return c
}

// FromConfig returns a color configuration following cfg.Colored, falling
// back to New when it is unset.
func FromConfig(cfg *config.Config) *Config {
	c := New()
	if cfg != nil && cfg.Colored != nil {
		c.SetEnabled(*cfg.Colored)
	}
	return c
}

// IsEnabled reports whether colored output is enabled.
func (c *Config) IsEnabled() bool {
	if c != nil && c.enabled != nil {
		return *c.enabled
	}
	return !color.NoColor
}

// SetEnabled enables or disables colored output.
func (c *Config) SetEnabled(enabled bool) {
	c.enabled = &enabled
	for _, col := range c.all {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
}

func (c *Config) Pass() *Color      { return c.pass }
func (c *Config) Fail() *Color      { return c.fail }
func (c *Config) Skip() *Color      { return c.skip }
func (c *Config) Highlight() *Color { return c.highlight }

// MarshalYAML marshals v to YAML, colorizing scalars and keys when enabled.
func (c *Config) MarshalYAML(v any) ([]byte, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !c.IsEnabled() {
		return b, nil
	}
	property := func(attr color.Attribute) func() *printer.Property {
		return func() *printer.Property {
			return &printer.Property{
				Prefix: format(attr),
				Suffix: format(color.Reset),
			}
		}
	}
	var p printer.Printer
	p.Bool = property(color.FgHiMagenta)
	p.Number = property(color.FgHiMagenta)
	p.MapKey = property(color.FgHiCyan)
	p.Anchor = property(color.FgHiYellow)
	p.Alias = property(color.FgHiYellow)
	p.String = property(color.FgHiGreen)
	p.Comment = property(color.FgHiBlack)
	return []byte(p.PrintTokens(lexer.Tokenize(string(b)))), nil
}

const escape = "\x1b"

func format(attr color.Attribute) string {
	return fmt.Sprintf("%s[%dm", escape, attr)
}
