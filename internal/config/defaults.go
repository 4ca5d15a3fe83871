package config

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/idelchi/go-textkit/internal/ascii"
	"github.com/idelchi/go-textkit/internal/errors"
)

// Default values.
const (
	DefaultSeparators = ","
	DefaultThreshold  = 0.5
	DefaultLimit      = 3
	DefaultGlob       = "**/*"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Match:   Match{CaseSensitive: false},
		Explode: Explode{Separators: DefaultSeparators},
		Suggest: Suggest{Threshold: DefaultThreshold, Limit: DefaultLimit},
		Grep:    Grep{Glob: DefaultGlob},
		Log:     Log{Verbosity: 0},
	}
}

// normalize fills cleared values back with defaults and tidies list entries.
func (c *Config) normalize() {
	if c.Explode.Separators == "" {
		c.Explode.Separators = DefaultSeparators
	}

	c.Grep.Glob = ascii.TrimSpace(c.Grep.Glob)
	if c.Grep.Glob == "" {
		c.Grep.Glob = DefaultGlob
	}

	excludes := c.Grep.Exclude[:0]

	for _, rule := range c.Grep.Exclude {
		if rule = ascii.TrimLeftSpace(rule); rule != "" {
			excludes = append(excludes, rule)
		}
	}

	c.Grep.Exclude = excludes
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Suggest.Threshold < 0 || c.Suggest.Threshold > 1 {
		return errors.Newf(errors.ErrConfigValid, "suggest.threshold must be between 0 and 1, got %v", c.Suggest.Threshold)
	}

	if c.Suggest.Limit < 0 {
		return errors.Newf(errors.ErrConfigValid, "suggest.limit must not be negative, got %d", c.Suggest.Limit)
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}

	if !doublestar.ValidatePattern(c.Grep.Glob) {
		return errors.Newf(errors.ErrConfigValid, "grep.glob %q is not a valid pattern", c.Grep.Glob)
	}

	return nil
}
