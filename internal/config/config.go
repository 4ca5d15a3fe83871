// Package config loads the textkit CLI configuration from TOML.
//
// Every setting has a default, so a missing configuration file is not an error. A file that is
// present is decoded strictly: unknown keys are rejected rather than silently ignored.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/idelchi/go-textkit/internal/errors"
)

// FileName is the configuration file looked up in the working directory when no path is given.
const FileName = "textkit.toml"

// Match configures wildcard matching.
type Match struct {
	CaseSensitive bool `toml:"case_sensitive"`
}

// Explode configures the default separators of the explode command.
type Explode struct {
	Separators string `toml:"separators"`
}

// Suggest configures "did you mean" suggestions.
type Suggest struct {
	Threshold float64 `toml:"threshold"`
	Limit     int     `toml:"limit"`
}

// Grep configures file discovery and filtering of the grep command.
type Grep struct {
	// Glob selects candidate files (doublestar syntax, relative to the search root).
	Glob string `toml:"glob"`
	// Exclude holds wildcard rules; a file whose path matches is skipped. "!" re-includes.
	Exclude []string `toml:"exclude"`
}

// Log configures logging.
type Log struct {
	Verbosity int `toml:"verbosity"`
}

// Config is the complete textkit configuration.
type Config struct {
	Match   Match   `toml:"match"`
	Explode Explode `toml:"explode"`
	Suggest Suggest `toml:"suggest"`
	Grep    Grep    `toml:"grep"`
	Log     Log     `toml:"log"`
}

// Load reads the configuration at path, or FileName in the working directory when path is
// empty. It returns the configuration, the path that was consulted and whether that file
// existed. A missing default file yields Default(); a missing explicit path is an error.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := cfg.decodeFile(resolved); err != nil {
			return nil, "", false, err
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolved, exists, nil
}

// Parse decodes TOML text on top of the defaults, normalizes and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := cfg.decode(bytes.NewReader(data), "<input>"); err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) decodeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "open config %s", path)
	}
	defer file.Close()

	return c.decode(file, path)
}

func (c *Config) decode(r io.Reader, name string) error {
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(c); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "parse config %s", name)
	}

	return nil
}

func resolvePath(path string) (string, bool, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrConfigLoad, "resolve config path %s", path)
	}

	info, err := os.Stat(abs)

	switch {
	case err == nil && info.IsDir():
		return "", false, errors.Newf(errors.ErrConfigLoad, "config path %s is a directory", abs)
	case err == nil:
		return abs, true, nil
	case !explicit && stderrors.Is(err, fs.ErrNotExist):
		return abs, false, nil
	default:
		return "", false, errors.Wrapf(err, errors.ErrConfigLoad, "stat config %s", abs)
	}
}
