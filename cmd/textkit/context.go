package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/console"
	"github.com/idelchi/go-textkit/internal/config"
	"github.com/idelchi/go-textkit/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *int

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verbose *int) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}

		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err

			return
		}

		c.config = cfg
	})

	return c.config, c.configErr
}

// configValue returns the loaded configuration, or the defaults when loading failed.
// PersistentPreRunE has already reported a load failure by the time commands run.
func (c *commandContext) configValue() *config.Config {
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg
	}

	cfg := config.Default()

	return &cfg
}

// verbosity is the larger of the -v count and the configured verbosity.
func (c *commandContext) verbosity() int {
	flag := 0
	if c.verbose != nil {
		flag = *c.verbose
	}

	return max(flag, c.configValue().Log.Verbosity)
}

// newConsole builds a console with the builtins, configured from the loaded configuration and
// writing to the command's output.
func (c *commandContext) newConsole(cmd *cobra.Command) (*console.Console, error) {
	cfg := c.configValue()

	con := console.New(cmd.OutOrStdout(),
		console.WithLogger(logging.GetLogger("console")),
		console.WithSuggestions(cfg.Suggest.Threshold, cfg.Suggest.Limit),
		console.WithCaseSensitive(cfg.Match.CaseSensitive),
	)

	if err := console.RegisterBuiltins(con); err != nil {
		return nil, err
	}

	return con, nil
}
