package main

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	var verbose int

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:           "textkit",
		Short:         "Wildcard matching, quote-aware tokenizing and string similarity",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			logging.SetupLogger(ctx.verbosity(), cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ./textkit.toml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newExplodeCommand(ctx))
	rootCmd.AddCommand(newArgsCommand())
	rootCmd.AddCommand(newCommandsCommand())
	rootCmd.AddCommand(newDistanceCommand())
	rootCmd.AddCommand(newSimilarityCommand())
	rootCmd.AddCommand(newLCSCommand())
	rootCmd.AddCommand(newSuggestCommand(ctx))
	rootCmd.AddCommand(newHashCommand())
	rootCmd.AddCommand(newExecCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newGrepCommand(ctx))

	return rootCmd
}
