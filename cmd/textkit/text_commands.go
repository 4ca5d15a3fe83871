package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/tokenize"
	"github.com/idelchi/go-textkit/wildcard"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var ignoreCase, caseSensitive bool

	cmd := &cobra.Command{
		Use:   "match TEXT PATTERN",
		Short: "Match TEXT against a wildcard PATTERN ('*' any run, '?' one byte)",
		Args:  cobra.ExactArgs(2), //nolint:mnd	// text and pattern
		RunE: func(cmd *cobra.Command, args []string) error {
			sensitive := ctx.configValue().Match.CaseSensitive

			switch {
			case ignoreCase:
				sensitive = false
			case caseSensitive:
				sensitive = true
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), wildcard.Match(args[0], args[1], sensitive))

			return err
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Compare ASCII letters case-insensitively")
	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "s", false, "Compare ASCII letters case-sensitively")
	cmd.MarkFlagsMutuallyExclusive("ignore-case", "case-sensitive")

	return cmd
}

func newExplodeCommand(ctx *commandContext) *cobra.Command {
	var separators string

	cmd := &cobra.Command{
		Use:   "explode LINE",
		Short: "Split LINE on separators found outside double quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("separators") {
				separators = ctx.configValue().Explode.Separators
			}

			for _, piece := range tokenize.Explode(args[0], separators) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), piece); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&separators, "separators", "s", ",", "Separator bytes (default from configuration)")

	return cmd
}

func newArgsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "args LINE",
		Short: "Tokenize LINE on whitespace, keeping double-quoted spans together",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range tokenize.Args(args[0]) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\n", token); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands LINE",
		Short: "Split LINE into ';'-separated commands and show each name with its arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for c := range tokenize.Sequence(args[0]) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", c.Name, c.Args); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
