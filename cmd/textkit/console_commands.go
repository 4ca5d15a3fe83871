package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/internal/errors"
)

func newExecCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE...",
		Short: "Run a ';'-separated console command line",
		Long: "Run a ';'-separated console command line.\n\n" +
			"Available console commands: match, explode, args, distance, similarity, lcs, hash,\n" +
			"equal, echo and help. Several arguments are joined with a space.",
		Example: `  textkit exec 'match "README.TXT" "*.txt"; distance kitten sitting'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := ctx.newConsole(cmd)
			if err != nil {
				return err
			}

			return con.Execute(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run a console script, one command line per line ('-' or none reads stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := ctx.newConsole(cmd)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()

			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, errors.ErrIO, "open script %s", args[0])
				}
				defer file.Close()

				r = file
			}

			return con.Run(cmd.Context(), r)
		},
	}
}
