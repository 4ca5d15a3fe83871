package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/pathkey"
)

func newHashCommand() *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "hash KEY...",
		Short: "Print the case-insensitive path hash of each KEY",
		Long: "Print the case-insensitive path hash of each KEY.\n\n" +
			"Keys are lowercased, backslashes read as slashes, and a slash at either end ignored,\n" +
			"so /Foo/Bar, foo/bar and \\foo\\bar share a hash. With --fold only case is ignored.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy := pathkey.Path
			if fold {
				strategy = pathkey.Fold
			}

			// Group equal keys under the first spelling seen.
			groups := pathkey.NewMap[[]string](strategy)

			for _, key := range args {
				spellings, _ := groups.Get(key)
				groups.Set(key, append(spellings, key))
			}

			rows := make([][]string, 0, groups.Len())

			for first, spellings := range groups.All() {
				normalized := pathkey.Normalize(first)
				if fold {
					normalized = "-"
				}

				rows = append(rows, []string{
					strconv.FormatUint(strategy.Hash(first), 10), //nolint:mnd	// decimal
					normalized,
					fmt.Sprintf("%q", spellings),
				})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]column{rightColumn("Hash"), leftColumn("Normalized"), leftColumn("Keys")},
				rows,
			))

			return err
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "Ignore ASCII case only; treat slashes as ordinary bytes")

	return cmd
}
