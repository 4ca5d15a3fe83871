package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/similarity"
)

func newDistanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between A and B",
		Args:  cobra.ExactArgs(2), //nolint:mnd	// two strings
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), similarity.EditDistance(args[0], args[1]))

			return err
		},
	}
}

func newSimilarityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity A B",
		Short: "Print the similarity of A and B, from 0 (nothing alike) to 1 (equal)",
		Args:  cobra.ExactArgs(2), //nolint:mnd	// two strings
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", similarity.Similarity(args[0], args[1]))

			return err
		},
	}
}

func newLCSCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lcs A B",
		Short: "Print the longest common substring of A and B with its length and positions",
		Args:  cobra.ExactArgs(2), //nolint:mnd	// two strings
		RunE: func(cmd *cobra.Command, args []string) error {
			length, startA, startB := similarity.LongestCommonSubstring(args[0], args[1])

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%q length=%d a=%d b=%d\n",
				args[0][startA:startA+length], length, startA, startB)

			return err
		},
	}
}

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var (
		threshold float64
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "suggest TARGET CANDIDATE...",
		Short: "Rank candidates by similarity to TARGET",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd	// target and at least one candidate
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Suggest.Threshold
			}

			if !cmd.Flags().Changed("limit") {
				limit = cfg.Suggest.Limit
			}

			suggestions := similarity.Suggest(args[0], args[1:], similarity.SuggestOptions{
				Threshold: threshold,
				Limit:     limit,
			})

			if len(suggestions) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")

				return err
			}

			rows := make([][]string, 0, len(suggestions))
			for _, s := range suggestions {
				rows = append(rows, []string{
					s.Candidate,
					strconv.FormatFloat(s.Score, 'f', 2, 64), //nolint:mnd	// two decimals
					strconv.Itoa(s.Distance),
				})
			}

			table := renderTable(
				[]column{leftColumn("Candidate"), rightColumn("Score"), rightColumn("Distance")},
				rows,
			)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), table)

			return err
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Minimal similarity score (default from configuration)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximal number of suggestions, 0 for all (default from configuration)")

	return cmd
}
