package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/idelchi/go-textkit/internal/errors"
	"github.com/idelchi/go-textkit/internal/logging"
	"github.com/idelchi/go-textkit/wildcard"
)

// maxGrepLine bounds the length of a single line read by grep.
const maxGrepLine = 1 << 20

type grepOptions struct {
	pattern       string
	root          string
	glob          string
	exclude       []string
	caseSensitive bool
}

func newGrepCommand(ctx *commandContext) *cobra.Command {
	var (
		opts       grepOptions
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "grep PATTERN [ROOT]",
		Short: "Print lines matching a wildcard PATTERN in files below ROOT",
		Long: "Print lines matching a wildcard PATTERN in files below ROOT (default '.').\n\n" +
			"The whole line must match, so use '*word*' to find a word anywhere. Files are selected\n" +
			"with a doublestar glob relative to ROOT; --exclude rules are wildcard patterns matched\n" +
			"against the relative path, the last matching rule wins and a leading '!' re-includes.",
		Example: `  textkit grep '*TODO*' --glob '**/*.go' --exclude 'vendor/*'`,
		Args:    cobra.RangeArgs(1, 2), //nolint:mnd	// pattern and optional root
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			opts.pattern = args[0]

			opts.root = "."
			if len(args) == 2 { //nolint:mnd	// root given
				opts.root = args[1]
			}

			if !cmd.Flags().Changed("glob") {
				opts.glob = cfg.Grep.Glob
			}

			opts.exclude = append(slices.Clone(cfg.Grep.Exclude), opts.exclude...)

			opts.caseSensitive = cfg.Match.CaseSensitive
			if ignoreCase {
				opts.caseSensitive = false
			}

			found, err := grep(cmd.Context(), os.DirFS(opts.root), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if found == 0 {
				return errors.Newf(errors.ErrInvalidInput, "no line matches %q", opts.pattern)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.glob, "glob", "g", "", "Doublestar glob selecting files (default from configuration)")
	cmd.Flags().StringArrayVarP(&opts.exclude, "exclude", "e", nil, "Wildcard rule excluding paths (repeatable)")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Match ASCII letters case-insensitively")

	return cmd
}

// grep writes "path:line:text" for every matching line of the files in fsys selected by
// opts.glob and not excluded, and returns the number of matching lines.
func grep(ctx context.Context, fsys fs.FS, opts grepOptions, w io.Writer) (int, error) {
	logger := logging.GetLogger("grep")
	defer logging.LogOperationStart(logger, "grep")()

	paths, err := doublestar.Glob(fsys, opts.glob)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, "glob %q", opts.glob)
	}

	slices.Sort(paths)

	excluded := wildcard.NewSet(wildcard.Options{CaseFold: !opts.caseSensitive}, opts.exclude...)

	found := 0

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return found, err
		}

		if excluded.Match(path) {
			logger.Debug().Str("path", path).Msg("Excluded")

			continue
		}

		info, err := fs.Stat(fsys, path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")

			continue
		}

		if info.IsDir() {
			continue
		}

		n, err := grepFile(fsys, path, opts, w)
		if err != nil {
			return found, err
		}

		found += n
	}

	logger.Debug().Int("files", len(paths)).Int("matches", found).Msg("Grep finished")

	return found, nil
}

func grepFile(fsys fs.FS, path string, opts grepOptions, w io.Writer) (int, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrIO, "open %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxGrepLine)

	found, number := 0, 0

	for scanner.Scan() {
		number++

		line := scanner.Text()
		if !wildcard.Match(line, opts.pattern, opts.caseSensitive) {
			continue
		}

		found++

		if _, err := fmt.Fprintf(w, "%s:%d:%s\n", path, number, line); err != nil {
			return found, err
		}
	}

	if err := scanner.Err(); err != nil {
		return found, errors.Wrapf(err, errors.ErrIO, "read %s", path)
	}

	return found, nil
}
