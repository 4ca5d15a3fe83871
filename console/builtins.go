package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/go-textkit/internal/errors"
	"github.com/idelchi/go-textkit/pathkey"
	"github.com/idelchi/go-textkit/similarity"
	"github.com/idelchi/go-textkit/tokenize"
	"github.com/idelchi/go-textkit/wildcard"
)

// defaultSeparators is used by explode when no separators are given.
const defaultSeparators = ","

// RegisterBuiltins registers the text commands of this module on c:
// match, explode, args, distance, similarity, lcs, hash, equal, echo and help.
func RegisterBuiltins(c *Console) error {
	builtins := []command{
		{name: "match", usage: "match TEXT PATTERN", handler: c.match},
		{name: "explode", usage: "explode LINE [SEPARATORS]", handler: explode},
		{name: "args", usage: "args LINE", handler: splitArgs},
		{name: "distance", usage: "distance A B", handler: distance},
		{name: "similarity", usage: "similarity A B", handler: similarityScore},
		{name: "lcs", usage: "lcs A B", handler: lcs},
		{name: "hash", usage: "hash KEY...", handler: hash},
		{name: "equal", usage: "equal A B", handler: equal},
		{name: "echo", usage: "echo ARG...", handler: echo},
		{name: "help", usage: "help [PATTERN]", handler: c.help},
	}

	for _, b := range builtins {
		if err := c.Register(b.name, b.usage, b.handler); err != nil {
			return err
		}
	}

	return nil
}

// arity fails with ErrUsage unless args holds between lo and hi entries (hi < 0: no upper bound).
func arity(args []string, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return errors.Newf(errors.ErrUsage, "got %d argument(s)", len(args)).WithDetail("args", args)
	}

	return nil
}

func (c *Console) match(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 2, 2); err != nil { //nolint:mnd	// text and pattern
		return err
	}

	_, err := fmt.Fprintln(w, wildcard.Match(args[0], args[1], c.caseSensitive))

	return err
}

func explode(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 1, 2); err != nil { //nolint:mnd	// line and optional separators
		return err
	}

	separators := defaultSeparators
	if len(args) == 2 { //nolint:mnd	// separators given
		separators = args[1]
	}

	for _, piece := range tokenize.Explode(args[0], separators) {
		if _, err := fmt.Fprintln(w, piece); err != nil {
			return err
		}
	}

	return nil
}

func splitArgs(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 1, 1); err != nil {
		return err
	}

	for _, token := range tokenize.Args(args[0]) {
		if _, err := fmt.Fprintf(w, "%q\n", token); err != nil {
			return err
		}
	}

	return nil
}

func distance(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 2, 2); err != nil { //nolint:mnd	// two strings
		return err
	}

	_, err := fmt.Fprintln(w, similarity.EditDistance(args[0], args[1]))

	return err
}

func similarityScore(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 2, 2); err != nil { //nolint:mnd	// two strings
		return err
	}

	_, err := fmt.Fprintf(w, "%.4f\n", similarity.Similarity(args[0], args[1]))

	return err
}

func lcs(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 2, 2); err != nil { //nolint:mnd	// two strings
		return err
	}

	length, startA, startB := similarity.LongestCommonSubstring(args[0], args[1])

	_, err := fmt.Fprintf(w, "%d %d %d %q\n", length, startA, startB, args[0][startA:startA+length])

	return err
}

func hash(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 1, -1); err != nil {
		return err
	}

	for _, key := range args {
		if _, err := fmt.Fprintf(w, "%d %q\n", pathkey.Hash(key), pathkey.Normalize(key)); err != nil {
			return err
		}
	}

	return nil
}

func equal(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 2, 2); err != nil { //nolint:mnd	// two keys
		return err
	}

	_, err := fmt.Fprintln(w, pathkey.Equal(args[0], args[1]))

	return err
}

func echo(_ context.Context, w io.Writer, args []string) error {
	_, err := fmt.Fprintln(w, strings.Join(args, " "))

	return err
}

func (c *Console) help(_ context.Context, w io.Writer, args []string) error {
	if err := arity(args, 0, 1); err != nil {
		return err
	}

	pattern := "*"
	if len(args) == 1 {
		pattern = args[0]
	}

	names := c.Find(pattern)
	if len(names) == 0 {
		return errors.Newf(errors.ErrUnknownCommand, "no command matches %q", pattern)
	}

	for _, name := range names {
		usage, _ := c.Usage(name)

		if _, err := fmt.Fprintf(w, "%-12s %s\n", name, usage); err != nil {
			return err
		}
	}

	return nil
}
