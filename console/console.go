// Package console is a small command interpreter.
//
// A line holds one or more commands separated by ';' outside double quotes, each a command name
// followed by whitespace separated arguments (quoted arguments may contain whitespace). Names are
// looked up case-insensitively in a registry of handlers. Unknown names are reported together
// with the closest registered names.
//
// Example:
//
//	c := console.New(os.Stdout)
//	console.RegisterBuiltins(c)
//	c.Execute(ctx, `match "README.TXT" "*.txt"; distance kitten sitting`)
//	// true
//	// 3
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idelchi/go-textkit/internal/errors"
	"github.com/idelchi/go-textkit/internal/logging"
	"github.com/idelchi/go-textkit/pathkey"
	"github.com/idelchi/go-textkit/similarity"
	"github.com/idelchi/go-textkit/tokenize"
	"github.com/idelchi/go-textkit/wildcard"
)

// Handler runs a command. Output goes to w; args are the command's arguments, unquoted.
type Handler func(ctx context.Context, w io.Writer, args []string) error

type command struct {
	name    string
	usage   string
	handler Handler
}

// Console dispatches command lines to registered handlers.
// A Console must not be used concurrently.
type Console struct {
	out           io.Writer
	logger        zerolog.Logger
	commands      *pathkey.Map[command]
	suggest       similarity.SuggestOptions
	caseSensitive bool
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithSuggestions tunes the "did you mean" hints of unknown commands.
// A zero threshold selects similarity.DefaultThreshold; a limit of zero or less shows all.
func WithSuggestions(threshold float64, limit int) Option {
	return func(c *Console) {
		c.suggest = similarity.SuggestOptions{Threshold: threshold, Limit: limit}
	}
}

// WithCaseSensitive makes wildcard matching (Find and the match builtin) case-sensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(c *Console) {
		c.caseSensitive = caseSensitive
	}
}

// New creates an empty Console writing command output to out.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:      out,
		logger:   zerolog.Nop(),
		commands: pathkey.NewMap[command](pathkey.Fold),
		suggest:  similarity.SuggestOptions{Limit: 3}, //nolint:mnd	// Default number of hints
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CaseSensitive reports whether wildcard matching is case-sensitive.
func (c *Console) CaseSensitive() bool {
	return c.caseSensitive
}

// Register adds a command. Names are compared ignoring ASCII case; registering a name twice
// fails with ErrDuplicateCommand.
func (c *Console) Register(name, usage string, h Handler) error {
	if name == "" || strings.ContainsAny(name, tokenize.Whitespace+`;"`) {
		return errors.Newf(errors.ErrInvalidInput, "invalid command name %q", name)
	}

	if h == nil {
		return errors.Newf(errors.ErrInvalidInput, "command %q has no handler", name)
	}

	if c.commands.Has(name) {
		return errors.Newf(errors.ErrDuplicateCommand, "command %q is already registered", name).
			WithDetail("command", name)
	}

	c.commands.Set(name, command{name: name, usage: usage, handler: h})

	return nil
}

// Execute runs every command of line in order and stops at the first error.
// Empty commands (as in "a;;b") are skipped. The context is checked before each command.
func (c *Console) Execute(ctx context.Context, line string) error {
	for cmd := range tokenize.Sequence(line) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if cmd.Name == "" {
			continue
		}

		if err := c.dispatch(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

// Run executes a script read from r, one line at a time. Text after "//" outside quotes is a
// comment. Errors carry the number of the failing line.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	defer logging.LogOperationStart(c.logger, "run script")()

	scanner := bufio.NewScanner(r)
	number := 0

	for scanner.Scan() {
		number++

		if err := c.Execute(ctx, tokenize.RemoveComment(scanner.Text())); err != nil {
			return fmt.Errorf("line %d: %w", number, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "read script after line %d", number)
	}

	return nil
}

// Find returns the registered names matching a wildcard pattern, sorted.
func (c *Console) Find(pattern string) []string {
	var names []string

	for name := range c.commands.All() {
		if wildcard.Match(name, pattern, c.caseSensitive) {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// Usage returns the usage text of a registered command.
func (c *Console) Usage(name string) (string, bool) {
	cmd, ok := c.commands.Get(name)

	return cmd.usage, ok
}

// Names returns every registered name in registration order.
func (c *Console) Names() []string {
	return c.commands.Keys()
}

func (c *Console) dispatch(ctx context.Context, cmd tokenize.Command) error {
	registered, ok := c.commands.Get(cmd.Name)
	if !ok {
		return c.unknown(cmd.Name)
	}

	c.logger.Debug().
		Str("command", registered.name).
		Strs("args", cmd.Args).
		Msg("Executing command")

	if err := registered.handler(ctx, c.out, cmd.Args); err != nil {
		if errors.IsErrorCode(err, errors.ErrUsage) && registered.usage != "" {
			return fmt.Errorf("%s: %w (usage: %s)", registered.name, err, registered.usage)
		}

		return fmt.Errorf("%s: %w", registered.name, err)
	}

	return nil
}

func (c *Console) unknown(name string) error {
	suggestions := similarity.Candidates(name, c.commands.Keys(), c.suggest)

	c.logger.Info().
		Str("command", name).
		Strs("suggestions", suggestions).
		Msg("Unknown command")

	msg := fmt.Sprintf("unknown command %q", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", strings.Join(suggestions, ", "))
	}

	return errors.New(errors.ErrUnknownCommand, msg).
		WithDetail("command", name).
		WithDetail("suggestions", suggestions)
}
