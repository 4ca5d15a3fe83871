package tokenize

import (
	"iter"

	"github.com/idelchi/go-textkit/internal/ascii"
)

// Command is a command name with its positional arguments.
type Command struct {
	// Name is the first token of the command, lowercased (ASCII only).
	Name string
	// Args holds the remaining tokens in their original order and case.
	Args []string
}

// CommandArgs tokenizes line with Args and splits off the first token as the command name,
// lowercased. A blank line yields an empty name and no arguments.
//
// Example:
//
//	CommandArgs(`Say "hello world" now`) // "say", ["hello world", "now"]
func CommandArgs(line string) (string, []string) {
	argv := Args(line)
	if len(argv) == 0 {
		return "", nil
	}

	return ascii.Lower(argv[0]), argv[1:]
}

// Sequence returns an iterator over the commands of line, split on ';' separators found
// outside quotes and parsed with CommandArgs, from left to right.
//
// Leading whitespace of each segment is skipped and a blank remainder ends the sequence, so
// trailing empty segments produce nothing. An empty segment between two separators yields a
// Command with an empty name.
func Sequence(line string) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		start := 0

		for {
			start = indexNotAnyFrom(line, Whitespace, start)
			if start == NotFound {
				return
			}

			end := FindOutsideQuotes(line, commandSeparator, start)

			segment := line[start:]
			if end != NotFound {
				segment = line[start:end]
			}

			name, args := CommandArgs(segment)
			if !yield(Command{Name: name, Args: args}) {
				return
			}

			if end == NotFound {
				return
			}

			start = end + 1
		}
	}
}

// ForEachCommand invokes fn once for every command of line, in order.
// See Sequence for how line is split.
//
// Example:
//
//	ForEachCommand("cmd1 a b; cmd2 c", fn) // fn("cmd1", ["a", "b"]), then fn("cmd2", ["c"])
func ForEachCommand(line string, fn func(name string, args []string)) {
	for cmd := range Sequence(line) {
		fn(cmd.Name, cmd.Args)
	}
}

// Commands collects the commands of line into a slice.
func Commands(line string) []Command {
	var cmds []Command

	for cmd := range Sequence(line) {
		cmds = append(cmds, cmd)
	}

	return cmds
}
