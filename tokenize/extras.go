package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/go-textkit/internal/ascii"
)

// maxLineSize bounds a single line read by FindInLines.
const maxLineSize = 1 << 20

// RemoveQuotes strips one pair of enclosing double quotes from s.
// Strings that do not both start and end with a quote are returned unchanged.
func RemoveQuotes(s string) string {
	if s == "" || s[0] != quote || s[len(s)-1] != quote {
		return s
	}

	if len(s) == 1 {
		return ""
	}

	return s[1 : len(s)-1]
}

// RemoveComment cuts s at the first "//" found outside quotes and trims the whitespace left
// before it.
func RemoveComment(s string) string {
	for idx := FindOutsideQuotes(s, "/", 0); idx != NotFound; idx = FindOutsideQuotes(s, "/", idx+1) {
		if idx+1 < len(s) && s[idx+1] == '/' {
			return ascii.TrimRightSpace(s[:idx])
		}
	}

	return s
}

// KeyValue splits s into a key and a value on the first separator found outside quotes.
// Both sides are trimmed and unquoted; the key is lowercased. Anything after a second
// separator is dropped. ok is false when s holds no separator.
//
// Example:
//
//	KeyValue(`Name = "John Doe"`, "=") // "name", "John Doe", true
func KeyValue(s, separators string) (key, value string, ok bool) {
	pieces := Explode(s, separators)
	if len(pieces) < 2 { //nolint:mnd	// key and value
		return "", "", false
	}

	key = ascii.Lower(RemoveQuotes(pieces[0]))
	value = RemoveQuotes(pieces[1])

	return key, value, true
}

// Parameters parses a call-like expression "name(arg1, arg2, ...)".
// It returns the trimmed name, the trimmed arguments and the index of the closing
// parenthesis. Commas and parentheses inside quotes do not split. An empty first argument,
// as in "name()", yields no arguments. When there is no opening or no closing parenthesis,
// end is NotFound.
//
// Example:
//
//	Parameters(`print("a, b", 2)`) // "print", ["\"a, b\"", "2"], 15
func Parameters(s string) (name string, args []string, end int) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", nil, NotFound
	}

	end = FindOutsideQuotes(s, ")", open+1)
	if end == NotFound {
		return "", nil, NotFound
	}

	name = ascii.TrimSpace(s[:open])

	prev := open

	for {
		next := FindOutsideQuotes(s, ",)", prev+1)
		if next == NotFound || next > end {
			break
		}

		arg := ascii.TrimSpace(s[prev+1 : next])
		if arg == "" && len(args) == 0 {
			break
		}

		args = append(args, arg)

		if next == end {
			break
		}

		prev = next
	}

	return name, args, end
}

// FindInLines reads r line by line, strips "//" comments, and returns the first line that
// contains any byte of chars together with the index of that byte. When no line matches,
// it returns an empty line and NotFound.
func FindInLines(r io.Reader, chars string) (string, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		line := RemoveComment(scanner.Text())

		if idx := strings.IndexAny(line, chars); idx >= 0 {
			return line, idx, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", NotFound, fmt.Errorf("scan lines: %w", err)
	}

	return "", NotFound, nil
}
