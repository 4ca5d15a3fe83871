// Package tokenize splits raw command lines into tokens, arguments and sequential commands
// while respecting double-quoted spans.
//
// All splitting goes through one primitive, FindOutsideQuotes, which locates the next
// separator byte that is not inside a closed "..." span. Malformed input never fails:
// an unterminated quote simply stops protecting the rest of the line.
//
// Usage:
//
//	tokenize.Explode(`a,b,"c,d"`, ",")            // ["a", "b", "\"c,d\""]
//	tokenize.Args(`say "hello world" now`)        // ["say", "hello world", "now"]
//	tokenize.CommandArgs(`Say "hello world" now`) // "say", ["hello world", "now"]
//
//	for cmd := range tokenize.Sequence("cmd1 a b; cmd2 c") {
//		fmt.Println(cmd.Name, cmd.Args)
//	}
package tokenize

import (
	"strings"

	"github.com/idelchi/go-textkit/internal/ascii"
)

// Whitespace is the set of bytes separating arguments.
const Whitespace = ascii.Whitespace

// NotFound is returned by the index-returning functions when nothing was found.
const NotFound = -1

// Special bytes recognized by the tokenizer.
const (
	// Opens and closes a quoted span.
	quote = '"'
	// Separates sequential commands.
	commandSeparator = ";"
)

// FindOutsideQuotes returns the index of the first byte at or after offset that is one of
// separators and does not lie inside a closed "..." span, or NotFound.
//
// Quote spans are discovered pairwise from the current scan position. If the separator comes
// before the next quote, or no complete pair of quotes remains, the plain search result is
// returned: an unterminated quote degrades to a naive separator search from there on.
//
// Example:
//
//	FindOutsideQuotes(`a "b,c",d`, ",", 0) // 7
//	FindOutsideQuotes(`a "b,c`, ",", 0)    // 4 (unterminated quote does not protect)
func FindOutsideQuotes(s, separators string, offset int) int {
	if offset < 0 {
		offset = 0
	}

	for offset <= len(s) {
		found := indexAnyFrom(s, separators, offset)

		qStart := indexByteFrom(s, quote, offset)
		if qStart == NotFound || found < qStart {
			return found
		}

		qEnd := indexByteFrom(s, quote, qStart+1)
		if qEnd == NotFound {
			return found
		}

		offset = qEnd + 1
	}

	return NotFound
}

// Explode splits s on any byte of separators found outside quotes. Each piece is trimmed of
// surrounding whitespace; quotes are kept.
//
// If no separator occurs and s is blank, the result is empty. Once at least one separator was
// found, every segment is kept, including an empty final one.
func Explode(s, separators string) []string {
	var pieces []string

	start := 0

	found := FindOutsideQuotes(s, separators, start)
	foundAtLeastOne := found != NotFound

	for found != NotFound {
		pieces = append(pieces, ascii.TrimSpace(s[start:found]))

		start = found + 1

		found = FindOutsideQuotes(s, separators, start)
	}

	rest := ascii.TrimSpace(s[start:])
	if rest == "" && !foundAtLeastOne {
		return pieces
	}

	return append(pieces, rest)
}

// ExplodeWhitespace splits s on runs of whitespace found outside quotes. Quotes are kept and
// no empty pieces are produced.
//
// Example:
//
//	ExplodeWhitespace(`  set "a b"   c `) // ["set", "\"a b\"", "c"]
func ExplodeWhitespace(s string) []string {
	var pieces []string

	start := indexNotAnyFrom(s, Whitespace, 0)

	for start != NotFound {
		end := FindOutsideQuotes(s, Whitespace, start)
		if end == NotFound {
			pieces = append(pieces, ascii.TrimSpace(s[start:]))

			break
		}

		pieces = append(pieces, ascii.TrimSpace(s[start:end]))

		start = indexNotAnyFrom(s, Whitespace, end)
	}

	return pieces
}

// Args tokenizes line on whitespace. A token starting with a double quote extends to the next
// double quote and is returned without its quotes; if that quote is missing, the token ends at
// the next whitespace and keeps its leading quote. Bytes directly following a closing quote
// start a new token.
//
// Example:
//
//	Args(`cp "my file.txt" dst`) // ["cp", "my file.txt", "dst"]
//	Args(`echo "unterminated x`) // ["echo", "\"unterminated", "x"]
func Args(line string) []string {
	var argv []string

	pos := 0

	for pos != NotFound {
		start := indexNotAnyFrom(line, Whitespace, pos)
		if start == NotFound {
			break
		}

		quoted := false

		if line[start] == quote {
			pos = indexByteFrom(line, quote, start+1)
			if pos == NotFound {
				pos = indexAnyFrom(line, Whitespace, start)
			} else {
				start++

				quoted = true
			}
		} else {
			pos = indexAnyFrom(line, Whitespace, start)
		}

		if pos == NotFound {
			argv = append(argv, line[start:])

			break
		}

		argv = append(argv, line[start:pos])

		if quoted {
			pos++
		}
	}

	return argv
}

// indexByteFrom returns the index of the first c in s at or after offset, or NotFound.
func indexByteFrom(s string, c byte, offset int) int {
	if offset >= len(s) {
		return NotFound
	}

	if idx := strings.IndexByte(s[offset:], c); idx >= 0 {
		return offset + idx
	}

	return NotFound
}

// indexAnyFrom returns the index of the first byte of s at or after offset that is in chars,
// or NotFound.
func indexAnyFrom(s, chars string, offset int) int {
	for idx := offset; idx < len(s); idx++ {
		if strings.IndexByte(chars, s[idx]) >= 0 {
			return idx
		}
	}

	return NotFound
}

// indexNotAnyFrom returns the index of the first byte of s at or after offset that is not in
// chars, or NotFound.
func indexNotAnyFrom(s, chars string, offset int) int {
	for idx := offset; idx < len(s); idx++ {
		if strings.IndexByte(chars, s[idx]) < 0 {
			return idx
		}
	}

	return NotFound
}
