package wildcard_test

import (
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/idelchi/go-textkit/wildcard"
)

// maxFuzzLen bounds sanitized inputs so the recursive reference stays cheap.
const maxFuzzLen = 14

// textAlphabet and patternAlphabet are small on purpose: collisions between text and pattern
// bytes are what exercise the backtracking paths.
const (
	textAlphabet    = "abAB."
	patternAlphabet = "abAB.*?"
)

// FuzzMatchParity fuzzes random text/pattern pairs and asserts that the iterative matcher
// agrees with a direct recursive formulation of the same rules, and, for case-sensitive
// matching, with doublestar (which agrees with us on inputs without '/', '\\', '[' or '{').
// doublestar reads "**" as a globstar, so runs of '*' are collapsed before asking it.
func FuzzMatchParity(f *testing.F) {
	seed := func(text, pattern string, fold bool) { f.Add(text, pattern, fold) }
	seed("abc", "a?c", false)
	seed("README.TXT", "*.txt", true)
	seed("aaab", "*ab", false)
	seed("", "***", false)
	seed("ab", "*?*?*", false)
	seed("abababa", "*a*b*a*", true)
	seed("B", "?*******", false)
	seed("ab", "a**b", false)

	f.Fuzz(func(t *testing.T, rawText, rawPattern string, fold bool) {
		text := sanitize(rawText, textAlphabet)
		pattern := sanitize(rawPattern, patternAlphabet)

		got := wildcard.MatchOpt(text, pattern, wildcard.Options{CaseFold: fold})

		if want := matchRecursive(text, pattern, !fold); got != want {
			t.Fatalf("MatchOpt(%q, %q, fold=%v) = %v, recursive reference says %v", text, pattern, fold, got, want)
		}

		if fold {
			return
		}

		want, err := doublestar.Match(collapseStars(pattern), text)
		if err != nil {
			t.Skipf("doublestar rejected pattern %q: %v", pattern, err)
		}

		if got != want {
			t.Fatalf("Match(%q, %q, true) = %v, doublestar says %v", text, pattern, got, want)
		}
	})
}

// collapseStars replaces every run of '*' with a single '*'.
func collapseStars(pattern string) string {
	var b strings.Builder

	b.Grow(len(pattern))

	for i := range len(pattern) {
		if pattern[i] == '*' && i > 0 && pattern[i-1] == '*' {
			continue
		}

		b.WriteByte(pattern[i])
	}

	return b.String()
}

// sanitize maps arbitrary fuzzer bytes onto alphabet and bounds the length.
func sanitize(s, alphabet string) string {
	n := min(len(s), maxFuzzLen)

	out := make([]byte, n)
	for i := range n {
		out[i] = alphabet[int(s[i])%len(alphabet)]
	}

	return string(out)
}

// matchRecursive is the unbounded backtracking formulation: a '*' first tries to match
// nothing, then to absorb one more byte of text.
func matchRecursive(text, pattern string, caseSensitive bool) bool {
	for len(text) > 0 && (len(pattern) == 0 || pattern[0] != '*') {
		if len(pattern) == 0 {
			return false
		}

		if pattern[0] != '?' && !bytesEqual(text[0], pattern[0], caseSensitive) {
			return false
		}

		text, pattern = text[1:], pattern[1:]
	}

	if len(text) == 0 {
		for len(pattern) > 0 && pattern[0] == '*' {
			pattern = pattern[1:]
		}

		return len(pattern) == 0
	}

	return matchRecursive(text, pattern[1:], caseSensitive) || matchRecursive(text[1:], pattern, caseSensitive)
}

func bytesEqual(a, b byte, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}

	upper := func(c byte) byte {
		if c >= 'a' && c <= 'z' {
			return c - ('a' - 'A')
		}

		return c
	}

	return upper(a) == upper(b)
}
