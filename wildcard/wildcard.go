// Package wildcard implements glob-style matching of a text against a pattern in which
// '*' matches any run of bytes (including none) and '?' matches exactly one byte.
// Every other pattern byte is a literal. There is no escape character and no character class.
//
// Matching works directly on the pattern, without a compile step, and is iterative:
// a mismatch after a '*' resumes from the most recent star, so stack usage is constant and
// the worst case is bounded by len(text)*len(pattern) comparisons.
package wildcard

import "github.com/idelchi/go-textkit/internal/ascii"

// Pattern metacharacters.
const (
	// Matches zero or more bytes.
	anyRun = '*'
	// Matches exactly one byte.
	anyOne = '?'
)

// Internal matching flags (bitmask). External callers use Match or MatchOpt.
const (
	// ASCII case-folding.
	wcCaseFold = 1 << iota
)

// Match reports whether text matches pattern. When caseSensitive is false, ASCII letters are
// compared case-insensitively; non-ASCII bytes always compare by raw value.
//
// Example:
//
//	wildcard.Match("README.TXT", "*.txt", false) // true
//	wildcard.Match("README.TXT", "*.txt", true)  // false
//	wildcard.Match("abc", "a?c", true)           // true
func Match(text, pattern string, caseSensitive bool) bool {
	flags := 0

	if !caseSensitive {
		flags = wcCaseFold
	}

	return wildcard(text, pattern, flags)
}

// Options are options for MatchOpt.
type Options struct {
	// CaseFold: enable ASCII-only case-insensitive matching.
	CaseFold bool
}

// MatchOpt matches text against pattern with explicit options.
func MatchOpt(text, pattern string, opt Options) bool {
	flags := 0

	if opt.CaseFold {
		flags |= wcCaseFold
	}

	return wildcard(text, pattern, flags)
}

// HasMeta reports whether pattern contains any wildcard byte.
// A pattern without one only matches text equal to it.
func HasMeta(pattern string) bool {
	for idx := range len(pattern) {
		if pattern[idx] == anyRun || pattern[idx] == anyOne {
			return true
		}
	}

	return false
}

// fold applies ASCII-only case folding to b when wcCaseFold is set in flags.
func fold(b byte, flags int) byte {
	if flags&wcCaseFold != 0 {
		return ascii.ToLower(b)
	}

	return b
}

// wildcard is the core matching routine.
//
// ti and pi walk text and pattern in lockstep. When a '*' is seen, its position (starPi) and
// the text position it was reached at (starTi) are bookmarked and the star first matches
// nothing. On a later mismatch the star absorbs one more byte: the text resumes at
// starTi+1 and the pattern right after the star. Only the most recent star needs a bookmark,
// since anything an earlier star could absorb the later one can absorb as well.
func wildcard(text, pattern string, flags int) bool {
	ti, pi := 0, 0

	starPi, starTi := -1, 0

	for ti < len(text) {
		if pi < len(pattern) {
			pCh := pattern[pi]

			switch {
			case pCh == anyRun:
				starPi, starTi = pi, ti

				pi++

				continue
			case pCh == anyOne || fold(text[ti], flags) == fold(pCh, flags):
				pi++

				ti++

				continue
			}
		}

		// Mismatch, or pattern exhausted before the text: backtrack into the last star.
		if starPi < 0 {
			return false
		}

		starTi++

		ti = starTi

		pi = starPi + 1
	}

	// Text exhausted: only stars may remain in the pattern.
	for pi < len(pattern) && pattern[pi] == anyRun {
		pi++
	}

	return pi == len(pattern)
}
