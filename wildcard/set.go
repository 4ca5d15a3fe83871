package wildcard

import "strings"

// backslashOffset is the offset from the trailing byte to the first candidate escape backslash.
const backslashOffset = 2

// rule represents a parsed wildcard rule with its attributes.
type rule struct {
	// original is the raw line before any processing
	original string
	// pattern is the processed pattern after escape handling and trimming
	pattern string
	// negated indicates this rule un-matches (starts with !)
	negated bool
}

// Set is an ordered list of wildcard rules evaluated like an ignore file:
// every rule is applied in order and the last one matching the text decides.
// A negated rule (leading '!') un-matches text that an earlier rule matched.
//
// A Set is immutable once built and safe for concurrent use.
type Set struct {
	// rules holds the parsed rules in the order they appear
	rules []rule
	// flags holds the matching flags applied to every rule
	flags int
}

// NewSet creates a Set from rule lines.
//
// Lines are parsed as follows:
//   - Blank lines are ignored
//   - Lines starting with # are comments (unless escaped with \#)
//   - Lines starting with ! are negated rules (unless escaped with \!)
//   - Trailing spaces are trimmed unless escaped with a backslash
//
// Example:
//
//	s := NewSet(Options{}, "*.log", "!keep.log", "# comment")
//	s.Match("app.log")  // true
//	s.Match("keep.log") // false (negated)
func NewSet(opt Options, lines ...string) *Set {
	rules := make([]rule, 0, len(lines))

	for _, line := range lines {
		if r := parseRule(line); r != nil {
			rules = append(rules, *r)
		}
	}

	flags := 0
	if opt.CaseFold {
		flags |= wcCaseFold
	}

	return &Set{
		rules: rules,
		flags: flags,
	}
}

// Match reports whether text is matched by the set.
// A set without rules matches nothing.
func (s *Set) Match(text string) bool {
	matched := false

	for _, r := range s.rules {
		if wildcard(text, r.pattern, s.flags) {
			matched = !r.negated
		}
	}

	return matched
}

// Rules returns a copy of the original lines that produced a rule.
// Blank lines and comments that were skipped during parsing are not included.
func (s *Set) Rules() []string {
	rules := make([]string, len(s.rules))
	for i, r := range s.rules {
		rules[i] = r.original
	}

	return rules
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// parseRule parses a single line into a rule.
// Returns nil for blank lines, comments, or lines that are empty after trimming.
func parseRule(line string) *rule {
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	r := &rule{
		original: line,
	}

	switch {
	case strings.HasPrefix(line, "\\!"), strings.HasPrefix(line, "\\#"):
		line = line[1:]
	case strings.HasPrefix(line, "!"):
		r.negated = true
		line = line[1:]
	}

	line = trimTrailingUnescapedSpaces(line)

	if line == "" {
		return nil
	}

	r.pattern = line

	return r
}

// trimTrailingUnescapedSpaces removes unescaped trailing spaces and turns "\ " into " ".
func trimTrailingUnescapedSpaces(str string) string {
	for len(str) > 0 && str[len(str)-1] == ' ' {
		backslashes := 0

		for i := len(str) - backslashOffset; i >= 0 && str[i] == '\\'; i-- {
			backslashes++
		}

		if backslashes%2 == 1 {
			break // Space is escaped
		}

		str = str[:len(str)-1]
	}

	if !strings.Contains(str, "\\ ") {
		return str
	}

	var result strings.Builder
	result.Grow(len(str))

	for idx := 0; idx < len(str); idx++ {
		if idx < len(str)-1 && str[idx] == '\\' && str[idx+1] == ' ' {
			result.WriteByte(' ')

			idx++
		} else {
			result.WriteByte(str[idx])
		}
	}

	return result.String()
}
