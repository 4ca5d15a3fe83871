package wildcard_test

import (
	"slices"
	"testing"

	"github.com/idelchi/go-textkit/wildcard"
)

// TestSet contains basic test cases for ordered rule sets.
func TestSet(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		rules    []string
		caseFold bool
		text     string
		want     bool
	}

	tcs := []testCase{
		{
			name:  "empty set matches nothing",
			rules: nil,
			text:  "anything",
			want:  false,
		},
		{
			name:  "simple rule",
			rules: []string{"*.log"},
			text:  "debug.log",
			want:  true,
		},
		{
			name:  "simple rule no match",
			rules: []string{"*.log"},
			text:  "debug.txt",
			want:  false,
		},
		{
			name:  "negation re-includes",
			rules: []string{"*.log", "!keep.log"},
			text:  "keep.log",
			want:  false,
		},
		{
			name:  "last rule wins",
			rules: []string{"*.log", "!keep.log", "keep*"},
			text:  "keep.log",
			want:  true,
		},
		{
			name:  "comments and blanks are skipped",
			rules: []string{"# *.log", "", "*.txt"},
			text:  "# *.log",
			want:  false,
		},
		{
			name:  "escaped hash is literal",
			rules: []string{"\\#notes"},
			text:  "#notes",
			want:  true,
		},
		{
			name:  "escaped bang is literal",
			rules: []string{"\\!important"},
			text:  "!important",
			want:  true,
		},
		{
			name:  "unescaped trailing spaces are trimmed",
			rules: []string{"name   "},
			text:  "name",
			want:  true,
		},
		{
			name:  "escaped trailing space is kept",
			rules: []string{"name\\ "},
			text:  "name ",
			want:  true,
		},
		{
			name:     "case folding applies to every rule",
			rules:    []string{"*.LOG", "!KEEP.*"},
			caseFold: true,
			text:     "keep.log",
			want:     false,
		},
		{
			name:     "case sensitive by default",
			rules:    []string{"*.LOG"},
			caseFold: false,
			text:     "debug.log",
			want:     false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := wildcard.NewSet(wildcard.Options{CaseFold: tc.caseFold}, tc.rules...)

			if got := s.Match(tc.text); got != tc.want {
				t.Errorf("Set%v.Match(%q) = %v, want %v", tc.rules, tc.text, got, tc.want)
			}
		})
	}
}

func TestSetRules(t *testing.T) {
	t.Parallel()

	s := wildcard.NewSet(wildcard.Options{}, "*.log", "# comment", "", "!keep.log", "   ")

	want := []string{"*.log", "!keep.log"}
	if got := s.Rules(); !slices.Equal(got, want) {
		t.Errorf("Rules() = %q, want %q", got, want)
	}

	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}

	// Returned slice is a copy.
	rules := s.Rules()
	rules[0] = "mutated"

	if s.Rules()[0] != "*.log" {
		t.Error("Rules() must return a copy")
	}
}
