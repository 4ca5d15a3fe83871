package textkit_test

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	yaml "github.com/goccy/go-yaml"
)

// testFilter allows filtering which test files to run via command line.
// Usage: go test -f "match,tokenize" to run only match.yml and tokenize.yml.
//
//nolint:gochecknoglobals	// Test flag needs to be global for reuse.
var testFilter = flag.String("f", "", "YAML files to run (e.g. 'match,similarity')")

// Command is an expected command of a tokenize case.
type Command struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
}

// Substring is the expected longest common substring of a similarity case.
type Substring struct {
	Length int    `yaml:"length"`
	StartA int    `yaml:"a"`
	StartB int    `yaml:"b"`
	Text   string `yaml:"text"`
}

// Case is a single check within a group. Which fields are read depends on the group's kind;
// expectations left out of a case are not checked.
type Case struct {
	// Description provides human-readable context for this case.
	Description string `yaml:"description"`

	// match
	Text          string `yaml:"text"`
	Pattern       string `yaml:"pattern"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Matched       *bool  `yaml:"matched,omitempty"`

	// tokenize
	Line       string    `yaml:"line"`
	Separators string    `yaml:"separators"`
	Explode    []string  `yaml:"explode,omitempty"`
	Args       []string  `yaml:"args,omitempty"`
	Commands   []Command `yaml:"commands,omitempty"`

	// similarity
	A          string     `yaml:"a"`
	B          string     `yaml:"b"`
	Distance   *int       `yaml:"distance,omitempty"`
	Similarity *float64   `yaml:"similarity,omitempty"`
	Substring  *Substring `yaml:"substring,omitempty"`

	// pathkey
	Keys       []string `yaml:"keys"`
	Same       *bool    `yaml:"same,omitempty"`
	Normalized *string  `yaml:"normalized,omitempty"`
}

// Group is a named set of cases exercising one component.
type Group struct {
	// Name is the identifier for this group.
	Name string `yaml:"name"`
	// Description provides context about what this group validates.
	Description string `yaml:"description"`
	// Kind selects the component under test: match, tokenize, similarity or pathkey.
	Kind string `yaml:"kind"`
	// Cases holds the checks of the group.
	Cases []Case `yaml:"cases"`
}

// Groups is the content of a single YAML test file.
type Groups []Group

// ParseFilter parses a comma-separated filter string into a slice of trimmed strings.
//
// Example:
//
//	ParseFilter("match, tokenize ") returns ["match", "tokenize"]
//	ParseFilter("") returns nil
func ParseFilter(filter string) []string {
	if filter == "" {
		return nil
	}

	parts := strings.Split(filter, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// BaseNameWithoutExt extracts the base filename without its extension.
//
// Example:
//
//	BaseNameWithoutExt("/path/to/match.yml") returns "match"
func BaseNameWithoutExt(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// ShouldIncludeFile reports whether a test file passes the filter.
// An empty filter includes every file.
func ShouldIncludeFile(filename string, filter []string) bool {
	return len(filter) == 0 || slices.Contains(filter, BaseNameWithoutExt(filename))
}

// Files returns the files matching a doublestar pattern that pass the filter, sorted.
func Files(pattern string, filter []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	var out []string

	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() && ShouldIncludeFile(m, filter) {
			out = append(out, m)
		}
	}

	slices.Sort(out)

	return out, nil
}

// LoadGroups reads and parses a YAML test file.
//
// The YAML structure expected:
//
//   - name: "group name"
//     description: "what this tests"
//     kind: match
//     cases:
//       - text: "README.TXT"
//         pattern: "*.txt"
//         matched: true
func LoadGroups(path string) (Groups, error) {
	data, err := os.ReadFile(path) //nolint:gosec	// OK to include file for test purposes.
	if err != nil {
		return nil, err
	}

	var groups Groups
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}
