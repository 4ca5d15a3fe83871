// Package pathkey hashes and compares path-like keys case-insensitively.
//
// A key is reduced to its normalized form before hashing or comparison:
//
//   - ASCII letters are lowercased (other bytes are kept as-is),
//   - a backslash is read as a forward slash,
//   - a slash at the first or at the last index of the original string is skipped.
//
// So "/Foo/Bar", "foo/bar", "FOO/BAR/" and `\foo\bar` are all the same key. Only the edges are
// trimmed: inner slashes, including doubled ones, stay significant.
//
// Hash and Equal agree with each other: Equal(a, b) implies Hash(a) == Hash(b), which makes them
// usable together as the hash and equality of a hash table. EqualFold and HashFold form a second,
// simpler pair that folds ASCII case only.
package pathkey

import (
	"github.com/idelchi/go-textkit/internal/ascii"
)

// djb2 parameters.
const (
	// Initial hash value.
	seed uint64 = 5381
	// Per-byte shift: h<<shift + h == h*33.
	shift = 5
)

// Separators recognized in keys.
const (
	slash     = '/'
	backslash = '\\'
)

// Hash returns the djb2 hash (h = h*33 + c, starting at 5381) of the normalized form of s.
//
// Example:
//
//	pathkey.Hash("/Foo/Bar") == pathkey.Hash(`\foo\bar`) // true
func Hash(s string) uint64 {
	h := seed

	for i := range len(s) {
		if c, ok := keyByte(s, i); ok {
			h = (h << shift) + h + uint64(c)
		}
	}

	return h
}

// Equal reports whether a and b have the same normalized form.
func Equal(a, b string) bool {
	i, j := 0, 0

	for {
		ca, okA := nextKeyByte(a, &i)
		cb, okB := nextKeyByte(b, &j)

		if !okA || !okB {
			return okA == okB
		}

		if ca != cb {
			return false
		}
	}
}

// Normalize returns the normalized form of s, the byte sequence Hash consumes.
//
// Example:
//
//	pathkey.Normalize(`\Foo\Bar\`) // "foo/bar"
func Normalize(s string) string {
	out := make([]byte, 0, len(s))

	for i := range len(s) {
		if c, ok := keyByte(s, i); ok {
			out = append(out, c)
		}
	}

	return string(out)
}

// EqualFold reports whether a and b have the same length and are equal under ASCII case folding.
// Slashes get no special treatment.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range len(a) {
		if !ascii.EqualFold(a[i], b[i]) {
			return false
		}
	}

	return true
}

// HashFold returns the djb2 hash of s with ASCII letters lowercased.
// EqualFold(a, b) implies HashFold(a) == HashFold(b).
func HashFold(s string) uint64 {
	h := seed

	for i := range len(s) {
		h = (h << shift) + h + uint64(ascii.ToLower(s[i]))
	}

	return h
}

// keyByte returns the normalized byte for index i of s, or false when the byte is skipped.
func keyByte(s string, i int) (byte, bool) {
	c := s[i]
	if c == backslash {
		c = slash
	}

	if c == slash && (i == 0 || i == len(s)-1) {
		return 0, false
	}

	return ascii.ToLower(c), true
}

// nextKeyByte advances *i past skipped bytes and returns the next normalized byte of s.
func nextKeyByte(s string, i *int) (byte, bool) {
	for *i < len(s) {
		c, ok := keyByte(s, *i)
		*i++

		if ok {
			return c, true
		}
	}

	return 0, false
}
