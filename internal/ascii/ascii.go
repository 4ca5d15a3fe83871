// Package ascii provides the byte-level helpers shared by the text packages: ASCII-only
// classification, case folding and whitespace trimming. Non-ASCII bytes are never altered.
package ascii

import "strings"

// Whitespace is the set of bytes treated as blank by the tokenizer and the trimming helpers.
const Whitespace = " \t\f\v\n\r"

// lowerDelta is the distance between uppercase and lowercase ASCII letters.
const lowerDelta byte = 'a' - 'A'

// IsUpper reports whether b is an ASCII uppercase letter (A-Z).
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower reports whether b is an ASCII lowercase letter (a-z).
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsSpace reports whether b is one of the bytes in Whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\f', '\v', '\n', '\r':
		return true
	}

	return false
}

// ToLower returns b converted to lowercase if it is ASCII uppercase.
// For all other bytes, it returns b unchanged.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + lowerDelta
	}

	return b
}

// ToUpper returns b converted to uppercase if it is ASCII lowercase.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - lowerDelta
	}

	return b
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b byte) bool {
	return ToLower(a) == ToLower(b)
}

// Lower returns s with every ASCII uppercase letter lowercased.
// The input is returned as-is when it holds no uppercase letters.
func Lower(s string) string {
	idx := 0
	for idx < len(s) && !IsUpper(s[idx]) {
		idx++
	}

	if idx == len(s) {
		return s
	}

	buf := []byte(s)
	for ; idx < len(buf); idx++ {
		buf[idx] = ToLower(buf[idx])
	}

	return string(buf)
}

// TrimSpace removes leading and trailing Whitespace bytes.
func TrimSpace(s string) string {
	return strings.Trim(s, Whitespace)
}

// TrimLeftSpace removes leading Whitespace bytes.
func TrimLeftSpace(s string) string {
	return strings.TrimLeft(s, Whitespace)
}

// TrimRightSpace removes trailing Whitespace bytes.
func TrimRightSpace(s string) string {
	return strings.TrimRight(s, Whitespace)
}
