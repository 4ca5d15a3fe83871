package similarity_test

import (
	"strings"
	"testing"

	"github.com/agnivade/levenshtein"

	"github.com/idelchi/go-textkit/similarity"
)

// maxFuzzLen keeps the quadratic tables small.
const maxFuzzLen = 64

// alphabet is ASCII only, so the rune-based oracle sees the same units we do.
const alphabet = "abcAB .-"

// FuzzEditDistance compares EditDistance with an independent Levenshtein implementation and
// checks the metric bounds that every distance must respect.
func FuzzEditDistance(f *testing.F) {
	seed := func(a, b string) { f.Add(a, b) }
	seed("kitten", "sitting")
	seed("", "")
	seed("", "abc")
	seed("flaw", "lawn")
	seed("ABABC", "BABCA")

	f.Fuzz(func(t *testing.T, rawA, rawB string) {
		a, b := sanitize(rawA), sanitize(rawB)

		got := similarity.EditDistance(a, b)

		if want := levenshtein.ComputeDistance(a, b); got != want {
			t.Fatalf("EditDistance(%q, %q) = %d, levenshtein says %d", a, b, got, want)
		}

		if got < abs(len(a)-len(b)) || got > max(len(a), len(b)) {
			t.Fatalf("EditDistance(%q, %q) = %d out of bounds", a, b, got)
		}

		if score := similarity.Similarity(a, b); score < 0 || score > 1 {
			t.Fatalf("Similarity(%q, %q) = %v out of [0, 1]", a, b, score)
		}
	})
}

// FuzzLongestCommonSubstring checks that the reported run occurs in both inputs at the
// reported positions and that no longer run exists.
func FuzzLongestCommonSubstring(f *testing.F) {
	seed := func(a, b string) { f.Add(a, b) }
	seed("ABABC", "BABCA")
	seed("abxcd", "cdab")
	seed("", "x")

	f.Fuzz(func(t *testing.T, rawA, rawB string) {
		a, b := sanitize(rawA), sanitize(rawB)

		length, startA, startB := similarity.LongestCommonSubstring(a, b)
		if length == 0 {
			if startA != 0 || startB != 0 {
				t.Fatalf("empty run reported at (%d, %d)", startA, startB)
			}

			for i := range len(a) {
				if strings.IndexByte(b, a[i]) >= 0 {
					t.Fatalf("LongestCommonSubstring(%q, %q) missed shared byte %q", a, b, a[i])
				}
			}

			return
		}

		if a[startA:startA+length] != b[startB:startB+length] {
			t.Fatalf("LongestCommonSubstring(%q, %q) = (%d, %d, %d): runs differ", a, b, length, startA, startB)
		}

		for i := 0; i+length+1 <= len(a); i++ {
			if strings.Contains(b, a[i:i+length+1]) {
				t.Fatalf("LongestCommonSubstring(%q, %q) = %d but %q is shared", a, b, length, a[i:i+length+1])
			}
		}
	})
}

// sanitize maps arbitrary fuzzer bytes onto alphabet and bounds the length.
func sanitize(s string) string {
	n := min(len(s), maxFuzzLen)

	out := make([]byte, n)
	for i := range n {
		out[i] = alphabet[int(s[i])%len(alphabet)]
	}

	return string(out)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
