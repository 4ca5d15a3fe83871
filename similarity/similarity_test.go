package similarity_test

import (
	"math"
	"testing"

	"github.com/idelchi/go-textkit/similarity"
)

func TestEditDistance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		a, b string
		want int
	}

	tcs := []testCase{
		{a: "kitten", b: "sitting", want: 3},
		{a: "", b: "", want: 0},
		{a: "", b: "abc", want: 3},
		{a: "abc", b: "", want: 3},
		{a: "same", b: "same", want: 0},
		{a: "flaw", b: "lawn", want: 2},
		{a: "abc", b: "ABC", want: 3},
		{a: "ab", b: "ba", want: 2},
		{a: "intention", b: "execution", want: 5},
	}

	for _, tc := range tcs {
		if got := similarity.EditDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}

		if got := similarity.EditDistance(tc.b, tc.a); got != tc.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	type testCase struct {
		a, b string
		want float64
	}

	tcs := []testCase{
		{a: "", b: "", want: 1},
		{a: "same", b: "same", want: 1},
		{a: "kitten", b: "sitting", want: 4.0 / 7.0},
		{a: "abc", b: "", want: 0},
		{a: "abcd", b: "wxyz", want: 0},
		{a: "help", b: "hlep", want: 0.5},
	}

	for _, tc := range tcs {
		got := similarity.Similarity(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		a, b       string
		wantLen    int
		wantStartA int
		wantStartB int
		wantString string
	}

	tcs := []testCase{
		{name: "overlapping", a: "ABABC", b: "BABCA", wantLen: 4, wantStartA: 1, wantStartB: 0, wantString: "BABC"},
		{name: "empty first", a: "", b: "abc"},
		{name: "empty second", a: "abc", b: ""},
		{name: "nothing shared", a: "abc", b: "xyz"},
		{name: "identical", a: "hello", b: "hello", wantLen: 5, wantString: "hello"},
		{name: "earliest run wins ties", a: "abxcd", b: "cdab", wantLen: 2, wantStartA: 0, wantStartB: 2, wantString: "ab"},
		{name: "case sensitive", a: "Hello", b: "hello", wantLen: 4, wantStartA: 1, wantStartB: 1, wantString: "ello"},
		{name: "single byte", a: "xay", b: "bab", wantLen: 1, wantStartA: 1, wantStartB: 1, wantString: "a"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			length, startA, startB := similarity.LongestCommonSubstring(tc.a, tc.b)
			if length != tc.wantLen || startA != tc.wantStartA || startB != tc.wantStartB {
				t.Errorf("LongestCommonSubstring(%q, %q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.a, tc.b, length, startA, startB, tc.wantLen, tc.wantStartA, tc.wantStartB)
			}

			if got := similarity.CommonSubstring(tc.a, tc.b); got != tc.wantString {
				t.Errorf("CommonSubstring(%q, %q) = %q, want %q", tc.a, tc.b, got, tc.wantString)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	a, b := "the quick brown fox", "a quick brown dog"

	wantDistance := similarity.EditDistance(a, b)
	wantLen, wantA, wantB := similarity.LongestCommonSubstring(a, b)

	for range 10 {
		if got := similarity.EditDistance(a, b); got != wantDistance {
			t.Fatalf("EditDistance changed between calls: %d != %d", got, wantDistance)
		}

		length, startA, startB := similarity.LongestCommonSubstring(a, b)
		if length != wantLen || startA != wantA || startB != wantB {
			t.Fatalf("LongestCommonSubstring changed between calls")
		}
	}
}
