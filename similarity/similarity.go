// Package similarity measures how alike two strings are.
//
// All comparisons are byte-wise and case-sensitive: EditDistance counts the unit-cost
// insertions, deletions and substitutions needed to turn one string into the other,
// Similarity scales that distance into [0, 1], and LongestCommonSubstring locates the longest
// contiguous run shared by both inputs. Suggest builds on these to rank "did you mean"
// candidates.
package similarity

// EditDistance returns the Levenshtein distance between a and b.
//
// The full (len(a)+1) x (len(b)+1) table is built; d[i][j] holds the minimum number of edits
// turning a[:i] into b[:j]. Inputs are compared byte by byte.
//
// Example:
//
//	similarity.EditDistance("kitten", "sitting") // 3
func EditDistance(a, b string) int {
	rows, cols := len(a)+1, len(b)+1

	d := make([][]int, rows)
	cells := make([]int, rows*cols)

	for i := range d {
		d[i], cells = cells[:cols:cols], cells[cols:]
		d[i][0] = i
	}

	for j := range cols {
		d[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}

	return d[rows-1][cols-1]
}

// Similarity returns (L - EditDistance(a, b)) / L where L is the length of the longer input.
// The result lies in [0, 1]; identical strings, including two empty ones, score 1.
//
// Example:
//
//	similarity.Similarity("kitten", "sitting") // 4/7
func Similarity(a, b string) float64 {
	longer := max(len(a), len(b))
	if longer == 0 {
		return 1
	}

	return float64(longer-EditDistance(a, b)) / float64(longer)
}

// LongestCommonSubstring returns the length of the longest contiguous byte run shared by a and
// b, together with its start index in each input. When several runs share the maximal length,
// the one completed first while scanning a (then b) from the left wins. Empty input, or no
// shared byte, yields (0, 0, 0).
//
// Only two rows of run lengths are kept, swapped after each byte of a.
//
// Example:
//
//	similarity.LongestCommonSubstring("ABABC", "BABCA") // 4, 1, 0 ("BABC")
func LongestCommonSubstring(a, b string) (length, startA, startB int) {
	if a == "" || b == "" {
		return 0, 0, 0
	}

	curr := make([]int, len(b))
	prev := make([]int, len(b))

	for i := range len(a) {
		for j := range len(b) {
			if a[i] != b[j] {
				curr[j] = 0

				continue
			}

			run := 1
			if i > 0 && j > 0 {
				run += prev[j-1]
			}

			curr[j] = run

			if run > length {
				length = run
				startA = i - run + 1
				startB = j - run + 1
			}
		}

		curr, prev = prev, curr
	}

	return length, startA, startB
}

// CommonSubstring returns the longest common substring of a and b itself, taken from a.
// It returns "" when the inputs share nothing.
func CommonSubstring(a, b string) string {
	length, start, _ := LongestCommonSubstring(a, b)

	return a[start : start+length]
}
