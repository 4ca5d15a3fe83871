package similarity

import (
	"cmp"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/idelchi/go-textkit/internal/ascii"
)

// DefaultThreshold is the score a candidate needs to be suggested when SuggestOptions leaves
// Threshold at zero.
const DefaultThreshold = 0.5

// Suggestion is a ranked candidate returned by Suggest.
type Suggestion struct {
	// Candidate is the suggested string, as given by the caller.
	Candidate string
	// Score is the Similarity of the lowercased target and candidate.
	Score float64
	// Distance is the EditDistance of the lowercased target and candidate.
	Distance int
}

// SuggestOptions tunes Suggest.
type SuggestOptions struct {
	// Threshold is the minimal score a candidate needs. Zero means DefaultThreshold.
	Threshold float64
	// Limit caps the number of suggestions. Zero or less means no cap.
	Limit int
}

// Suggest ranks candidates by how closely they resemble target, for "did you mean" hints.
//
// Scores compare the ASCII-lowercased forms. A candidate qualifies when its score reaches the
// threshold, or when target appears in it as a case-insensitive subsequence (so "stat" still
// proposes "status"). Results are ordered by score (highest first), then by distance, then by
// candidate, and truncated to Limit. Duplicate candidates are reported once.
//
// Example:
//
//	similarity.Suggest("hlep", []string{"help", "hash", "echo"}, similarity.SuggestOptions{})
//	// [{help 0.5 2}]
func Suggest(target string, candidates []string, opt SuggestOptions) []Suggestion {
	threshold := opt.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	lowered := ascii.Lower(target)
	seen := make(map[string]struct{}, len(candidates))

	var suggestions []Suggestion

	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}

		seen[candidate] = struct{}{}

		folded := ascii.Lower(candidate)
		distance := EditDistance(lowered, folded)
		score := scoreFrom(distance, len(lowered), len(folded))

		if score < threshold && !fuzzy.MatchFold(target, candidate) {
			continue
		}

		suggestions = append(suggestions, Suggestion{Candidate: candidate, Score: score, Distance: distance})
	}

	slices.SortFunc(suggestions, func(x, y Suggestion) int {
		return cmp.Or(
			cmp.Compare(y.Score, x.Score),
			cmp.Compare(x.Distance, y.Distance),
			cmp.Compare(x.Candidate, y.Candidate),
		)
	})

	if opt.Limit > 0 && len(suggestions) > opt.Limit {
		suggestions = suggestions[:opt.Limit]
	}

	return suggestions
}

// Candidates returns only the candidate strings of Suggest, in rank order.
func Candidates(target string, candidates []string, opt SuggestOptions) []string {
	suggestions := Suggest(target, candidates, opt)

	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Candidate)
	}

	return names
}

// scoreFrom mirrors Similarity for an already computed distance.
func scoreFrom(distance, lenA, lenB int) float64 {
	longer := max(lenA, lenB)
	if longer == 0 {
		return 1
	}

	return float64(longer-distance) / float64(longer)
}
