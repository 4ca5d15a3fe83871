package similarity_test

import (
	"slices"
	"testing"

	"github.com/idelchi/go-textkit/similarity"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		target     string
		candidates []string
		opt        similarity.SuggestOptions
		want       []string
	}

	tcs := []testCase{
		{
			name:       "transposed letters",
			target:     "hlep",
			candidates: []string{"help", "hash", "echo"},
			want:       []string{"help"},
		},
		{
			name:       "case is ignored",
			target:     "HELP",
			candidates: []string{"help"},
			want:       []string{"help"},
		},
		{
			name:       "subsequence below threshold",
			target:     "st",
			candidates: []string{"status", "echo"},
			want:       []string{"status"},
		},
		{
			name:       "ranked and limited",
			target:     "test",
			candidates: []string{"zzzz", "toast", "rest", "tests", "best"},
			opt:        similarity.SuggestOptions{Limit: 2},
			want:       []string{"tests", "best"},
		},
		{
			name:       "ranked without limit",
			target:     "test",
			candidates: []string{"zzzz", "toast", "rest", "tests", "best"},
			want:       []string{"tests", "best", "rest", "toast"},
		},
		{
			name:       "high threshold",
			target:     "hlep",
			candidates: []string{"help"},
			opt:        similarity.SuggestOptions{Threshold: 0.9},
			want:       nil,
		},
		{
			name:       "duplicates collapsed",
			target:     "help",
			candidates: []string{"help", "help"},
			want:       []string{"help"},
		},
		{
			name:       "no candidates",
			target:     "help",
			candidates: nil,
			want:       nil,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := similarity.Candidates(tc.target, tc.candidates, tc.opt)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Suggest(%q, %q) = %q, want %q", tc.target, tc.candidates, got, tc.want)
			}
		})
	}
}

func TestSuggestScores(t *testing.T) {
	t.Parallel()

	got := similarity.Suggest("hlep", []string{"Help"}, similarity.SuggestOptions{})
	if len(got) != 1 {
		t.Fatalf("Suggest returned %d suggestions, want 1", len(got))
	}

	want := similarity.Suggestion{Candidate: "Help", Score: 0.5, Distance: 2}
	if got[0] != want {
		t.Errorf("Suggest()[0] = %+v, want %+v", got[0], want)
	}
}
