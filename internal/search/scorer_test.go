package search

import (
	"math"
	"testing"

	"github.com/docsift/docsift/index"
)

func TestScoreFixtureCorpus(t *testing.T) {
	// Two handcrafted weight maps; the query matches only "doc" in each.
	idx := &index.TFIDFIndex{
		Weights: []index.DocumentWeights{
			{"test": 0.22, "doc": 0.013, "1": 0.1},
			{"test": 0.4, "doc": 0.02, "2": 0.9},
		},
		DocCount: 2,
	}

	got := ScoreAll(idx, []string{"best", "doc"})
	want := []float64{0.013, 0.02}
	if len(got) != len(want) {
		t.Fatalf("ScoreAll() returned %d scores, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("score[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScoreDuplicateQueryTokensCountEachTime(t *testing.T) {
	weights := index.DocumentWeights{"doc": 0.02}

	single := Score(weights, []string{"doc"})
	double := Score(weights, []string{"doc", "doc"})
	if math.Abs(double-2*single) > 1e-12 {
		t.Errorf("duplicate token score = %v, want %v", double, 2*single)
	}
}

func TestScoreZeroOverlap(t *testing.T) {
	weights := index.DocumentWeights{"alpha": 0.5, "beta": 0.25}

	if got := Score(weights, []string{"gamma", "delta"}); got != 0 {
		t.Errorf("zero-overlap score = %v, want 0", got)
	}
	if got := Score(weights, nil); got != 0 {
		t.Errorf("empty-query score = %v, want 0", got)
	}
	if got := Score(index.DocumentWeights{}, []string{"alpha"}); got != 0 {
		t.Errorf("empty-document score = %v, want 0", got)
	}
}

func TestScoreNonNegative(t *testing.T) {
	idx := index.Build([][]string{
		{"red", "green", "blue"},
		{"red", "red"},
		{},
	})

	queries := [][]string{
		{"red"},
		{"red", "green", "green"},
		{"unknown"},
		{},
	}
	for _, query := range queries {
		for i, score := range ScoreAll(idx, query) {
			if score < 0 {
				t.Errorf("query %v doc %d: score = %v, want >= 0", query, i, score)
			}
		}
	}
}
