package resources

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// countingSuggester records how often the provider stage runs.
type countingSuggester struct {
	calls   int
	results []Descriptor
	err     error
}

func (c *countingSuggester) Suggest(_ context.Context, topic, difficulty string) ([]Descriptor, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.results, nil
}

func TestFetch_CacheHitSkipsStages(t *testing.T) {
	sug := &countingSuggester{results: []Descriptor{
		{Title: "Go in Action", URL: "https://example.org/gia", Rating: 4.5},
	}}
	f := NewFetcher(sug, nil)
	ctx := context.Background()

	first := f.Fetch(ctx, "Go", "beginner", "mixed")
	if sug.calls != 1 {
		t.Fatalf("suggester calls = %d, want 1", sug.calls)
	}

	second := f.Fetch(ctx, "Go", "beginner", "mixed")
	if sug.calls != 1 {
		t.Errorf("cached fetch re-ran stages: calls = %d, want 1", sug.calls)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result length %d != original %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result[%d] differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFetch_DifferentKeysMissCache(t *testing.T) {
	sug := &countingSuggester{}
	f := NewFetcher(sug, nil)
	ctx := context.Background()

	f.Fetch(ctx, "Go", "beginner", "mixed")
	f.Fetch(ctx, "Go", "advanced", "mixed")
	f.Fetch(ctx, "Rust", "beginner", "mixed")

	if sug.calls != 3 {
		t.Errorf("suggester calls = %d, want 3 (one per distinct key)", sug.calls)
	}
}

func TestFetch_CuratedTopicSkipsSuggester(t *testing.T) {
	sug := &countingSuggester{}
	f := NewFetcher(sug, nil)

	got := f.Fetch(context.Background(), "Machine Learning", "intermediate", "mixed")

	// 2 curated + 1 templated entry reach the limit before the provider
	// stage is consulted.
	if len(got) != 3 {
		t.Fatalf("results = %d, want 3", len(got))
	}
	if sug.calls != 0 {
		t.Errorf("suggester calls = %d, want 0", sug.calls)
	}
}

func TestFetch_TruncatesToLimit(t *testing.T) {
	sug := &countingSuggester{results: []Descriptor{
		{Title: "A", URL: "https://a.example", Rating: 4.0},
		{Title: "B", URL: "https://b.example", Rating: 4.1},
		{Title: "C", URL: "https://c.example", Rating: 4.2},
		{Title: "D", URL: "https://d.example", Rating: 4.3},
	}}
	f := NewFetcher(sug, nil)

	got := f.Fetch(context.Background(), "Go", "beginner", "mixed")
	if len(got) != 3 {
		t.Errorf("results = %d, want 3", len(got))
	}
}

func TestFetch_SuggesterErrorFallsBack(t *testing.T) {
	sug := &countingSuggester{err: errors.New("provider down")}
	f := NewFetcher(sug, nil)
	ctx := context.Background()

	got := f.Fetch(ctx, "COBOL", "advanced", "mixed")
	if len(got) != 2 {
		t.Fatalf("fallback results = %d, want 2", len(got))
	}
	if !strings.Contains(got[0].Title, "Getting Started") {
		t.Errorf("first fallback title = %q, want a Getting Started entry", got[0].Title)
	}
	if got[1].Type != "documentation" {
		t.Errorf("second fallback type = %q, want documentation", got[1].Type)
	}

	// Fallbacks are not cached, so the provider gets another chance.
	f.Fetch(ctx, "COBOL", "advanced", "mixed")
	if sug.calls != 2 {
		t.Errorf("suggester calls = %d, want 2 (fallback must not be cached)", sug.calls)
	}
}

func TestFetch_NilSuggesterStillProduces(t *testing.T) {
	f := NewFetcher(nil, nil)

	got := f.Fetch(context.Background(), "Haskell", "beginner", "mixed")
	if len(got) == 0 {
		t.Fatal("expected at least the templated entry")
	}
	if !strings.Contains(got[0].Title, "Haskell") {
		t.Errorf("title = %q, want the topic in it", got[0].Title)
	}
}

func TestCuratedResources_DifficultyFilter(t *testing.T) {
	tests := []struct {
		topic      string
		difficulty string
		want       int
	}{
		{"Python", "beginner", 2},
		{"Python", "advanced", 0},
		{"Python", "mixed", 2},
		{"Machine Learning", "intermediate", 2},
		{"Machine Learning", "beginner", 0},
		{"Data Analysis", "intermediate", 1},
		{"Unknown Topic", "beginner", 0},
	}
	for _, tt := range tests {
		got := curatedResources(tt.topic, tt.difficulty)
		if len(got) != tt.want {
			t.Errorf("curatedResources(%q, %q) = %d entries, want %d",
				tt.topic, tt.difficulty, len(got), tt.want)
		}
	}
}

func TestRankAndFilter(t *testing.T) {
	list := []Descriptor{
		{Title: "Unrelated Guide", Description: "nothing relevant", URL: "https://one.example", Rating: 5.0},
		{Title: "Go Tutorial", Description: "learn Go fast", URL: "https://two.example", Rating: 4.0},
		{Title: "Duplicate", URL: "https://one.example", Rating: 5.0},
	}

	got := rankAndFilter(list, "Go")
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2 after URL dedup", len(got))
	}
	// 4.0*0.7 + 1.0 title + 0.5 description = 4.3 beats 5.0*0.7 = 3.5.
	if got[0].Title != "Go Tutorial" {
		t.Errorf("top result = %q, want 'Go Tutorial'", got[0].Title)
	}
}

func TestRankAndFilter_StableOnTies(t *testing.T) {
	list := []Descriptor{
		{Title: "First", URL: "https://a.example", Rating: 4.0},
		{Title: "Second", URL: "https://b.example", Rating: 4.0},
	}
	got := rankAndFilter(list, "zzz")
	if got[0].Title != "First" || got[1].Title != "Second" {
		t.Errorf("tied scores must keep pipeline order, got %q then %q", got[0].Title, got[1].Title)
	}
}
