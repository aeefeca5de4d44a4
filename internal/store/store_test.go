package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestPathGeneratedRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	paths := []PathGeneratedEventData{
		{PathID: "p1", UserEmail: "a@example.com", GoalSkill: "Machine Learning", TargetLevel: "INTERMEDIATE", Modules: 3, Steps: 7, TotalHours: 120, TotalCostUSD: 49.0, Months: 3, Confidence: 0.82, Fallback: false},
		{PathID: "p2", UserEmail: "a@example.com", GoalSkill: "Quantum Computing", TargetLevel: "BEGINNER", Modules: 1, Steps: 1, TotalHours: 20, TotalCostUSD: 0, Months: 2, Confidence: 0.5, Fallback: true},
		{PathID: "p3", UserEmail: "b@example.com", GoalSkill: "SQL", TargetLevel: "ADVANCED", Modules: 2, Steps: 5, TotalHours: 60, TotalCostUSD: 0, Months: 2, Confidence: 0.74, Fallback: false},
	}
	for i, p := range paths {
		if err := repo.AppendPathGenerated(ctx, p); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentPaths(ctx, 0)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// Newest first.
	if records[0].PathID != "p3" || records[2].PathID != "p1" {
		t.Errorf("order = [%s, %s, %s], want newest first",
			records[0].PathID, records[1].PathID, records[2].PathID)
	}
	got := records[2]
	if got.GoalSkill != "Machine Learning" {
		t.Errorf("goal skill = %q, want 'Machine Learning'", got.GoalSkill)
	}
	if got.TotalCostUSD != 49.0 {
		t.Errorf("total cost = %v, want 49.0", got.TotalCostUSD)
	}
	if got.Confidence != 0.82 {
		t.Errorf("confidence = %v, want 0.82", got.Confidence)
	}
	if records[1].Fallback != true {
		t.Error("expected p2 to be marked fallback")
	}
}

func TestRecentPathsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendPathGenerated(ctx, PathGeneratedEventData{
			PathID:    fmt.Sprintf("p%d", i+1),
			GoalSkill: "Python",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentPaths(ctx, 2)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].PathID != "p5" {
		t.Errorf("first record = %q, want 'p5'", records[0].PathID)
	}
}

func TestFetchStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ResourceFetchEventData{
		{Topic: "Python", Difficulty: "beginner", ResourceType: "course", Results: 3},
		{Topic: "Python", Difficulty: "beginner", ResourceType: "course", Results: 3, CacheHit: true},
		{Topic: "COBOL", Difficulty: "advanced", ResourceType: "mixed", Results: 2, Fallback: true},
	}
	for i, e := range events {
		if err := repo.AppendResourceFetch(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.FetchStats(ctx)
	if err != nil {
		t.Fatalf("fetch stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.CacheHits != 1 {
		t.Errorf("cache hits = %d, want 1", stats.CacheHits)
	}
	if stats.Fallbacks != 1 {
		t.Errorf("fallbacks = %d, want 1", stats.Fallbacks)
	}
}

func TestLLMStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "resource_suggestion", InputTokens: 100, OutputTokens: 50, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "resource_suggestion", InputTokens: 120, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMStats(ctx)
	if err != nil {
		t.Fatalf("llm stats: %v", err)
	}
	if stats.Requests != 2 {
		t.Errorf("requests = %d, want 2", stats.Requests)
	}
	if stats.Failures != 1 {
		t.Errorf("failures = %d, want 1", stats.Failures)
	}
	if stats.InputTokens != 220 {
		t.Errorf("input tokens = %d, want 220", stats.InputTokens)
	}
	if stats.OutputTokens != 50 {
		t.Errorf("output tokens = %d, want 50", stats.OutputTokens)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", InputTokens: 20, OutputTokens: 15, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", InputTokens: 30, OutputTokens: 25, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}
	// Sorted by model name.
	if usage[0].Model != "claude-haiku-4-5" || usage[1].Model != "gpt-4o-mini" {
		t.Errorf("order = [%s, %s], want sorted by model", usage[0].Model, usage[1].Model)
	}
	if usage[1].Calls != 2 || usage[1].InputTokens != 30 || usage[1].OutputTokens != 20 {
		t.Errorf("gpt-4o-mini usage = %+v, want 2 calls, 30 in, 20 out", usage[1])
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendResourceFetch(ctx, ResourceFetchEventData{Topic: "SQL"}); err != nil {
		t.Fatalf("append fetch: %v", err)
	}
	if err := repo.AppendPathGenerated(ctx, PathGeneratedEventData{PathID: "p1", GoalSkill: "SQL"}); err != nil {
		t.Fatalf("append path: %v", err)
	}

	records, err := repo.RecentPaths(ctx, 0)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Sequence != 2 {
		t.Errorf("path sequence = %d, want 2 (counter shared with fetch events)", records[0].Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"path_generated_events",
		"resource_fetch_events",
		"llm_request_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
