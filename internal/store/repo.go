package store

import (
	"context"
	"time"
)

// PathGeneratedEventData captures one path-generation outcome.
type PathGeneratedEventData struct {
	PathID       string
	UserEmail    string
	GoalSkill    string
	TargetLevel  string
	Modules      int
	Steps        int
	TotalHours   int
	TotalCostUSD float64
	Months       int
	Confidence   float64
	Fallback     bool
}

// PathRecord is a stored path-generation event read back for stats.
type PathRecord struct {
	Sequence     int64
	Timestamp    time.Time
	PathID       string
	GoalSkill    string
	TargetLevel  string
	Modules      int
	TotalHours   int
	TotalCostUSD float64
	Confidence   float64
	Fallback     bool
}

// ResourceFetchEventData captures one resource-fetch query.
type ResourceFetchEventData struct {
	Topic        string
	Difficulty   string
	ResourceType string
	Results      int
	CacheHit     bool
	Fallback     bool
}

// FetchStats aggregates resource-fetch telemetry.
type FetchStats struct {
	Total     int
	CacheHits int
	Fallbacks int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMStats aggregates LLM request telemetry.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ModelUsage aggregates LLM usage for a single model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate-query access to domain events.
type EventRepo interface {
	// AppendPathGenerated records a completed path generation.
	AppendPathGenerated(ctx context.Context, data PathGeneratedEventData) error

	// AppendResourceFetch records one fetcher query.
	AppendResourceFetch(ctx context.Context, data ResourceFetchEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentPaths returns the most recent path-generation records,
	// newest first. limit <= 0 means no limit.
	RecentPaths(ctx context.Context, limit int) ([]PathRecord, error)

	// FetchStats aggregates resource-fetch telemetry.
	FetchStats(ctx context.Context) (FetchStats, error)

	// LLMStats aggregates LLM request telemetry.
	LLMStats(ctx context.Context) (LLMStats, error)

	// LLMUsageByModel aggregates token usage per model, sorted by model name.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
