package suggest

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/skillpath/internal/llm"
)

func validSuggestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"resources": [
			{
				"title": "SQL for Data Science",
				"description": "Query writing and relational thinking from scratch.",
				"url": "https://www.coursera.org/learn/sql-for-data-science",
				"provider": "Coursera",
				"type": "course",
				"difficulty": "beginner",
				"rating": 4.6,
				"estimated_hours": 20
			},
			{
				"title": "SQLBolt",
				"description": "Interactive SQL lessons and exercises in the browser.",
				"url": "https://sqlbolt.com/",
				"provider": "SQLBolt",
				"type": "interactive",
				"difficulty": "beginner",
				"rating": 4.5,
				"estimated_hours": 8
			}
		]
	}`)
}

func TestService_SuggestsResources(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validSuggestionJSON(),
		Usage:   llm.Usage{InputTokens: 200, OutputTokens: 150},
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Suggest(context.Background(), "SQL", "beginner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(got))
	}
	if got[0].Title != "SQL for Data Science" {
		t.Errorf("title = %q, want 'SQL for Data Science'", got[0].Title)
	}
	if got[0].Type != "course" {
		t.Errorf("type = %q, want 'course'", got[0].Type)
	}
	if got[1].EstimatedHours != 8 {
		t.Errorf("estimated hours = %d, want 8", got[1].EstimatedHours)
	}
}

func TestService_PromptCarriesTopicAndDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSuggestionJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Suggest(context.Background(), "Machine Learning", "advanced"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != SuggestionSchema {
		t.Error("expected the suggestion schema on the request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Topic: Machine Learning") {
		t.Errorf("prompt missing topic, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Difficulty: advanced") {
		t.Errorf("prompt missing difficulty, got:\n%s", msg)
	}
}

func TestService_MixedDifficultyMeansAny(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSuggestionJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Suggest(context.Background(), "Python", "mixed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Difficulty: any") {
		t.Error("expected 'mixed' to be relaxed to 'any' in the prompt")
	}
}

func TestService_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Suggest(context.Background(), "SQL", "beginner"); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestService_EmptyResourceListIsAnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"resources":[]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Suggest(context.Background(), "SQL", "beginner"); err == nil {
		t.Fatal("expected error for empty resource list")
	}
}
