package suggest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/resources"
)

// Service turns an LLM provider into a resource suggester. It satisfies
// resources.Suggester.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a resource suggestion service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type suggestionOutput struct {
	Resources []resources.Descriptor `json:"resources"`
}

// Suggest asks the provider for learning resources on the topic.
// Responses are schema-validated by the provider before they get here.
func (s *Service) Suggest(ctx context.Context, topic, difficulty string) ([]resources.Descriptor, error) {
	ctx = llm.WithPurpose(ctx, "resource_suggestion")

	req := llm.Request{
		System: suggestionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSuggestionUserMessage(topic, difficulty)},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resource suggestion: %w", err)
	}

	var out suggestionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestion response: %w", err)
	}
	if len(out.Resources) == 0 {
		return nil, fmt.Errorf("resource suggestion: provider returned no resources")
	}

	return out.Resources, nil
}
