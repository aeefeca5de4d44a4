package suggest

import "github.com/abhisek/skillpath/internal/llm"

// SuggestionSchema defines the JSON schema for resource suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "resource-suggestions",
	Description: "A list of real, well-known learning resources for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resources": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"description": "Suggested learning resources, best first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Resource title as published",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One sentence on what the resource covers",
						},
						"url": map[string]any{
							"type":        "string",
							"description": "Canonical URL of the resource",
						},
						"provider": map[string]any{
							"type":        "string",
							"description": "Platform or publisher, e.g. Coursera, O'Reilly",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"course", "book", "tutorial", "project",
								"certification", "documentation", "video",
								"article", "interactive",
							},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced", "expert"},
						},
						"rating": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     5,
							"description": "Typical learner rating out of 5",
						},
						"estimated_hours": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Hours a typical learner needs to complete it",
						},
					},
					"required": []any{
						"title", "description", "url", "provider",
						"type", "difficulty", "rating", "estimated_hours",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"resources"},
		"additionalProperties": false,
	},
}
