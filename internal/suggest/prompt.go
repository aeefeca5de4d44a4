package suggest

import (
	"fmt"
	"strings"
)

const suggestionSystemPrompt = `You are a learning resource curator. You recommend real, well-known courses, books, tutorials, and projects that exist today. Never invent titles or URLs.`

func buildSuggestionUserMessage(topic, difficulty string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	if difficulty != "" && difficulty != "mixed" {
		b.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	} else {
		b.WriteString("Difficulty: any\n")
	}

	b.WriteString(`
Instructions:
Suggest 2-4 learning resources for the topic above:
1. Only include resources you are confident actually exist, from recognizable providers (Coursera, edX, freeCodeCamp, official documentation, well-known books).
2. Match the requested difficulty. When difficulty is "any", favor a spread from introductory to deeper material.
3. Prefer free or low-cost resources when quality is comparable.
4. Give each resource an honest rating and a realistic estimate of completion hours.`)

	return b.String()
}
