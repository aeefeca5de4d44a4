// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PathGeneratedEvent is the predicate function for pathgeneratedevent builders.
type PathGeneratedEvent func(*sql.Selector)

// ResourceFetchEvent is the predicate function for resourcefetchevent builders.
type ResourceFetchEvent func(*sql.Selector)
