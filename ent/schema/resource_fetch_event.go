package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceFetchEvent records resource discovery queries, including cache
// hits and fallback results.
type ResourceFetchEvent struct {
	ent.Schema
}

func (ResourceFetchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResourceFetchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Skill topic that was searched"),
		field.String("difficulty").
			Default("").
			Comment("Requested difficulty label, or mixed"),
		field.String("resource_type").
			Default("").
			Comment("Requested resource type, or mixed"),
		field.Int("results").
			Default(0).
			Comment("Number of descriptors returned"),
		field.Bool("cache_hit").
			Default(false).
			Comment("Whether the result came from the in-memory cache"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether the static fallback list was returned"),
	}
}

func (ResourceFetchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("cache_hit"),
		index.Fields("fallback"),
	}
}
