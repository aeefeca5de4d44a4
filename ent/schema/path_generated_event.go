package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathGeneratedEvent records every completed path generation for history
// and stats reporting.
type PathGeneratedEvent struct {
	ent.Schema
}

func (PathGeneratedEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathGeneratedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			NotEmpty().
			Comment("UUID assigned to the generated path"),
		field.String("user_email").
			Default("").
			Comment("Profile email the path was generated for"),
		field.String("goal_skill").
			NotEmpty().
			Comment("Target skill of the learning goal"),
		field.String("target_level").
			Default("").
			Comment("Target proficiency: BEGINNER through EXPERT"),
		field.Int("modules").
			Default(0).
			Comment("Number of modules in the path"),
		field.Int("steps").
			Default(0).
			Comment("Total learning steps across all modules"),
		field.Int("total_hours").
			Default(0).
			Comment("Estimated hours for the full path"),
		field.Float("total_cost_usd").
			Default(0).
			Comment("Sum of resource costs"),
		field.Int("months").
			Default(0).
			Comment("Estimated completion time in months"),
		field.Float("confidence").
			Default(0).
			Comment("Confidence score in [0, 1]"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether the generic fallback path was produced"),
	}
}

func (PathGeneratedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
		index.Fields("goal_skill"),
		index.Fields("fallback"),
	}
}
