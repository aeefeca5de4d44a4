// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PathGeneratedEventsColumns holds the columns for the "path_generated_events" table.
	PathGeneratedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "path_id", Type: field.TypeString},
		{Name: "user_email", Type: field.TypeString, Default: ""},
		{Name: "goal_skill", Type: field.TypeString},
		{Name: "target_level", Type: field.TypeString, Default: ""},
		{Name: "modules", Type: field.TypeInt, Default: 0},
		{Name: "steps", Type: field.TypeInt, Default: 0},
		{Name: "total_hours", Type: field.TypeInt, Default: 0},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "months", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "fallback", Type: field.TypeBool, Default: false},
	}
	// PathGeneratedEventsTable holds the schema information for the "path_generated_events" table.
	PathGeneratedEventsTable = &schema.Table{
		Name:       "path_generated_events",
		Columns:    PathGeneratedEventsColumns,
		PrimaryKey: []*schema.Column{PathGeneratedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathgeneratedevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathGeneratedEventsColumns[1]},
			},
			{
				Name:    "pathgeneratedevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathGeneratedEventsColumns[2]},
			},
			{
				Name:    "pathgeneratedevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{PathGeneratedEventsColumns[3]},
			},
			{
				Name:    "pathgeneratedevent_goal_skill",
				Unique:  false,
				Columns: []*schema.Column{PathGeneratedEventsColumns[5]},
			},
			{
				Name:    "pathgeneratedevent_fallback",
				Unique:  false,
				Columns: []*schema.Column{PathGeneratedEventsColumns[13]},
			},
		},
	}
	// ResourceFetchEventsColumns holds the columns for the "resource_fetch_events" table.
	ResourceFetchEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "resource_type", Type: field.TypeString, Default: ""},
		{Name: "results", Type: field.TypeInt, Default: 0},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
		{Name: "fallback", Type: field.TypeBool, Default: false},
	}
	// ResourceFetchEventsTable holds the schema information for the "resource_fetch_events" table.
	ResourceFetchEventsTable = &schema.Table{
		Name:       "resource_fetch_events",
		Columns:    ResourceFetchEventsColumns,
		PrimaryKey: []*schema.Column{ResourceFetchEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resourcefetchevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResourceFetchEventsColumns[1]},
			},
			{
				Name:    "resourcefetchevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResourceFetchEventsColumns[2]},
			},
			{
				Name:    "resourcefetchevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ResourceFetchEventsColumns[3]},
			},
			{
				Name:    "resourcefetchevent_cache_hit",
				Unique:  false,
				Columns: []*schema.Column{ResourceFetchEventsColumns[7]},
			},
			{
				Name:    "resourcefetchevent_fallback",
				Unique:  false,
				Columns: []*schema.Column{ResourceFetchEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		PathGeneratedEventsTable,
		ResourceFetchEventsTable,
	}
)

func init() {
}
