// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillpath/ent/llmrequestevent"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
	"github.com/abhisek/skillpath/ent/resourcefetchevent"
	"github.com/abhisek/skillpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	pathgeneratedeventMixin := schema.PathGeneratedEvent{}.Mixin()
	pathgeneratedeventMixinFields0 := pathgeneratedeventMixin[0].Fields()
	_ = pathgeneratedeventMixinFields0
	pathgeneratedeventFields := schema.PathGeneratedEvent{}.Fields()
	_ = pathgeneratedeventFields
	// pathgeneratedeventDescTimestamp is the schema descriptor for timestamp field.
	pathgeneratedeventDescTimestamp := pathgeneratedeventMixinFields0[1].Descriptor()
	// pathgeneratedevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathgeneratedevent.DefaultTimestamp = pathgeneratedeventDescTimestamp.Default.(func() time.Time)
	// pathgeneratedeventDescPathID is the schema descriptor for path_id field.
	pathgeneratedeventDescPathID := pathgeneratedeventFields[0].Descriptor()
	// pathgeneratedevent.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	pathgeneratedevent.PathIDValidator = pathgeneratedeventDescPathID.Validators[0].(func(string) error)
	// pathgeneratedeventDescUserEmail is the schema descriptor for user_email field.
	pathgeneratedeventDescUserEmail := pathgeneratedeventFields[1].Descriptor()
	// pathgeneratedevent.DefaultUserEmail holds the default value on creation for the user_email field.
	pathgeneratedevent.DefaultUserEmail = pathgeneratedeventDescUserEmail.Default.(string)
	// pathgeneratedeventDescGoalSkill is the schema descriptor for goal_skill field.
	pathgeneratedeventDescGoalSkill := pathgeneratedeventFields[2].Descriptor()
	// pathgeneratedevent.GoalSkillValidator is a validator for the "goal_skill" field. It is called by the builders before save.
	pathgeneratedevent.GoalSkillValidator = pathgeneratedeventDescGoalSkill.Validators[0].(func(string) error)
	// pathgeneratedeventDescTargetLevel is the schema descriptor for target_level field.
	pathgeneratedeventDescTargetLevel := pathgeneratedeventFields[3].Descriptor()
	// pathgeneratedevent.DefaultTargetLevel holds the default value on creation for the target_level field.
	pathgeneratedevent.DefaultTargetLevel = pathgeneratedeventDescTargetLevel.Default.(string)
	// pathgeneratedeventDescModules is the schema descriptor for modules field.
	pathgeneratedeventDescModules := pathgeneratedeventFields[4].Descriptor()
	// pathgeneratedevent.DefaultModules holds the default value on creation for the modules field.
	pathgeneratedevent.DefaultModules = pathgeneratedeventDescModules.Default.(int)
	// pathgeneratedeventDescSteps is the schema descriptor for steps field.
	pathgeneratedeventDescSteps := pathgeneratedeventFields[5].Descriptor()
	// pathgeneratedevent.DefaultSteps holds the default value on creation for the steps field.
	pathgeneratedevent.DefaultSteps = pathgeneratedeventDescSteps.Default.(int)
	// pathgeneratedeventDescTotalHours is the schema descriptor for total_hours field.
	pathgeneratedeventDescTotalHours := pathgeneratedeventFields[6].Descriptor()
	// pathgeneratedevent.DefaultTotalHours holds the default value on creation for the total_hours field.
	pathgeneratedevent.DefaultTotalHours = pathgeneratedeventDescTotalHours.Default.(int)
	// pathgeneratedeventDescTotalCostUsd is the schema descriptor for total_cost_usd field.
	pathgeneratedeventDescTotalCostUsd := pathgeneratedeventFields[7].Descriptor()
	// pathgeneratedevent.DefaultTotalCostUsd holds the default value on creation for the total_cost_usd field.
	pathgeneratedevent.DefaultTotalCostUsd = pathgeneratedeventDescTotalCostUsd.Default.(float64)
	// pathgeneratedeventDescMonths is the schema descriptor for months field.
	pathgeneratedeventDescMonths := pathgeneratedeventFields[8].Descriptor()
	// pathgeneratedevent.DefaultMonths holds the default value on creation for the months field.
	pathgeneratedevent.DefaultMonths = pathgeneratedeventDescMonths.Default.(int)
	// pathgeneratedeventDescConfidence is the schema descriptor for confidence field.
	pathgeneratedeventDescConfidence := pathgeneratedeventFields[9].Descriptor()
	// pathgeneratedevent.DefaultConfidence holds the default value on creation for the confidence field.
	pathgeneratedevent.DefaultConfidence = pathgeneratedeventDescConfidence.Default.(float64)
	// pathgeneratedeventDescFallback is the schema descriptor for fallback field.
	pathgeneratedeventDescFallback := pathgeneratedeventFields[10].Descriptor()
	// pathgeneratedevent.DefaultFallback holds the default value on creation for the fallback field.
	pathgeneratedevent.DefaultFallback = pathgeneratedeventDescFallback.Default.(bool)
	resourcefetcheventMixin := schema.ResourceFetchEvent{}.Mixin()
	resourcefetcheventMixinFields0 := resourcefetcheventMixin[0].Fields()
	_ = resourcefetcheventMixinFields0
	resourcefetcheventFields := schema.ResourceFetchEvent{}.Fields()
	_ = resourcefetcheventFields
	// resourcefetcheventDescTimestamp is the schema descriptor for timestamp field.
	resourcefetcheventDescTimestamp := resourcefetcheventMixinFields0[1].Descriptor()
	// resourcefetchevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resourcefetchevent.DefaultTimestamp = resourcefetcheventDescTimestamp.Default.(func() time.Time)
	// resourcefetcheventDescTopic is the schema descriptor for topic field.
	resourcefetcheventDescTopic := resourcefetcheventFields[0].Descriptor()
	// resourcefetchevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	resourcefetchevent.TopicValidator = resourcefetcheventDescTopic.Validators[0].(func(string) error)
	// resourcefetcheventDescDifficulty is the schema descriptor for difficulty field.
	resourcefetcheventDescDifficulty := resourcefetcheventFields[1].Descriptor()
	// resourcefetchevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	resourcefetchevent.DefaultDifficulty = resourcefetcheventDescDifficulty.Default.(string)
	// resourcefetcheventDescResourceType is the schema descriptor for resource_type field.
	resourcefetcheventDescResourceType := resourcefetcheventFields[2].Descriptor()
	// resourcefetchevent.DefaultResourceType holds the default value on creation for the resource_type field.
	resourcefetchevent.DefaultResourceType = resourcefetcheventDescResourceType.Default.(string)
	// resourcefetcheventDescResults is the schema descriptor for results field.
	resourcefetcheventDescResults := resourcefetcheventFields[3].Descriptor()
	// resourcefetchevent.DefaultResults holds the default value on creation for the results field.
	resourcefetchevent.DefaultResults = resourcefetcheventDescResults.Default.(int)
	// resourcefetcheventDescCacheHit is the schema descriptor for cache_hit field.
	resourcefetcheventDescCacheHit := resourcefetcheventFields[4].Descriptor()
	// resourcefetchevent.DefaultCacheHit holds the default value on creation for the cache_hit field.
	resourcefetchevent.DefaultCacheHit = resourcefetcheventDescCacheHit.Default.(bool)
	// resourcefetcheventDescFallback is the schema descriptor for fallback field.
	resourcefetcheventDescFallback := resourcefetcheventFields[5].Descriptor()
	// resourcefetchevent.DefaultFallback holds the default value on creation for the fallback field.
	resourcefetchevent.DefaultFallback = resourcefetcheventDescFallback.Default.(bool)
}
