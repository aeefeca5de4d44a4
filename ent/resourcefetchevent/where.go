// Code generated by ent, DO NOT EDIT.

package resourcefetchevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldDifficulty, v))
}

// ResourceType applies equality check predicate on the "resource_type" field. It's identical to ResourceTypeEQ.
func ResourceType(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldResourceType, v))
}

// Results applies equality check predicate on the "results" field. It's identical to ResultsEQ.
func Results(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldResults, v))
}

// CacheHit applies equality check predicate on the "cache_hit" field. It's identical to CacheHitEQ.
func CacheHit(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldCacheHit, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldFallback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldResourceType, vs...))
}

// ResourceTypeGT applies the GT predicate on the "resource_type" field.
func ResourceTypeGT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldResourceType, v))
}

// ResourceTypeGTE applies the GTE predicate on the "resource_type" field.
func ResourceTypeGTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldResourceType, v))
}

// ResourceTypeLT applies the LT predicate on the "resource_type" field.
func ResourceTypeLT(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldResourceType, v))
}

// ResourceTypeLTE applies the LTE predicate on the "resource_type" field.
func ResourceTypeLTE(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldResourceType, v))
}

// ResourceTypeContains applies the Contains predicate on the "resource_type" field.
func ResourceTypeContains(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContains(FieldResourceType, v))
}

// ResourceTypeHasPrefix applies the HasPrefix predicate on the "resource_type" field.
func ResourceTypeHasPrefix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasPrefix(FieldResourceType, v))
}

// ResourceTypeHasSuffix applies the HasSuffix predicate on the "resource_type" field.
func ResourceTypeHasSuffix(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldHasSuffix(FieldResourceType, v))
}

// ResourceTypeEqualFold applies the EqualFold predicate on the "resource_type" field.
func ResourceTypeEqualFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEqualFold(FieldResourceType, v))
}

// ResourceTypeContainsFold applies the ContainsFold predicate on the "resource_type" field.
func ResourceTypeContainsFold(v string) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldContainsFold(FieldResourceType, v))
}

// ResultsEQ applies the EQ predicate on the "results" field.
func ResultsEQ(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldResults, v))
}

// ResultsNEQ applies the NEQ predicate on the "results" field.
func ResultsNEQ(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldResults, v))
}

// ResultsIn applies the In predicate on the "results" field.
func ResultsIn(vs ...int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldIn(FieldResults, vs...))
}

// ResultsNotIn applies the NotIn predicate on the "results" field.
func ResultsNotIn(vs ...int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNotIn(FieldResults, vs...))
}

// ResultsGT applies the GT predicate on the "results" field.
func ResultsGT(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGT(FieldResults, v))
}

// ResultsGTE applies the GTE predicate on the "results" field.
func ResultsGTE(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldGTE(FieldResults, v))
}

// ResultsLT applies the LT predicate on the "results" field.
func ResultsLT(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLT(FieldResults, v))
}

// ResultsLTE applies the LTE predicate on the "results" field.
func ResultsLTE(v int) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldLTE(FieldResults, v))
}

// CacheHitEQ applies the EQ predicate on the "cache_hit" field.
func CacheHitEQ(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldCacheHit, v))
}

// CacheHitNEQ applies the NEQ predicate on the "cache_hit" field.
func CacheHitNEQ(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldCacheHit, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.FieldNEQ(FieldFallback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResourceFetchEvent) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResourceFetchEvent) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResourceFetchEvent) predicate.ResourceFetchEvent {
	return predicate.ResourceFetchEvent(sql.NotPredicates(p))
}
