// Code generated by ent, DO NOT EDIT.

package pathgeneratedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldPathID, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldUserEmail, v))
}

// GoalSkill applies equality check predicate on the "goal_skill" field. It's identical to GoalSkillEQ.
func GoalSkill(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldGoalSkill, v))
}

// TargetLevel applies equality check predicate on the "target_level" field. It's identical to TargetLevelEQ.
func TargetLevel(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTargetLevel, v))
}

// Modules applies equality check predicate on the "modules" field. It's identical to ModulesEQ.
func Modules(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldModules, v))
}

// Steps applies equality check predicate on the "steps" field. It's identical to StepsEQ.
func Steps(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldSteps, v))
}

// TotalHours applies equality check predicate on the "total_hours" field. It's identical to TotalHoursEQ.
func TotalHours(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTotalHours, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTotalCostUsd, v))
}

// Months applies equality check predicate on the "months" field. It's identical to MonthsEQ.
func Months(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldMonths, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldConfidence, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldFallback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContainsFold(FieldPathID, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContainsFold(FieldUserEmail, v))
}

// GoalSkillEQ applies the EQ predicate on the "goal_skill" field.
func GoalSkillEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldGoalSkill, v))
}

// GoalSkillNEQ applies the NEQ predicate on the "goal_skill" field.
func GoalSkillNEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldGoalSkill, v))
}

// GoalSkillIn applies the In predicate on the "goal_skill" field.
func GoalSkillIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldGoalSkill, vs...))
}

// GoalSkillNotIn applies the NotIn predicate on the "goal_skill" field.
func GoalSkillNotIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldGoalSkill, vs...))
}

// GoalSkillGT applies the GT predicate on the "goal_skill" field.
func GoalSkillGT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldGoalSkill, v))
}

// GoalSkillGTE applies the GTE predicate on the "goal_skill" field.
func GoalSkillGTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldGoalSkill, v))
}

// GoalSkillLT applies the LT predicate on the "goal_skill" field.
func GoalSkillLT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldGoalSkill, v))
}

// GoalSkillLTE applies the LTE predicate on the "goal_skill" field.
func GoalSkillLTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldGoalSkill, v))
}

// GoalSkillContains applies the Contains predicate on the "goal_skill" field.
func GoalSkillContains(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContains(FieldGoalSkill, v))
}

// GoalSkillHasPrefix applies the HasPrefix predicate on the "goal_skill" field.
func GoalSkillHasPrefix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasPrefix(FieldGoalSkill, v))
}

// GoalSkillHasSuffix applies the HasSuffix predicate on the "goal_skill" field.
func GoalSkillHasSuffix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasSuffix(FieldGoalSkill, v))
}

// GoalSkillEqualFold applies the EqualFold predicate on the "goal_skill" field.
func GoalSkillEqualFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEqualFold(FieldGoalSkill, v))
}

// GoalSkillContainsFold applies the ContainsFold predicate on the "goal_skill" field.
func GoalSkillContainsFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContainsFold(FieldGoalSkill, v))
}

// TargetLevelEQ applies the EQ predicate on the "target_level" field.
func TargetLevelEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTargetLevel, v))
}

// TargetLevelNEQ applies the NEQ predicate on the "target_level" field.
func TargetLevelNEQ(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldTargetLevel, v))
}

// TargetLevelIn applies the In predicate on the "target_level" field.
func TargetLevelIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldTargetLevel, vs...))
}

// TargetLevelNotIn applies the NotIn predicate on the "target_level" field.
func TargetLevelNotIn(vs ...string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldTargetLevel, vs...))
}

// TargetLevelGT applies the GT predicate on the "target_level" field.
func TargetLevelGT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldTargetLevel, v))
}

// TargetLevelGTE applies the GTE predicate on the "target_level" field.
func TargetLevelGTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldTargetLevel, v))
}

// TargetLevelLT applies the LT predicate on the "target_level" field.
func TargetLevelLT(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldTargetLevel, v))
}

// TargetLevelLTE applies the LTE predicate on the "target_level" field.
func TargetLevelLTE(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldTargetLevel, v))
}

// TargetLevelContains applies the Contains predicate on the "target_level" field.
func TargetLevelContains(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContains(FieldTargetLevel, v))
}

// TargetLevelHasPrefix applies the HasPrefix predicate on the "target_level" field.
func TargetLevelHasPrefix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasPrefix(FieldTargetLevel, v))
}

// TargetLevelHasSuffix applies the HasSuffix predicate on the "target_level" field.
func TargetLevelHasSuffix(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldHasSuffix(FieldTargetLevel, v))
}

// TargetLevelEqualFold applies the EqualFold predicate on the "target_level" field.
func TargetLevelEqualFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEqualFold(FieldTargetLevel, v))
}

// TargetLevelContainsFold applies the ContainsFold predicate on the "target_level" field.
func TargetLevelContainsFold(v string) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldContainsFold(FieldTargetLevel, v))
}

// ModulesEQ applies the EQ predicate on the "modules" field.
func ModulesEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldModules, v))
}

// ModulesNEQ applies the NEQ predicate on the "modules" field.
func ModulesNEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldModules, v))
}

// ModulesIn applies the In predicate on the "modules" field.
func ModulesIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldModules, vs...))
}

// ModulesNotIn applies the NotIn predicate on the "modules" field.
func ModulesNotIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldModules, vs...))
}

// ModulesGT applies the GT predicate on the "modules" field.
func ModulesGT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldModules, v))
}

// ModulesGTE applies the GTE predicate on the "modules" field.
func ModulesGTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldModules, v))
}

// ModulesLT applies the LT predicate on the "modules" field.
func ModulesLT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldModules, v))
}

// ModulesLTE applies the LTE predicate on the "modules" field.
func ModulesLTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldModules, v))
}

// StepsEQ applies the EQ predicate on the "steps" field.
func StepsEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldSteps, v))
}

// StepsNEQ applies the NEQ predicate on the "steps" field.
func StepsNEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldSteps, v))
}

// StepsIn applies the In predicate on the "steps" field.
func StepsIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldSteps, vs...))
}

// StepsNotIn applies the NotIn predicate on the "steps" field.
func StepsNotIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldSteps, vs...))
}

// StepsGT applies the GT predicate on the "steps" field.
func StepsGT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldSteps, v))
}

// StepsGTE applies the GTE predicate on the "steps" field.
func StepsGTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldSteps, v))
}

// StepsLT applies the LT predicate on the "steps" field.
func StepsLT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldSteps, v))
}

// StepsLTE applies the LTE predicate on the "steps" field.
func StepsLTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldSteps, v))
}

// TotalHoursEQ applies the EQ predicate on the "total_hours" field.
func TotalHoursEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTotalHours, v))
}

// TotalHoursNEQ applies the NEQ predicate on the "total_hours" field.
func TotalHoursNEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldTotalHours, v))
}

// TotalHoursIn applies the In predicate on the "total_hours" field.
func TotalHoursIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldTotalHours, vs...))
}

// TotalHoursNotIn applies the NotIn predicate on the "total_hours" field.
func TotalHoursNotIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldTotalHours, vs...))
}

// TotalHoursGT applies the GT predicate on the "total_hours" field.
func TotalHoursGT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldTotalHours, v))
}

// TotalHoursGTE applies the GTE predicate on the "total_hours" field.
func TotalHoursGTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldTotalHours, v))
}

// TotalHoursLT applies the LT predicate on the "total_hours" field.
func TotalHoursLT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldTotalHours, v))
}

// TotalHoursLTE applies the LTE predicate on the "total_hours" field.
func TotalHoursLTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldTotalHours, v))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldTotalCostUsd, v))
}

// MonthsEQ applies the EQ predicate on the "months" field.
func MonthsEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldMonths, v))
}

// MonthsNEQ applies the NEQ predicate on the "months" field.
func MonthsNEQ(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldMonths, v))
}

// MonthsIn applies the In predicate on the "months" field.
func MonthsIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldMonths, vs...))
}

// MonthsNotIn applies the NotIn predicate on the "months" field.
func MonthsNotIn(vs ...int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldMonths, vs...))
}

// MonthsGT applies the GT predicate on the "months" field.
func MonthsGT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldMonths, v))
}

// MonthsGTE applies the GTE predicate on the "months" field.
func MonthsGTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldMonths, v))
}

// MonthsLT applies the LT predicate on the "months" field.
func MonthsLT(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldMonths, v))
}

// MonthsLTE applies the LTE predicate on the "months" field.
func MonthsLTE(v int) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldMonths, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldLTE(FieldConfidence, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.FieldNEQ(FieldFallback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathGeneratedEvent) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathGeneratedEvent) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathGeneratedEvent) predicate.PathGeneratedEvent {
	return predicate.PathGeneratedEvent(sql.NotPredicates(p))
}
