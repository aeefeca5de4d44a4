// Code generated by ent, DO NOT EDIT.

package pathgeneratedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathgeneratedevent type in the database.
	Label = "path_generated_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldUserEmail holds the string denoting the user_email field in the database.
	FieldUserEmail = "user_email"
	// FieldGoalSkill holds the string denoting the goal_skill field in the database.
	FieldGoalSkill = "goal_skill"
	// FieldTargetLevel holds the string denoting the target_level field in the database.
	FieldTargetLevel = "target_level"
	// FieldModules holds the string denoting the modules field in the database.
	FieldModules = "modules"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldTotalHours holds the string denoting the total_hours field in the database.
	FieldTotalHours = "total_hours"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldMonths holds the string denoting the months field in the database.
	FieldMonths = "months"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldFallback holds the string denoting the fallback field in the database.
	FieldFallback = "fallback"
	// Table holds the table name of the pathgeneratedevent in the database.
	Table = "path_generated_events"
)

// Columns holds all SQL columns for pathgeneratedevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPathID,
	FieldUserEmail,
	FieldGoalSkill,
	FieldTargetLevel,
	FieldModules,
	FieldSteps,
	FieldTotalHours,
	FieldTotalCostUsd,
	FieldMonths,
	FieldConfidence,
	FieldFallback,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// DefaultUserEmail holds the default value on creation for the "user_email" field.
	DefaultUserEmail string
	// GoalSkillValidator is a validator for the "goal_skill" field. It is called by the builders before save.
	GoalSkillValidator func(string) error
	// DefaultTargetLevel holds the default value on creation for the "target_level" field.
	DefaultTargetLevel string
	// DefaultModules holds the default value on creation for the "modules" field.
	DefaultModules int
	// DefaultSteps holds the default value on creation for the "steps" field.
	DefaultSteps int
	// DefaultTotalHours holds the default value on creation for the "total_hours" field.
	DefaultTotalHours int
	// DefaultTotalCostUsd holds the default value on creation for the "total_cost_usd" field.
	DefaultTotalCostUsd float64
	// DefaultMonths holds the default value on creation for the "months" field.
	DefaultMonths int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultFallback holds the default value on creation for the "fallback" field.
	DefaultFallback bool
)

// OrderOption defines the ordering options for the PathGeneratedEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByUserEmail orders the results by the user_email field.
func ByUserEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserEmail, opts...).ToFunc()
}

// ByGoalSkill orders the results by the goal_skill field.
func ByGoalSkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalSkill, opts...).ToFunc()
}

// ByTargetLevel orders the results by the target_level field.
func ByTargetLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLevel, opts...).ToFunc()
}

// ByModules orders the results by the modules field.
func ByModules(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModules, opts...).ToFunc()
}

// BySteps orders the results by the steps field.
func BySteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteps, opts...).ToFunc()
}

// ByTotalHours orders the results by the total_hours field.
func ByTotalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalHours, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByMonths orders the results by the months field.
func ByMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonths, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByFallback orders the results by the fallback field.
func ByFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallback, opts...).ToFunc()
}
