// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
)

// PathGeneratedEvent is the model entity for the PathGeneratedEvent schema.
type PathGeneratedEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned to the generated path
	PathID string `json:"path_id,omitempty"`
	// Profile email the path was generated for
	UserEmail string `json:"user_email,omitempty"`
	// Target skill of the learning goal
	GoalSkill string `json:"goal_skill,omitempty"`
	// Target proficiency: BEGINNER through EXPERT
	TargetLevel string `json:"target_level,omitempty"`
	// Number of modules in the path
	Modules int `json:"modules,omitempty"`
	// Total learning steps across all modules
	Steps int `json:"steps,omitempty"`
	// Estimated hours for the full path
	TotalHours int `json:"total_hours,omitempty"`
	// Sum of resource costs
	TotalCostUsd float64 `json:"total_cost_usd,omitempty"`
	// Estimated completion time in months
	Months int `json:"months,omitempty"`
	// Confidence score in [0, 1]
	Confidence float64 `json:"confidence,omitempty"`
	// Whether the generic fallback path was produced
	Fallback     bool `json:"fallback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathGeneratedEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathgeneratedevent.FieldFallback:
			values[i] = new(sql.NullBool)
		case pathgeneratedevent.FieldTotalCostUsd, pathgeneratedevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pathgeneratedevent.FieldID, pathgeneratedevent.FieldSequence, pathgeneratedevent.FieldModules, pathgeneratedevent.FieldSteps, pathgeneratedevent.FieldTotalHours, pathgeneratedevent.FieldMonths:
			values[i] = new(sql.NullInt64)
		case pathgeneratedevent.FieldPathID, pathgeneratedevent.FieldUserEmail, pathgeneratedevent.FieldGoalSkill, pathgeneratedevent.FieldTargetLevel:
			values[i] = new(sql.NullString)
		case pathgeneratedevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathGeneratedEvent fields.
func (_m *PathGeneratedEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathgeneratedevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathgeneratedevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathgeneratedevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathgeneratedevent.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = value.String
			}
		case pathgeneratedevent.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				_m.UserEmail = value.String
			}
		case pathgeneratedevent.FieldGoalSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_skill", values[i])
			} else if value.Valid {
				_m.GoalSkill = value.String
			}
		case pathgeneratedevent.FieldTargetLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_level", values[i])
			} else if value.Valid {
				_m.TargetLevel = value.String
			}
		case pathgeneratedevent.FieldModules:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field modules", values[i])
			} else if value.Valid {
				_m.Modules = int(value.Int64)
			}
		case pathgeneratedevent.FieldSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value.Valid {
				_m.Steps = int(value.Int64)
			}
		case pathgeneratedevent.FieldTotalHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_hours", values[i])
			} else if value.Valid {
				_m.TotalHours = int(value.Int64)
			}
		case pathgeneratedevent.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = value.Float64
			}
		case pathgeneratedevent.FieldMonths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field months", values[i])
			} else if value.Valid {
				_m.Months = int(value.Int64)
			}
		case pathgeneratedevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case pathgeneratedevent.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathGeneratedEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathGeneratedEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathGeneratedEvent.
// Note that you need to call PathGeneratedEvent.Unwrap() before calling this method if this PathGeneratedEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathGeneratedEvent) Update() *PathGeneratedEventUpdateOne {
	return NewPathGeneratedEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathGeneratedEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathGeneratedEvent) Unwrap() *PathGeneratedEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathGeneratedEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathGeneratedEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathGeneratedEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(_m.PathID)
	builder.WriteString(", ")
	builder.WriteString("user_email=")
	builder.WriteString(_m.UserEmail)
	builder.WriteString(", ")
	builder.WriteString("goal_skill=")
	builder.WriteString(_m.GoalSkill)
	builder.WriteString(", ")
	builder.WriteString("target_level=")
	builder.WriteString(_m.TargetLevel)
	builder.WriteString(", ")
	builder.WriteString("modules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modules))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("total_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalHours))
	builder.WriteString(", ")
	builder.WriteString("total_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCostUsd))
	builder.WriteString(", ")
	builder.WriteString("months=")
	builder.WriteString(fmt.Sprintf("%v", _m.Months))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteByte(')')
	return builder.String()
}

// PathGeneratedEvents is a parsable slice of PathGeneratedEvent.
type PathGeneratedEvents []*PathGeneratedEvent
