// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
	"github.com/abhisek/skillpath/ent/predicate"
)

// PathGeneratedEventUpdate is the builder for updating PathGeneratedEvent entities.
type PathGeneratedEventUpdate struct {
	config
	hooks    []Hook
	mutation *PathGeneratedEventMutation
}

// Where appends a list predicates to the PathGeneratedEventUpdate builder.
func (_u *PathGeneratedEventUpdate) Where(ps ...predicate.PathGeneratedEvent) *PathGeneratedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *PathGeneratedEventUpdate) SetPathID(v string) *PathGeneratedEventUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillablePathID(v *string) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *PathGeneratedEventUpdate) SetUserEmail(v string) *PathGeneratedEventUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableUserEmail(v *string) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetGoalSkill sets the "goal_skill" field.
func (_u *PathGeneratedEventUpdate) SetGoalSkill(v string) *PathGeneratedEventUpdate {
	_u.mutation.SetGoalSkill(v)
	return _u
}

// SetNillableGoalSkill sets the "goal_skill" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableGoalSkill(v *string) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetGoalSkill(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *PathGeneratedEventUpdate) SetTargetLevel(v string) *PathGeneratedEventUpdate {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableTargetLevel(v *string) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *PathGeneratedEventUpdate) SetModules(v int) *PathGeneratedEventUpdate {
	_u.mutation.ResetModules()
	_u.mutation.SetModules(v)
	return _u
}

// SetNillableModules sets the "modules" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableModules(v *int) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetModules(*v)
	}
	return _u
}

// AddModules adds value to the "modules" field.
func (_u *PathGeneratedEventUpdate) AddModules(v int) *PathGeneratedEventUpdate {
	_u.mutation.AddModules(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *PathGeneratedEventUpdate) SetSteps(v int) *PathGeneratedEventUpdate {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableSteps(v *int) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *PathGeneratedEventUpdate) AddSteps(v int) *PathGeneratedEventUpdate {
	_u.mutation.AddSteps(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PathGeneratedEventUpdate) SetTotalHours(v int) *PathGeneratedEventUpdate {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableTotalHours(v *int) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *PathGeneratedEventUpdate) AddTotalHours(v int) *PathGeneratedEventUpdate {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *PathGeneratedEventUpdate) SetTotalCostUsd(v float64) *PathGeneratedEventUpdate {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableTotalCostUsd(v *float64) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *PathGeneratedEventUpdate) AddTotalCostUsd(v float64) *PathGeneratedEventUpdate {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetMonths sets the "months" field.
func (_u *PathGeneratedEventUpdate) SetMonths(v int) *PathGeneratedEventUpdate {
	_u.mutation.ResetMonths()
	_u.mutation.SetMonths(v)
	return _u
}

// SetNillableMonths sets the "months" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableMonths(v *int) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetMonths(*v)
	}
	return _u
}

// AddMonths adds value to the "months" field.
func (_u *PathGeneratedEventUpdate) AddMonths(v int) *PathGeneratedEventUpdate {
	_u.mutation.AddMonths(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PathGeneratedEventUpdate) SetConfidence(v float64) *PathGeneratedEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableConfidence(v *float64) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PathGeneratedEventUpdate) AddConfidence(v float64) *PathGeneratedEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *PathGeneratedEventUpdate) SetFallback(v bool) *PathGeneratedEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *PathGeneratedEventUpdate) SetNillableFallback(v *bool) *PathGeneratedEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the PathGeneratedEventMutation object of the builder.
func (_u *PathGeneratedEventUpdate) Mutation() *PathGeneratedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathGeneratedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathGeneratedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathGeneratedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathGeneratedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathGeneratedEventUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathgeneratedevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalSkill(); ok {
		if err := pathgeneratedevent.GoalSkillValidator(v); err != nil {
			return &ValidationError{Name: "goal_skill", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.goal_skill": %w`, err)}
		}
	}
	return nil
}

func (_u *PathGeneratedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathgeneratedevent.Table, pathgeneratedevent.Columns, sqlgraph.NewFieldSpec(pathgeneratedevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathgeneratedevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(pathgeneratedevent.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalSkill(); ok {
		_spec.SetField(pathgeneratedevent.FieldGoalSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(pathgeneratedevent.FieldTargetLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(pathgeneratedevent.FieldModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModules(); ok {
		_spec.AddField(pathgeneratedevent.FieldModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(pathgeneratedevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(pathgeneratedevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(pathgeneratedevent.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(pathgeneratedevent.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Months(); ok {
		_spec.SetField(pathgeneratedevent.FieldMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonths(); ok {
		_spec.AddField(pathgeneratedevent.FieldMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pathgeneratedevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pathgeneratedevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(pathgeneratedevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathgeneratedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathGeneratedEventUpdateOne is the builder for updating a single PathGeneratedEvent entity.
type PathGeneratedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathGeneratedEventMutation
}

// SetPathID sets the "path_id" field.
func (_u *PathGeneratedEventUpdateOne) SetPathID(v string) *PathGeneratedEventUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillablePathID(v *string) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *PathGeneratedEventUpdateOne) SetUserEmail(v string) *PathGeneratedEventUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableUserEmail(v *string) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// SetGoalSkill sets the "goal_skill" field.
func (_u *PathGeneratedEventUpdateOne) SetGoalSkill(v string) *PathGeneratedEventUpdateOne {
	_u.mutation.SetGoalSkill(v)
	return _u
}

// SetNillableGoalSkill sets the "goal_skill" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableGoalSkill(v *string) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetGoalSkill(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *PathGeneratedEventUpdateOne) SetTargetLevel(v string) *PathGeneratedEventUpdateOne {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableTargetLevel(v *string) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *PathGeneratedEventUpdateOne) SetModules(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetModules()
	_u.mutation.SetModules(v)
	return _u
}

// SetNillableModules sets the "modules" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableModules(v *int) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetModules(*v)
	}
	return _u
}

// AddModules adds value to the "modules" field.
func (_u *PathGeneratedEventUpdateOne) AddModules(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.AddModules(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *PathGeneratedEventUpdateOne) SetSteps(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableSteps(v *int) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *PathGeneratedEventUpdateOne) AddSteps(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.AddSteps(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PathGeneratedEventUpdateOne) SetTotalHours(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableTotalHours(v *int) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *PathGeneratedEventUpdateOne) AddTotalHours(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *PathGeneratedEventUpdateOne) SetTotalCostUsd(v float64) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetTotalCostUsd()
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableTotalCostUsd(v *float64) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// AddTotalCostUsd adds value to the "total_cost_usd" field.
func (_u *PathGeneratedEventUpdateOne) AddTotalCostUsd(v float64) *PathGeneratedEventUpdateOne {
	_u.mutation.AddTotalCostUsd(v)
	return _u
}

// SetMonths sets the "months" field.
func (_u *PathGeneratedEventUpdateOne) SetMonths(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetMonths()
	_u.mutation.SetMonths(v)
	return _u
}

// SetNillableMonths sets the "months" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableMonths(v *int) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetMonths(*v)
	}
	return _u
}

// AddMonths adds value to the "months" field.
func (_u *PathGeneratedEventUpdateOne) AddMonths(v int) *PathGeneratedEventUpdateOne {
	_u.mutation.AddMonths(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PathGeneratedEventUpdateOne) SetConfidence(v float64) *PathGeneratedEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableConfidence(v *float64) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PathGeneratedEventUpdateOne) AddConfidence(v float64) *PathGeneratedEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *PathGeneratedEventUpdateOne) SetFallback(v bool) *PathGeneratedEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *PathGeneratedEventUpdateOne) SetNillableFallback(v *bool) *PathGeneratedEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the PathGeneratedEventMutation object of the builder.
func (_u *PathGeneratedEventUpdateOne) Mutation() *PathGeneratedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathGeneratedEventUpdate builder.
func (_u *PathGeneratedEventUpdateOne) Where(ps ...predicate.PathGeneratedEvent) *PathGeneratedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathGeneratedEventUpdateOne) Select(field string, fields ...string) *PathGeneratedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathGeneratedEvent entity.
func (_u *PathGeneratedEventUpdateOne) Save(ctx context.Context) (*PathGeneratedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathGeneratedEventUpdateOne) SaveX(ctx context.Context) *PathGeneratedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathGeneratedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathGeneratedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathGeneratedEventUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathgeneratedevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalSkill(); ok {
		if err := pathgeneratedevent.GoalSkillValidator(v); err != nil {
			return &ValidationError{Name: "goal_skill", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.goal_skill": %w`, err)}
		}
	}
	return nil
}

func (_u *PathGeneratedEventUpdateOne) sqlSave(ctx context.Context) (_node *PathGeneratedEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathgeneratedevent.Table, pathgeneratedevent.Columns, sqlgraph.NewFieldSpec(pathgeneratedevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathGeneratedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathgeneratedevent.FieldID)
		for _, f := range fields {
			if !pathgeneratedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathgeneratedevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathgeneratedevent.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(pathgeneratedevent.FieldUserEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalSkill(); ok {
		_spec.SetField(pathgeneratedevent.FieldGoalSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(pathgeneratedevent.FieldTargetLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(pathgeneratedevent.FieldModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModules(); ok {
		_spec.AddField(pathgeneratedevent.FieldModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(pathgeneratedevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(pathgeneratedevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(pathgeneratedevent.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCostUsd(); ok {
		_spec.AddField(pathgeneratedevent.FieldTotalCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Months(); ok {
		_spec.SetField(pathgeneratedevent.FieldMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonths(); ok {
		_spec.AddField(pathgeneratedevent.FieldMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pathgeneratedevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pathgeneratedevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(pathgeneratedevent.FieldFallback, field.TypeBool, value)
	}
	_node = &PathGeneratedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathgeneratedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
