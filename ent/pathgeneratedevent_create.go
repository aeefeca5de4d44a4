// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
)

// PathGeneratedEventCreate is the builder for creating a PathGeneratedEvent entity.
type PathGeneratedEventCreate struct {
	config
	mutation *PathGeneratedEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PathGeneratedEventCreate) SetSequence(v int64) *PathGeneratedEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PathGeneratedEventCreate) SetTimestamp(v time.Time) *PathGeneratedEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableTimestamp(v *time.Time) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *PathGeneratedEventCreate) SetPathID(v string) *PathGeneratedEventCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *PathGeneratedEventCreate) SetUserEmail(v string) *PathGeneratedEventCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableUserEmail(v *string) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetUserEmail(*v)
	}
	return _c
}

// SetGoalSkill sets the "goal_skill" field.
func (_c *PathGeneratedEventCreate) SetGoalSkill(v string) *PathGeneratedEventCreate {
	_c.mutation.SetGoalSkill(v)
	return _c
}

// SetTargetLevel sets the "target_level" field.
func (_c *PathGeneratedEventCreate) SetTargetLevel(v string) *PathGeneratedEventCreate {
	_c.mutation.SetTargetLevel(v)
	return _c
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableTargetLevel(v *string) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetTargetLevel(*v)
	}
	return _c
}

// SetModules sets the "modules" field.
func (_c *PathGeneratedEventCreate) SetModules(v int) *PathGeneratedEventCreate {
	_c.mutation.SetModules(v)
	return _c
}

// SetNillableModules sets the "modules" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableModules(v *int) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetModules(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *PathGeneratedEventCreate) SetSteps(v int) *PathGeneratedEventCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableSteps(v *int) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetSteps(*v)
	}
	return _c
}

// SetTotalHours sets the "total_hours" field.
func (_c *PathGeneratedEventCreate) SetTotalHours(v int) *PathGeneratedEventCreate {
	_c.mutation.SetTotalHours(v)
	return _c
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableTotalHours(v *int) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetTotalHours(*v)
	}
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *PathGeneratedEventCreate) SetTotalCostUsd(v float64) *PathGeneratedEventCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableTotalCostUsd(v *float64) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetMonths sets the "months" field.
func (_c *PathGeneratedEventCreate) SetMonths(v int) *PathGeneratedEventCreate {
	_c.mutation.SetMonths(v)
	return _c
}

// SetNillableMonths sets the "months" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableMonths(v *int) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetMonths(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PathGeneratedEventCreate) SetConfidence(v float64) *PathGeneratedEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableConfidence(v *float64) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *PathGeneratedEventCreate) SetFallback(v bool) *PathGeneratedEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *PathGeneratedEventCreate) SetNillableFallback(v *bool) *PathGeneratedEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the PathGeneratedEventMutation object of the builder.
func (_c *PathGeneratedEventCreate) Mutation() *PathGeneratedEventMutation {
	return _c.mutation
}

// Save creates the PathGeneratedEvent in the database.
func (_c *PathGeneratedEventCreate) Save(ctx context.Context) (*PathGeneratedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathGeneratedEventCreate) SaveX(ctx context.Context) *PathGeneratedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathGeneratedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathGeneratedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathGeneratedEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pathgeneratedevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		v := pathgeneratedevent.DefaultUserEmail
		_c.mutation.SetUserEmail(v)
	}
	if _, ok := _c.mutation.TargetLevel(); !ok {
		v := pathgeneratedevent.DefaultTargetLevel
		_c.mutation.SetTargetLevel(v)
	}
	if _, ok := _c.mutation.Modules(); !ok {
		v := pathgeneratedevent.DefaultModules
		_c.mutation.SetModules(v)
	}
	if _, ok := _c.mutation.Steps(); !ok {
		v := pathgeneratedevent.DefaultSteps
		_c.mutation.SetSteps(v)
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		v := pathgeneratedevent.DefaultTotalHours
		_c.mutation.SetTotalHours(v)
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		v := pathgeneratedevent.DefaultTotalCostUsd
		_c.mutation.SetTotalCostUsd(v)
	}
	if _, ok := _c.mutation.Months(); !ok {
		v := pathgeneratedevent.DefaultMonths
		_c.mutation.SetMonths(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := pathgeneratedevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := pathgeneratedevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathGeneratedEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathGeneratedEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PathGeneratedEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathGeneratedEvent.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := pathgeneratedevent.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserEmail(); !ok {
		return &ValidationError{Name: "user_email", err: errors.New(`ent: missing required field "PathGeneratedEvent.user_email"`)}
	}
	if _, ok := _c.mutation.GoalSkill(); !ok {
		return &ValidationError{Name: "goal_skill", err: errors.New(`ent: missing required field "PathGeneratedEvent.goal_skill"`)}
	}
	if v, ok := _c.mutation.GoalSkill(); ok {
		if err := pathgeneratedevent.GoalSkillValidator(v); err != nil {
			return &ValidationError{Name: "goal_skill", err: fmt.Errorf(`ent: validator failed for field "PathGeneratedEvent.goal_skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetLevel(); !ok {
		return &ValidationError{Name: "target_level", err: errors.New(`ent: missing required field "PathGeneratedEvent.target_level"`)}
	}
	if _, ok := _c.mutation.Modules(); !ok {
		return &ValidationError{Name: "modules", err: errors.New(`ent: missing required field "PathGeneratedEvent.modules"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "PathGeneratedEvent.steps"`)}
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		return &ValidationError{Name: "total_hours", err: errors.New(`ent: missing required field "PathGeneratedEvent.total_hours"`)}
	}
	if _, ok := _c.mutation.TotalCostUsd(); !ok {
		return &ValidationError{Name: "total_cost_usd", err: errors.New(`ent: missing required field "PathGeneratedEvent.total_cost_usd"`)}
	}
	if _, ok := _c.mutation.Months(); !ok {
		return &ValidationError{Name: "months", err: errors.New(`ent: missing required field "PathGeneratedEvent.months"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PathGeneratedEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "PathGeneratedEvent.fallback"`)}
	}
	return nil
}

func (_c *PathGeneratedEventCreate) sqlSave(ctx context.Context) (*PathGeneratedEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PathGeneratedEventCreate) createSpec() (*PathGeneratedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PathGeneratedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathgeneratedevent.Table, sqlgraph.NewFieldSpec(pathgeneratedevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathgeneratedevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pathgeneratedevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(pathgeneratedevent.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(pathgeneratedevent.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.GoalSkill(); ok {
		_spec.SetField(pathgeneratedevent.FieldGoalSkill, field.TypeString, value)
		_node.GoalSkill = value
	}
	if value, ok := _c.mutation.TargetLevel(); ok {
		_spec.SetField(pathgeneratedevent.FieldTargetLevel, field.TypeString, value)
		_node.TargetLevel = value
	}
	if value, ok := _c.mutation.Modules(); ok {
		_spec.SetField(pathgeneratedevent.FieldModules, field.TypeInt, value)
		_node.Modules = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(pathgeneratedevent.FieldSteps, field.TypeInt, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.TotalHours(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalHours, field.TypeInt, value)
		_node.TotalHours = value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(pathgeneratedevent.FieldTotalCostUsd, field.TypeFloat64, value)
		_node.TotalCostUsd = value
	}
	if value, ok := _c.mutation.Months(); ok {
		_spec.SetField(pathgeneratedevent.FieldMonths, field.TypeInt, value)
		_node.Months = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pathgeneratedevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(pathgeneratedevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// PathGeneratedEventCreateBulk is the builder for creating many PathGeneratedEvent entities in bulk.
type PathGeneratedEventCreateBulk struct {
	config
	err      error
	builders []*PathGeneratedEventCreate
}

// Save creates the PathGeneratedEvent entities in the database.
func (_c *PathGeneratedEventCreateBulk) Save(ctx context.Context) ([]*PathGeneratedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathGeneratedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathGeneratedEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PathGeneratedEventCreateBulk) SaveX(ctx context.Context) []*PathGeneratedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathGeneratedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathGeneratedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
