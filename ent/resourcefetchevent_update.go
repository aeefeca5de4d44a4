// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/predicate"
	"github.com/abhisek/skillpath/ent/resourcefetchevent"
)

// ResourceFetchEventUpdate is the builder for updating ResourceFetchEvent entities.
type ResourceFetchEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceFetchEventMutation
}

// Where appends a list predicates to the ResourceFetchEventUpdate builder.
func (_u *ResourceFetchEventUpdate) Where(ps ...predicate.ResourceFetchEvent) *ResourceFetchEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ResourceFetchEventUpdate) SetTopic(v string) *ResourceFetchEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableTopic(v *string) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ResourceFetchEventUpdate) SetDifficulty(v string) *ResourceFetchEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableDifficulty(v *string) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceFetchEventUpdate) SetResourceType(v string) *ResourceFetchEventUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableResourceType(v *string) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ResourceFetchEventUpdate) SetResults(v int) *ResourceFetchEventUpdate {
	_u.mutation.ResetResults()
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableResults(v *int) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// AddResults adds value to the "results" field.
func (_u *ResourceFetchEventUpdate) AddResults(v int) *ResourceFetchEventUpdate {
	_u.mutation.AddResults(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *ResourceFetchEventUpdate) SetCacheHit(v bool) *ResourceFetchEventUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableCacheHit(v *bool) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *ResourceFetchEventUpdate) SetFallback(v bool) *ResourceFetchEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *ResourceFetchEventUpdate) SetNillableFallback(v *bool) *ResourceFetchEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the ResourceFetchEventMutation object of the builder.
func (_u *ResourceFetchEventUpdate) Mutation() *ResourceFetchEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceFetchEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceFetchEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceFetchEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceFetchEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceFetchEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := resourcefetchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ResourceFetchEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceFetchEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourcefetchevent.Table, resourcefetchevent.Columns, sqlgraph.NewFieldSpec(resourcefetchevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(resourcefetchevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(resourcefetchevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resourcefetchevent.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(resourcefetchevent.FieldResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResults(); ok {
		_spec.AddField(resourcefetchevent.FieldResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(resourcefetchevent.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(resourcefetchevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcefetchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceFetchEventUpdateOne is the builder for updating a single ResourceFetchEvent entity.
type ResourceFetchEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceFetchEventMutation
}

// SetTopic sets the "topic" field.
func (_u *ResourceFetchEventUpdateOne) SetTopic(v string) *ResourceFetchEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableTopic(v *string) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ResourceFetchEventUpdateOne) SetDifficulty(v string) *ResourceFetchEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableDifficulty(v *string) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceFetchEventUpdateOne) SetResourceType(v string) *ResourceFetchEventUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableResourceType(v *string) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ResourceFetchEventUpdateOne) SetResults(v int) *ResourceFetchEventUpdateOne {
	_u.mutation.ResetResults()
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableResults(v *int) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// AddResults adds value to the "results" field.
func (_u *ResourceFetchEventUpdateOne) AddResults(v int) *ResourceFetchEventUpdateOne {
	_u.mutation.AddResults(v)
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *ResourceFetchEventUpdateOne) SetCacheHit(v bool) *ResourceFetchEventUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableCacheHit(v *bool) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *ResourceFetchEventUpdateOne) SetFallback(v bool) *ResourceFetchEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *ResourceFetchEventUpdateOne) SetNillableFallback(v *bool) *ResourceFetchEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the ResourceFetchEventMutation object of the builder.
func (_u *ResourceFetchEventUpdateOne) Mutation() *ResourceFetchEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceFetchEventUpdate builder.
func (_u *ResourceFetchEventUpdateOne) Where(ps ...predicate.ResourceFetchEvent) *ResourceFetchEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceFetchEventUpdateOne) Select(field string, fields ...string) *ResourceFetchEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceFetchEvent entity.
func (_u *ResourceFetchEventUpdateOne) Save(ctx context.Context) (*ResourceFetchEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceFetchEventUpdateOne) SaveX(ctx context.Context) *ResourceFetchEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceFetchEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceFetchEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceFetchEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := resourcefetchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ResourceFetchEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceFetchEventUpdateOne) sqlSave(ctx context.Context) (_node *ResourceFetchEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourcefetchevent.Table, resourcefetchevent.Columns, sqlgraph.NewFieldSpec(resourcefetchevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceFetchEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourcefetchevent.FieldID)
		for _, f := range fields {
			if !resourcefetchevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourcefetchevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(resourcefetchevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(resourcefetchevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resourcefetchevent.FieldResourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(resourcefetchevent.FieldResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResults(); ok {
		_spec.AddField(resourcefetchevent.FieldResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(resourcefetchevent.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(resourcefetchevent.FieldFallback, field.TypeBool, value)
	}
	_node = &ResourceFetchEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcefetchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
