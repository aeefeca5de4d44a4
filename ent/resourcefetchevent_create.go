// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/resourcefetchevent"
)

// ResourceFetchEventCreate is the builder for creating a ResourceFetchEvent entity.
type ResourceFetchEventCreate struct {
	config
	mutation *ResourceFetchEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResourceFetchEventCreate) SetSequence(v int64) *ResourceFetchEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResourceFetchEventCreate) SetTimestamp(v time.Time) *ResourceFetchEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableTimestamp(v *time.Time) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ResourceFetchEventCreate) SetTopic(v string) *ResourceFetchEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ResourceFetchEventCreate) SetDifficulty(v string) *ResourceFetchEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableDifficulty(v *string) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *ResourceFetchEventCreate) SetResourceType(v string) *ResourceFetchEventCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableResourceType(v *string) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetResourceType(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *ResourceFetchEventCreate) SetResults(v int) *ResourceFetchEventCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableResults(v *int) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetResults(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *ResourceFetchEventCreate) SetCacheHit(v bool) *ResourceFetchEventCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableCacheHit(v *bool) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *ResourceFetchEventCreate) SetFallback(v bool) *ResourceFetchEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *ResourceFetchEventCreate) SetNillableFallback(v *bool) *ResourceFetchEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the ResourceFetchEventMutation object of the builder.
func (_c *ResourceFetchEventCreate) Mutation() *ResourceFetchEventMutation {
	return _c.mutation
}

// Save creates the ResourceFetchEvent in the database.
func (_c *ResourceFetchEventCreate) Save(ctx context.Context) (*ResourceFetchEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceFetchEventCreate) SaveX(ctx context.Context) *ResourceFetchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceFetchEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceFetchEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceFetchEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resourcefetchevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := resourcefetchevent.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		v := resourcefetchevent.DefaultResourceType
		_c.mutation.SetResourceType(v)
	}
	if _, ok := _c.mutation.Results(); !ok {
		v := resourcefetchevent.DefaultResults
		_c.mutation.SetResults(v)
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := resourcefetchevent.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := resourcefetchevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceFetchEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResourceFetchEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResourceFetchEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ResourceFetchEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := resourcefetchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ResourceFetchEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ResourceFetchEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "ResourceFetchEvent.resource_type"`)}
	}
	if _, ok := _c.mutation.Results(); !ok {
		return &ValidationError{Name: "results", err: errors.New(`ent: missing required field "ResourceFetchEvent.results"`)}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "ResourceFetchEvent.cache_hit"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "ResourceFetchEvent.fallback"`)}
	}
	return nil
}

func (_c *ResourceFetchEventCreate) sqlSave(ctx context.Context) (*ResourceFetchEvent, error) {
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

func (_c *ResourceFetchEventCreate) createSpec() (*ResourceFetchEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceFetchEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourcefetchevent.Table, sqlgraph.NewFieldSpec(resourcefetchevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resourcefetchevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resourcefetchevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(resourcefetchevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(resourcefetchevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(resourcefetchevent.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(resourcefetchevent.FieldResults, field.TypeInt, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(resourcefetchevent.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(resourcefetchevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// ResourceFetchEventCreateBulk is the builder for creating many ResourceFetchEvent entities in bulk.
type ResourceFetchEventCreateBulk struct {
	config
	err      error
	builders []*ResourceFetchEventCreate
}

// Save creates the ResourceFetchEvent entities in the database.
func (_c *ResourceFetchEventCreateBulk) Save(ctx context.Context) ([]*ResourceFetchEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceFetchEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceFetchEventMutation)
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
func (_c *ResourceFetchEventCreateBulk) SaveX(ctx context.Context) []*ResourceFetchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceFetchEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceFetchEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
