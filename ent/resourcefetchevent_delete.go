// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/predicate"
	"github.com/abhisek/skillpath/ent/resourcefetchevent"
)

// ResourceFetchEventDelete is the builder for deleting a ResourceFetchEvent entity.
type ResourceFetchEventDelete struct {
	config
	hooks    []Hook
	mutation *ResourceFetchEventMutation
}

// Where appends a list predicates to the ResourceFetchEventDelete builder.
func (_d *ResourceFetchEventDelete) Where(ps ...predicate.ResourceFetchEvent) *ResourceFetchEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ResourceFetchEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResourceFetchEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ResourceFetchEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(resourcefetchevent.Table, sqlgraph.NewFieldSpec(resourcefetchevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ResourceFetchEventDeleteOne is the builder for deleting a single ResourceFetchEvent entity.
type ResourceFetchEventDeleteOne struct {
	_d *ResourceFetchEventDelete
}

// Where appends a list predicates to the ResourceFetchEventDelete builder.
func (_d *ResourceFetchEventDeleteOne) Where(ps ...predicate.ResourceFetchEvent) *ResourceFetchEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ResourceFetchEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{resourcefetchevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResourceFetchEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
