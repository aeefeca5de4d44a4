// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
	"github.com/abhisek/skillpath/ent/predicate"
)

// PathGeneratedEventDelete is the builder for deleting a PathGeneratedEvent entity.
type PathGeneratedEventDelete struct {
	config
	hooks    []Hook
	mutation *PathGeneratedEventMutation
}

// Where appends a list predicates to the PathGeneratedEventDelete builder.
func (_d *PathGeneratedEventDelete) Where(ps ...predicate.PathGeneratedEvent) *PathGeneratedEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PathGeneratedEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PathGeneratedEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PathGeneratedEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pathgeneratedevent.Table, sqlgraph.NewFieldSpec(pathgeneratedevent.FieldID, field.TypeInt))
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

// PathGeneratedEventDeleteOne is the builder for deleting a single PathGeneratedEvent entity.
type PathGeneratedEventDeleteOne struct {
	_d *PathGeneratedEventDelete
}

// Where appends a list predicates to the PathGeneratedEventDelete builder.
func (_d *PathGeneratedEventDeleteOne) Where(ps ...predicate.PathGeneratedEvent) *PathGeneratedEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PathGeneratedEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pathgeneratedevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PathGeneratedEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
