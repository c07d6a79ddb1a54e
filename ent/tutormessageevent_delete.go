// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/predicate"
	"github.com/abhisek/primer/ent/tutormessageevent"
)

// TutorMessageEventDelete is the builder for deleting a TutorMessageEvent entity.
type TutorMessageEventDelete struct {
	config
	hooks    []Hook
	mutation *TutorMessageEventMutation
}

// Where appends a list predicates to the TutorMessageEventDelete builder.
func (_d *TutorMessageEventDelete) Where(ps ...predicate.TutorMessageEvent) *TutorMessageEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TutorMessageEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TutorMessageEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TutorMessageEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tutormessageevent.Table, sqlgraph.NewFieldSpec(tutormessageevent.FieldID, field.TypeInt))
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

// TutorMessageEventDeleteOne is the builder for deleting a single TutorMessageEvent entity.
type TutorMessageEventDeleteOne struct {
	_d *TutorMessageEventDelete
}

// Where appends a list predicates to the TutorMessageEventDelete builder.
func (_d *TutorMessageEventDeleteOne) Where(ps ...predicate.TutorMessageEvent) *TutorMessageEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TutorMessageEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tutormessageevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TutorMessageEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
