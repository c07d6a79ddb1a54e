// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/predicate"
	"github.com/abhisek/primer/ent/tutormessageevent"
)

// TutorMessageEventUpdate is the builder for updating TutorMessageEvent entities.
type TutorMessageEventUpdate struct {
	config
	hooks    []Hook
	mutation *TutorMessageEventMutation
}

// Where appends a list predicates to the TutorMessageEventUpdate builder.
func (_u *TutorMessageEventUpdate) Where(ps ...predicate.TutorMessageEvent) *TutorMessageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *TutorMessageEventUpdate) SetInstanceID(v string) *TutorMessageEventUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *TutorMessageEventUpdate) SetNillableInstanceID(v *string) *TutorMessageEventUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TutorMessageEventUpdate) SetCategory(v string) *TutorMessageEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TutorMessageEventUpdate) SetNillableCategory(v *string) *TutorMessageEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *TutorMessageEventUpdate) SetText(v string) *TutorMessageEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TutorMessageEventUpdate) SetNillableText(v *string) *TutorMessageEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TutorMessageEventMutation object of the builder.
func (_u *TutorMessageEventUpdate) Mutation() *TutorMessageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorMessageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorMessageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorMessageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorMessageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorMessageEventUpdate) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := tutormessageevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := tutormessageevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := tutormessageevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.text": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorMessageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutormessageevent.Table, tutormessageevent.Columns, sqlgraph.NewFieldSpec(tutormessageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(tutormessageevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(tutormessageevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(tutormessageevent.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutormessageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorMessageEventUpdateOne is the builder for updating a single TutorMessageEvent entity.
type TutorMessageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorMessageEventMutation
}

// SetInstanceID sets the "instance_id" field.
func (_u *TutorMessageEventUpdateOne) SetInstanceID(v string) *TutorMessageEventUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *TutorMessageEventUpdateOne) SetNillableInstanceID(v *string) *TutorMessageEventUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TutorMessageEventUpdateOne) SetCategory(v string) *TutorMessageEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TutorMessageEventUpdateOne) SetNillableCategory(v *string) *TutorMessageEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *TutorMessageEventUpdateOne) SetText(v string) *TutorMessageEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TutorMessageEventUpdateOne) SetNillableText(v *string) *TutorMessageEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TutorMessageEventMutation object of the builder.
func (_u *TutorMessageEventUpdateOne) Mutation() *TutorMessageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorMessageEventUpdate builder.
func (_u *TutorMessageEventUpdateOne) Where(ps ...predicate.TutorMessageEvent) *TutorMessageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorMessageEventUpdateOne) Select(field string, fields ...string) *TutorMessageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorMessageEvent entity.
func (_u *TutorMessageEventUpdateOne) Save(ctx context.Context) (*TutorMessageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorMessageEventUpdateOne) SaveX(ctx context.Context) *TutorMessageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorMessageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorMessageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorMessageEventUpdateOne) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := tutormessageevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := tutormessageevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := tutormessageevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.text": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorMessageEventUpdateOne) sqlSave(ctx context.Context) (_node *TutorMessageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutormessageevent.Table, tutormessageevent.Columns, sqlgraph.NewFieldSpec(tutormessageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorMessageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutormessageevent.FieldID)
		for _, f := range fields {
			if !tutormessageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutormessageevent.FieldID {
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
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(tutormessageevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(tutormessageevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(tutormessageevent.FieldText, field.TypeString, value)
	}
	_node = &TutorMessageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutormessageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
