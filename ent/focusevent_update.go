// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/focusevent"
	"github.com/abhisek/primer/ent/predicate"
)

// FocusEventUpdate is the builder for updating FocusEvent entities.
type FocusEventUpdate struct {
	config
	hooks    []Hook
	mutation *FocusEventMutation
}

// Where appends a list predicates to the FocusEventUpdate builder.
func (_u *FocusEventUpdate) Where(ps ...predicate.FocusEvent) *FocusEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *FocusEventUpdate) SetInstanceID(v string) *FocusEventUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillableInstanceID(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetPrimitiveType sets the "primitive_type" field.
func (_u *FocusEventUpdate) SetPrimitiveType(v string) *FocusEventUpdate {
	_u.mutation.SetPrimitiveType(v)
	return _u
}

// SetNillablePrimitiveType sets the "primitive_type" field if the given value is not nil.
func (_u *FocusEventUpdate) SetNillablePrimitiveType(v *string) *FocusEventUpdate {
	if v != nil {
		_u.SetPrimitiveType(*v)
	}
	return _u
}

// Mutation returns the FocusEventMutation object of the builder.
func (_u *FocusEventUpdate) Mutation() *FocusEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FocusEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FocusEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusEventUpdate) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := focusevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimitiveType(); ok {
		if err := focusevent.PrimitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "primitive_type", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.primitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusevent.Table, focusevent.Columns, sqlgraph.NewFieldSpec(focusevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(focusevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimitiveType(); ok {
		_spec.SetField(focusevent.FieldPrimitiveType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FocusEventUpdateOne is the builder for updating a single FocusEvent entity.
type FocusEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FocusEventMutation
}

// SetInstanceID sets the "instance_id" field.
func (_u *FocusEventUpdateOne) SetInstanceID(v string) *FocusEventUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillableInstanceID(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetPrimitiveType sets the "primitive_type" field.
func (_u *FocusEventUpdateOne) SetPrimitiveType(v string) *FocusEventUpdateOne {
	_u.mutation.SetPrimitiveType(v)
	return _u
}

// SetNillablePrimitiveType sets the "primitive_type" field if the given value is not nil.
func (_u *FocusEventUpdateOne) SetNillablePrimitiveType(v *string) *FocusEventUpdateOne {
	if v != nil {
		_u.SetPrimitiveType(*v)
	}
	return _u
}

// Mutation returns the FocusEventMutation object of the builder.
func (_u *FocusEventUpdateOne) Mutation() *FocusEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FocusEventUpdate builder.
func (_u *FocusEventUpdateOne) Where(ps ...predicate.FocusEvent) *FocusEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FocusEventUpdateOne) Select(field string, fields ...string) *FocusEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FocusEvent entity.
func (_u *FocusEventUpdateOne) Save(ctx context.Context) (*FocusEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FocusEventUpdateOne) SaveX(ctx context.Context) *FocusEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FocusEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FocusEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FocusEventUpdateOne) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := focusevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimitiveType(); ok {
		if err := focusevent.PrimitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "primitive_type", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.primitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FocusEventUpdateOne) sqlSave(ctx context.Context) (_node *FocusEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(focusevent.Table, focusevent.Columns, sqlgraph.NewFieldSpec(focusevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FocusEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, focusevent.FieldID)
		for _, f := range fields {
			if !focusevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != focusevent.FieldID {
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
		_spec.SetField(focusevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimitiveType(); ok {
		_spec.SetField(focusevent.FieldPrimitiveType, field.TypeString, value)
	}
	_node = &FocusEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{focusevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
