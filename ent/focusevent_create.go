// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/focusevent"
)

// FocusEventCreate is the builder for creating a FocusEvent entity.
type FocusEventCreate struct {
	config
	mutation *FocusEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *FocusEventCreate) SetSequence(v int64) *FocusEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *FocusEventCreate) SetTimestamp(v time.Time) *FocusEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *FocusEventCreate) SetNillableTimestamp(v *time.Time) *FocusEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *FocusEventCreate) SetInstanceID(v string) *FocusEventCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetPrimitiveType sets the "primitive_type" field.
func (_c *FocusEventCreate) SetPrimitiveType(v string) *FocusEventCreate {
	_c.mutation.SetPrimitiveType(v)
	return _c
}

// Mutation returns the FocusEventMutation object of the builder.
func (_c *FocusEventCreate) Mutation() *FocusEventMutation {
	return _c.mutation
}

// Save creates the FocusEvent in the database.
func (_c *FocusEventCreate) Save(ctx context.Context) (*FocusEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FocusEventCreate) SaveX(ctx context.Context) *FocusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FocusEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := focusevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FocusEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FocusEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FocusEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "FocusEvent.instance_id"`)}
	}
	if v, ok := _c.mutation.InstanceID(); ok {
		if err := focusevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.instance_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimitiveType(); !ok {
		return &ValidationError{Name: "primitive_type", err: errors.New(`ent: missing required field "FocusEvent.primitive_type"`)}
	}
	if v, ok := _c.mutation.PrimitiveType(); ok {
		if err := focusevent.PrimitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "primitive_type", err: fmt.Errorf(`ent: validator failed for field "FocusEvent.primitive_type": %w`, err)}
		}
	}
	return nil
}

func (_c *FocusEventCreate) sqlSave(ctx context.Context) (*FocusEvent, error) {
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

func (_c *FocusEventCreate) createSpec() (*FocusEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FocusEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(focusevent.Table, sqlgraph.NewFieldSpec(focusevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(focusevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(focusevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(focusevent.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.PrimitiveType(); ok {
		_spec.SetField(focusevent.FieldPrimitiveType, field.TypeString, value)
		_node.PrimitiveType = value
	}
	return _node, _spec
}

// FocusEventCreateBulk is the builder for creating many FocusEvent entities in bulk.
type FocusEventCreateBulk struct {
	config
	err      error
	builders []*FocusEventCreate
}

// Save creates the FocusEvent entities in the database.
func (_c *FocusEventCreateBulk) Save(ctx context.Context) ([]*FocusEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FocusEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FocusEventMutation)
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
func (_c *FocusEventCreateBulk) SaveX(ctx context.Context) []*FocusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FocusEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FocusEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
