// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/tutormessageevent"
)

// TutorMessageEventCreate is the builder for creating a TutorMessageEvent entity.
type TutorMessageEventCreate struct {
	config
	mutation *TutorMessageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TutorMessageEventCreate) SetSequence(v int64) *TutorMessageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutorMessageEventCreate) SetTimestamp(v time.Time) *TutorMessageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TutorMessageEventCreate) SetNillableTimestamp(v *time.Time) *TutorMessageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *TutorMessageEventCreate) SetInstanceID(v string) *TutorMessageEventCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TutorMessageEventCreate) SetCategory(v string) *TutorMessageEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TutorMessageEventCreate) SetText(v string) *TutorMessageEventCreate {
	_c.mutation.SetText(v)
	return _c
}

// Mutation returns the TutorMessageEventMutation object of the builder.
func (_c *TutorMessageEventCreate) Mutation() *TutorMessageEventMutation {
	return _c.mutation
}

// Save creates the TutorMessageEvent in the database.
func (_c *TutorMessageEventCreate) Save(ctx context.Context) (*TutorMessageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorMessageEventCreate) SaveX(ctx context.Context) *TutorMessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorMessageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorMessageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorMessageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tutormessageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorMessageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TutorMessageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutorMessageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "TutorMessageEvent.instance_id"`)}
	}
	if v, ok := _c.mutation.InstanceID(); ok {
		if err := tutormessageevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.instance_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TutorMessageEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := tutormessageevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TutorMessageEvent.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := tutormessageevent.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "TutorMessageEvent.text": %w`, err)}
		}
	}
	return nil
}

func (_c *TutorMessageEventCreate) sqlSave(ctx context.Context) (*TutorMessageEvent, error) {
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

func (_c *TutorMessageEventCreate) createSpec() (*TutorMessageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorMessageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutormessageevent.Table, sqlgraph.NewFieldSpec(tutormessageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tutormessageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutormessageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(tutormessageevent.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(tutormessageevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(tutormessageevent.FieldText, field.TypeString, value)
		_node.Text = value
	}
	return _node, _spec
}

// TutorMessageEventCreateBulk is the builder for creating many TutorMessageEvent entities in bulk.
type TutorMessageEventCreateBulk struct {
	config
	err      error
	builders []*TutorMessageEventCreate
}

// Save creates the TutorMessageEvent entities in the database.
func (_c *TutorMessageEventCreateBulk) Save(ctx context.Context) ([]*TutorMessageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorMessageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorMessageEventMutation)
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
func (_c *TutorMessageEventCreateBulk) SaveX(ctx context.Context) []*TutorMessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorMessageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorMessageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
