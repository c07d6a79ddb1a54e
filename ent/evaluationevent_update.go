// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/primer/ent/evaluationevent"
	"github.com/abhisek/primer/ent/predicate"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *EvaluationEventUpdate) SetInstanceID(v string) *EvaluationEventUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableInstanceID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetPrimitiveType sets the "primitive_type" field.
func (_u *EvaluationEventUpdate) SetPrimitiveType(v string) *EvaluationEventUpdate {
	_u.mutation.SetPrimitiveType(v)
	return _u
}

// SetNillablePrimitiveType sets the "primitive_type" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillablePrimitiveType(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetPrimitiveType(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EvaluationEventUpdate) SetSuccess(v bool) *EvaluationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSuccess(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationEventUpdate) SetScore(v int) *EvaluationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableScore(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationEventUpdate) AddScore(v int) *EvaluationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationEventUpdate) SetMetrics(v map[string]interface{}) *EvaluationEventUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *EvaluationEventUpdate) ClearMetrics() *EvaluationEventUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *EvaluationEventUpdate) SetElapsedMs(v int64) *EvaluationEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableElapsedMs(v *int64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *EvaluationEventUpdate) AddElapsedMs(v int64) *EvaluationEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := evaluationevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimitiveType(); ok {
		if err := evaluationevent.PrimitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "primitive_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.primitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(evaluationevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimitiveType(); ok {
		_spec.SetField(evaluationevent.FieldPrimitiveType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(evaluationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationevent.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(evaluationevent.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(evaluationevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(evaluationevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetInstanceID sets the "instance_id" field.
func (_u *EvaluationEventUpdateOne) SetInstanceID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableInstanceID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetPrimitiveType sets the "primitive_type" field.
func (_u *EvaluationEventUpdateOne) SetPrimitiveType(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetPrimitiveType(v)
	return _u
}

// SetNillablePrimitiveType sets the "primitive_type" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillablePrimitiveType(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetPrimitiveType(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *EvaluationEventUpdateOne) SetSuccess(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSuccess(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EvaluationEventUpdateOne) SetScore(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableScore(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EvaluationEventUpdateOne) AddScore(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *EvaluationEventUpdateOne) SetMetrics(v map[string]interface{}) *EvaluationEventUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *EvaluationEventUpdateOne) ClearMetrics() *EvaluationEventUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *EvaluationEventUpdateOne) SetElapsedMs(v int64) *EvaluationEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableElapsedMs(v *int64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *EvaluationEventUpdateOne) AddElapsedMs(v int64) *EvaluationEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.InstanceID(); ok {
		if err := evaluationevent.InstanceIDValidator(v); err != nil {
			return &ValidationError{Name: "instance_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.instance_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimitiveType(); ok {
		if err := evaluationevent.PrimitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "primitive_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.primitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
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
		_spec.SetField(evaluationevent.FieldInstanceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimitiveType(); ok {
		_spec.SetField(evaluationevent.FieldPrimitiveType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(evaluationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(evaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(evaluationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(evaluationevent.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(evaluationevent.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(evaluationevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(evaluationevent.FieldElapsedMs, field.TypeInt64, value)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
