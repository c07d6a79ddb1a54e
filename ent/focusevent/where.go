// Code generated by ent, DO NOT EDIT.

package focusevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/primer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldTimestamp, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldInstanceID, v))
}

// PrimitiveType applies equality check predicate on the "primitive_type" field. It's identical to PrimitiveTypeEQ.
func PrimitiveType(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldPrimitiveType, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLTE(FieldTimestamp, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldContainsFold(FieldInstanceID, v))
}

// PrimitiveTypeEQ applies the EQ predicate on the "primitive_type" field.
func PrimitiveTypeEQ(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEQ(FieldPrimitiveType, v))
}

// PrimitiveTypeNEQ applies the NEQ predicate on the "primitive_type" field.
func PrimitiveTypeNEQ(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNEQ(FieldPrimitiveType, v))
}

// PrimitiveTypeIn applies the In predicate on the "primitive_type" field.
func PrimitiveTypeIn(vs ...string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldIn(FieldPrimitiveType, vs...))
}

// PrimitiveTypeNotIn applies the NotIn predicate on the "primitive_type" field.
func PrimitiveTypeNotIn(vs ...string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldNotIn(FieldPrimitiveType, vs...))
}

// PrimitiveTypeGT applies the GT predicate on the "primitive_type" field.
func PrimitiveTypeGT(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGT(FieldPrimitiveType, v))
}

// PrimitiveTypeGTE applies the GTE predicate on the "primitive_type" field.
func PrimitiveTypeGTE(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldGTE(FieldPrimitiveType, v))
}

// PrimitiveTypeLT applies the LT predicate on the "primitive_type" field.
func PrimitiveTypeLT(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLT(FieldPrimitiveType, v))
}

// PrimitiveTypeLTE applies the LTE predicate on the "primitive_type" field.
func PrimitiveTypeLTE(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldLTE(FieldPrimitiveType, v))
}

// PrimitiveTypeContains applies the Contains predicate on the "primitive_type" field.
func PrimitiveTypeContains(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldContains(FieldPrimitiveType, v))
}

// PrimitiveTypeHasPrefix applies the HasPrefix predicate on the "primitive_type" field.
func PrimitiveTypeHasPrefix(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldHasPrefix(FieldPrimitiveType, v))
}

// PrimitiveTypeHasSuffix applies the HasSuffix predicate on the "primitive_type" field.
func PrimitiveTypeHasSuffix(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldHasSuffix(FieldPrimitiveType, v))
}

// PrimitiveTypeEqualFold applies the EqualFold predicate on the "primitive_type" field.
func PrimitiveTypeEqualFold(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldEqualFold(FieldPrimitiveType, v))
}

// PrimitiveTypeContainsFold applies the ContainsFold predicate on the "primitive_type" field.
func PrimitiveTypeContainsFold(v string) predicate.FocusEvent {
	return predicate.FocusEvent(sql.FieldContainsFold(FieldPrimitiveType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FocusEvent) predicate.FocusEvent {
	return predicate.FocusEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FocusEvent) predicate.FocusEvent {
	return predicate.FocusEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FocusEvent) predicate.FocusEvent {
	return predicate.FocusEvent(sql.NotPredicates(p))
}
