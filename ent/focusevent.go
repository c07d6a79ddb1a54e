// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/primer/ent/focusevent"
)

// FocusEvent is the model entity for the FocusEvent schema.
type FocusEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Widget instance that gained focus
	InstanceID string `json:"instance_id,omitempty"`
	// Kind of widget
	PrimitiveType string `json:"primitive_type,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FocusEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case focusevent.FieldID, focusevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case focusevent.FieldInstanceID, focusevent.FieldPrimitiveType:
			values[i] = new(sql.NullString)
		case focusevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FocusEvent fields.
func (_m *FocusEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case focusevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case focusevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case focusevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case focusevent.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case focusevent.FieldPrimitiveType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primitive_type", values[i])
			} else if value.Valid {
				_m.PrimitiveType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FocusEvent.
// This includes values selected through modifiers, order, etc.
func (_m *FocusEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FocusEvent.
// Note that you need to call FocusEvent.Unwrap() before calling this method if this FocusEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FocusEvent) Update() *FocusEventUpdateOne {
	return NewFocusEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FocusEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FocusEvent) Unwrap() *FocusEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FocusEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FocusEvent) String() string {
	var builder strings.Builder
	builder.WriteString("FocusEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("primitive_type=")
	builder.WriteString(_m.PrimitiveType)
	builder.WriteByte(')')
	return builder.String()
}

// FocusEvents is a parsable slice of FocusEvent.
type FocusEvents []*FocusEvent
