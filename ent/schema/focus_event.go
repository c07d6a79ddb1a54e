package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FocusEvent records a committed viewport focus switch.
type FocusEvent struct {
	ent.Schema
}

func (FocusEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FocusEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("instance_id").
			NotEmpty().
			Comment("Widget instance that gained focus"),
		field.String("primitive_type").
			NotEmpty().
			Comment("Kind of widget"),
	}
}

func (FocusEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id"),
	}
}
