package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one submitted evaluation result. At most one
// exists per widget instance per reset cycle; the idempotency guard
// lives in the engine, not the store.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("instance_id").
			NotEmpty().
			Comment("Widget instance the result belongs to"),
		field.String("primitive_type").
			NotEmpty().
			Comment("Kind of widget"),
		field.Bool("success").
			Comment("Overall pass/fail"),
		field.Int("score").
			Comment("Overall score, 0-100"),
		field.JSON("metrics", map[string]any{}).
			Optional().
			Comment("Widget-specific structured measurements"),
		field.Int64("elapsed_ms").
			Default(0).
			Comment("Wall-clock from widget mount to submission"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id"),
		index.Fields("success"),
	}
}
