package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answer attempt on a challenge.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("instance_id").
			NotEmpty().
			Comment("Widget instance this attempt belongs to"),
		field.String("primitive_type").
			NotEmpty().
			Comment("Kind of widget: balancer, placevalue, flashcards"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Challenge within the widget's sequence"),
		field.Int("attempt").
			Comment("Attempt number for this challenge, starting at 1"),
		field.Bool("correct").
			Comment("Whether the attempt was correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from challenge start to this attempt"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id"),
		index.Fields("challenge_id"),
		index.Fields("correct"),
	}
}
