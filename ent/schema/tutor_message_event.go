package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorMessageEvent records a message dispatched to the tutoring channel.
type TutorMessageEvent struct {
	ent.Schema
}

func (TutorMessageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutorMessageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("instance_id").
			NotEmpty().
			Comment("Widget instance the message concerns"),
		field.String("category").
			NotEmpty().
			Comment("Machine-readable tag: activity-start, answer-correct, ..."),
		field.String("text").
			NotEmpty().
			Comment("Natural-language payload sent to the tutor"),
	}
}

func (TutorMessageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id"),
		index.Fields("category"),
	}
}
