// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/primer/ent/attemptevent"
	"github.com/abhisek/primer/ent/evaluationevent"
	"github.com/abhisek/primer/ent/focusevent"
	"github.com/abhisek/primer/ent/llmrequestevent"
	"github.com/abhisek/primer/ent/schema"
	"github.com/abhisek/primer/ent/snapshot"
	"github.com/abhisek/primer/ent/tutormessageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescInstanceID is the schema descriptor for instance_id field.
	attempteventDescInstanceID := attempteventFields[0].Descriptor()
	// attemptevent.InstanceIDValidator is a validator for the "instance_id" field. It is called by the builders before save.
	attemptevent.InstanceIDValidator = attempteventDescInstanceID.Validators[0].(func(string) error)
	// attempteventDescPrimitiveType is the schema descriptor for primitive_type field.
	attempteventDescPrimitiveType := attempteventFields[1].Descriptor()
	// attemptevent.PrimitiveTypeValidator is a validator for the "primitive_type" field. It is called by the builders before save.
	attemptevent.PrimitiveTypeValidator = attempteventDescPrimitiveType.Validators[0].(func(string) error)
	// attempteventDescChallengeID is the schema descriptor for challenge_id field.
	attempteventDescChallengeID := attempteventFields[2].Descriptor()
	// attemptevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	attemptevent.ChallengeIDValidator = attempteventDescChallengeID.Validators[0].(func(string) error)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[5].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescInstanceID is the schema descriptor for instance_id field.
	evaluationeventDescInstanceID := evaluationeventFields[0].Descriptor()
	// evaluationevent.InstanceIDValidator is a validator for the "instance_id" field. It is called by the builders before save.
	evaluationevent.InstanceIDValidator = evaluationeventDescInstanceID.Validators[0].(func(string) error)
	// evaluationeventDescPrimitiveType is the schema descriptor for primitive_type field.
	evaluationeventDescPrimitiveType := evaluationeventFields[1].Descriptor()
	// evaluationevent.PrimitiveTypeValidator is a validator for the "primitive_type" field. It is called by the builders before save.
	evaluationevent.PrimitiveTypeValidator = evaluationeventDescPrimitiveType.Validators[0].(func(string) error)
	// evaluationeventDescElapsedMs is the schema descriptor for elapsed_ms field.
	evaluationeventDescElapsedMs := evaluationeventFields[5].Descriptor()
	// evaluationevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	evaluationevent.DefaultElapsedMs = evaluationeventDescElapsedMs.Default.(int64)
	focuseventMixin := schema.FocusEvent{}.Mixin()
	focuseventMixinFields0 := focuseventMixin[0].Fields()
	_ = focuseventMixinFields0
	focuseventFields := schema.FocusEvent{}.Fields()
	_ = focuseventFields
	// focuseventDescTimestamp is the schema descriptor for timestamp field.
	focuseventDescTimestamp := focuseventMixinFields0[1].Descriptor()
	// focusevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	focusevent.DefaultTimestamp = focuseventDescTimestamp.Default.(func() time.Time)
	// focuseventDescInstanceID is the schema descriptor for instance_id field.
	focuseventDescInstanceID := focuseventFields[0].Descriptor()
	// focusevent.InstanceIDValidator is a validator for the "instance_id" field. It is called by the builders before save.
	focusevent.InstanceIDValidator = focuseventDescInstanceID.Validators[0].(func(string) error)
	// focuseventDescPrimitiveType is the schema descriptor for primitive_type field.
	focuseventDescPrimitiveType := focuseventFields[1].Descriptor()
	// focusevent.PrimitiveTypeValidator is a validator for the "primitive_type" field. It is called by the builders before save.
	focusevent.PrimitiveTypeValidator = focuseventDescPrimitiveType.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	tutormessageeventMixin := schema.TutorMessageEvent{}.Mixin()
	tutormessageeventMixinFields0 := tutormessageeventMixin[0].Fields()
	_ = tutormessageeventMixinFields0
	tutormessageeventFields := schema.TutorMessageEvent{}.Fields()
	_ = tutormessageeventFields
	// tutormessageeventDescTimestamp is the schema descriptor for timestamp field.
	tutormessageeventDescTimestamp := tutormessageeventMixinFields0[1].Descriptor()
	// tutormessageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutormessageevent.DefaultTimestamp = tutormessageeventDescTimestamp.Default.(func() time.Time)
	// tutormessageeventDescInstanceID is the schema descriptor for instance_id field.
	tutormessageeventDescInstanceID := tutormessageeventFields[0].Descriptor()
	// tutormessageevent.InstanceIDValidator is a validator for the "instance_id" field. It is called by the builders before save.
	tutormessageevent.InstanceIDValidator = tutormessageeventDescInstanceID.Validators[0].(func(string) error)
	// tutormessageeventDescCategory is the schema descriptor for category field.
	tutormessageeventDescCategory := tutormessageeventFields[1].Descriptor()
	// tutormessageevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	tutormessageevent.CategoryValidator = tutormessageeventDescCategory.Validators[0].(func(string) error)
	// tutormessageeventDescText is the schema descriptor for text field.
	tutormessageeventDescText := tutormessageeventFields[2].Descriptor()
	// tutormessageevent.TextValidator is a validator for the "text" field. It is called by the builders before save.
	tutormessageevent.TextValidator = tutormessageeventDescText.Validators[0].(func(string) error)
}
