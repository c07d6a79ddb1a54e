// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "primitive_type", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_instance_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_challenge_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
		},
	}
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "primitive_type", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "score", Type: field.TypeInt},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_instance_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[3]},
			},
			{
				Name:    "evaluationevent_success",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[5]},
			},
		},
	}
	// FocusEventsColumns holds the columns for the "focus_events" table.
	FocusEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "primitive_type", Type: field.TypeString},
	}
	// FocusEventsTable holds the schema information for the "focus_events" table.
	FocusEventsTable = &schema.Table{
		Name:       "focus_events",
		Columns:    FocusEventsColumns,
		PrimaryKey: []*schema.Column{FocusEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "focusevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[1]},
			},
			{
				Name:    "focusevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[2]},
			},
			{
				Name:    "focusevent_instance_id",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TutorMessageEventsColumns holds the columns for the "tutor_message_events" table.
	TutorMessageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
	}
	// TutorMessageEventsTable holds the schema information for the "tutor_message_events" table.
	TutorMessageEventsTable = &schema.Table{
		Name:       "tutor_message_events",
		Columns:    TutorMessageEventsColumns,
		PrimaryKey: []*schema.Column{TutorMessageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutormessageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutorMessageEventsColumns[1]},
			},
			{
				Name:    "tutormessageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorMessageEventsColumns[2]},
			},
			{
				Name:    "tutormessageevent_instance_id",
				Unique:  false,
				Columns: []*schema.Column{TutorMessageEventsColumns[3]},
			},
			{
				Name:    "tutormessageevent_category",
				Unique:  false,
				Columns: []*schema.Column{TutorMessageEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		EvaluationEventsTable,
		FocusEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
		TutorMessageEventsTable,
	}
)

func init() {
}
