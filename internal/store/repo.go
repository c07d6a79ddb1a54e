package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures resumable lesson progress at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	// LessonID identifies the manifest this progress belongs to.
	LessonID string `json:"lesson_id,omitempty"`

	// Instances maps widget instance IDs to their saved progress.
	Instances map[string]InstanceProgress `json:"instances,omitempty"`
}

// InstanceProgress is one widget's saved position.
type InstanceProgress struct {
	PrimitiveType  string `json:"primitive_type"`
	ChallengeIndex int    `json:"challenge_index"`
	Complete       bool   `json:"complete"`
	Submitted      bool   `json:"submitted"`
	Score          int    `json:"score"`
}

// Snapshot represents a point-in-time capture of lesson progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one answer attempt on a challenge.
type AttemptEventData struct {
	InstanceID    string
	PrimitiveType string
	ChallengeID   string
	Attempt       int
	Correct       bool
	TimeMs        int
}

// EvaluationEventData captures one submitted evaluation result.
type EvaluationEventData struct {
	InstanceID    string
	PrimitiveType string
	Success       bool
	Score         int
	Metrics       map[string]any
	ElapsedMs     int64
}

// TutorMessageEventData captures one message dispatched to the tutoring
// channel.
type TutorMessageEventData struct {
	InstanceID string
	Category   string
	Text       string
}

// FocusEventData captures one committed viewport focus switch.
type FocusEventData struct {
	InstanceID    string
	PrimitiveType string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// InstanceStats summarizes persisted history for one widget instance.
type InstanceStats struct {
	InstanceID    string
	PrimitiveType string
	Attempts      int
	Correct       int
}

// LLMEventRecord is a queryable LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records an answer attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendEvaluation records a submitted evaluation result.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// AppendTutorMessage records a dispatched tutor message.
	AppendTutorMessage(ctx context.Context, data TutorMessageEventData) error

	// AppendFocusSwitch records a committed focus switch.
	AppendFocusSwitch(ctx context.Context, data FocusEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// InstanceAccuracy returns the all-time correct ratio for an
	// instance's skill linkage, or 0 when no attempts are recorded.
	InstanceAccuracy(ctx context.Context, instanceID string) (float64, error)

	// EvaluationCount returns the number of evaluations recorded.
	EvaluationCount(ctx context.Context) (int, error)

	// AttemptStats returns per-instance attempt totals, most active
	// first.
	AttemptStats(ctx context.Context) ([]InstanceStats, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
