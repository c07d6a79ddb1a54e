package tutor

import "context"

// SessionMode values reported by a tutoring channel.
const (
	// SessionModeLesson means the channel is attached to an active
	// lesson and should receive state updates and context switches.
	SessionModeLesson = "lesson"

	// SessionModeIdle means no lesson session is active; dispatch and
	// context switches are dropped silently.
	SessionModeIdle = "idle"
)

// ContextSwitch tells the tutoring channel which widget the learner is
// currently focused on.
type ContextSwitch struct {
	PrimitiveType string
	InstanceID    string

	// Data carries widget state the tutor needs to phrase guidance
	// (current instruction, progress) without revealing answers.
	Data map[string]any
}

// Channel is the external AI tutoring session. It consumes state but
// does not own it. All calls are best-effort: the engine never blocks
// on delivery and never treats a failure as an error.
type Channel interface {
	// SendMessage delivers a one-way message. Silent messages update
	// the tutor's context without appearing as learner chat.
	SendMessage(ctx context.Context, text string, silent bool) error

	// SwitchContext points the tutor at a different widget instance.
	SwitchContext(ctx context.Context, cs ContextSwitch) error

	// SessionMode reports the channel's current mode (lesson, idle).
	SessionMode() string

	// Connected reports whether the channel can deliver at all.
	Connected() bool
}
