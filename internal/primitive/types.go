package primitive

import (
	"time"

	"github.com/google/uuid"
)

// WidgetInstance identifies one rendered primitive for its lifetime.
// The engine never outlives the instance that owns it.
type WidgetInstance struct {
	// InstanceID is stable for the instance's lifetime. Generated once
	// if not supplied by the manifest.
	InstanceID string

	// PrimitiveType names the kind of widget ("balancer", "placevalue", ...).
	PrimitiveType string

	// Optional pedagogical linkage.
	SkillID     string
	SubskillID  string
	ObjectiveID string
	ExhibitID   string
}

// NewWidgetInstance creates an instance with a generated ID.
func NewWidgetInstance(primitiveType string) WidgetInstance {
	return WidgetInstance{
		InstanceID:    uuid.New().String(),
		PrimitiveType: primitiveType,
	}
}

// Challenge is one unit of work within a widget. Immutable once supplied;
// the sequence of challenges for a widget is fixed at configuration time.
type Challenge struct {
	ID          string
	Kind        string
	Instruction string
	Hint        string

	// Expected describes the correct answer. Its concrete type is
	// widget-specific; only the widget's Checker interprets it.
	Expected any

	// Difficulty is a widget-defined level (1 = easiest).
	Difficulty int
}

// Config holds the per-widget knobs that vary across primitives.
type Config struct {
	// AttemptCeiling is the number of attempts before a challenge is
	// marked max-attempts-reached. Zero means DefaultAttemptCeiling.
	AttemptCeiling int

	// AutoAdvance moves to the next challenge after a fixed delay on a
	// correct answer. When false the widget surfaces a manual "Next"
	// affordance instead.
	AutoAdvance bool

	// AutoAdvanceDelay is the feedback delay before auto-advancing.
	// Zero means DefaultAutoAdvanceDelay.
	AutoAdvanceDelay time.Duration

	// RequireAllCorrect tightens the overall success rule from
	// "score >= 50" to "every challenge solved".
	RequireAllCorrect bool

	// GuidedAvailable enables the scaffolded guided mode.
	GuidedAvailable bool
}

// DefaultAttemptCeiling is the attempt limit used when a widget doesn't set one.
const DefaultAttemptCeiling = 3

// DefaultAutoAdvanceDelay lets the learner see success feedback before the
// next challenge appears.
const DefaultAutoAdvanceDelay = 2 * time.Second

// ceiling returns the effective attempt ceiling.
func (c Config) ceiling() int {
	if c.AttemptCeiling > 0 {
		return c.AttemptCeiling
	}
	return DefaultAttemptCeiling
}

// advanceDelay returns the effective auto-advance delay.
func (c Config) advanceDelay() time.Duration {
	if c.AutoAdvanceDelay > 0 {
		return c.AutoAdvanceDelay
	}
	return DefaultAutoAdvanceDelay
}
