package primitive

// EventKind tags a state transition emitted by the machine.
type EventKind string

const (
	EventActivityStart EventKind = "activity-start"
	EventAnswer        EventKind = "answer"
	EventPhaseAdvance  EventKind = "phase-advance"
	EventGuidedEntered EventKind = "guided-mode"
	EventCompleted     EventKind = "activity-complete"
)

// Event describes one machine transition. The machine emits events;
// consumers (the tutor dispatcher, the event store) format and deliver
// them without gating any transition.
type Event struct {
	Kind   EventKind
	Widget WidgetInstance

	// Challenge is the challenge the event concerns, when applicable.
	Challenge *Challenge

	// Correct and Attempt are set for EventAnswer.
	Correct bool
	Attempt int

	// FromIndex and ToIndex are set for EventPhaseAdvance.
	FromIndex int
	ToIndex   int

	// Dimension is set for EventGuidedEntered.
	Dimension string

	// Result is set for EventCompleted.
	Result *EvaluationResult
}

// EventSink receives machine events. Implementations must not block:
// dispatch is a side effect interleaved with state transitions, never a
// gate on them.
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(ev Event)

func (f EventSinkFunc) HandleEvent(ev Event) { f(ev) }
