package primitive

import "time"

// Status is the per-challenge position in the interaction lifecycle.
type Status string

const (
	StatusPresenting    Status = "presenting"
	StatusAwaitingInput Status = "awaiting-input"
	StatusEvaluating    Status = "evaluating"
	StatusSolved        Status = "solved"
	StatusMaxAttempts   Status = "max-attempts-reached"
)

// Terminal reports whether the status permits advancing to the next
// challenge. Both solved and max-attempts-reached qualify; the latter
// requires an explicit skip after the answer is shown.
func (s Status) Terminal() bool {
	return s == StatusSolved || s == StatusMaxAttempts
}

// FeedbackType classifies feedback for rendering.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
	FeedbackHint    FeedbackType = "hint"
)

// Feedback is the free-text message shown for the current challenge.
type Feedback struct {
	Text string
	Type FeedbackType
}

// PhaseState is the engine's cursor into the challenge sequence.
// One PhaseState exists per widget instance; it is exposed read-only
// to the rendering layer.
type PhaseState struct {
	Index    int
	Status   Status
	Feedback *Feedback

	// Complete is true once every challenge is terminal and the index
	// has moved past the end of the sequence.
	Complete bool

	// GuidedDimension names the single unresolved dimension guided mode
	// is currently narrowed to, or "" when guided mode is off.
	GuidedDimension string
}

// CheckOutcome reports what CheckAnswer did, so the rendering layer can
// schedule auto-advance or surface the Next affordance.
type CheckOutcome struct {
	// Evaluated is false when the call was rejected as an invalid
	// transition (not awaiting input) and nothing changed.
	Evaluated bool

	Correct bool
	Record  AttemptRecord

	// RevealExpected is true when the attempt ceiling was reached and
	// the widget should show the expected answer.
	RevealExpected bool

	// AutoAdvanceAfter is non-zero when the widget should advance
	// automatically after this delay. Zero means a manual "Next"
	// affordance is required.
	AutoAdvanceAfter time.Duration
}

// Machine drives one widget instance through its challenge sequence.
// Transitions are strictly sequential within an instance; the rendering
// layer disables the triggering control while evaluating. Every invalid
// operation is a safe no-op; the machine never panics, because an
// internal inconsistency must never block the learner.
type Machine struct {
	widget     WidgetInstance
	cfg        Config
	challenges []Challenge
	checker    Checker

	tracker  *AttemptTracker
	history  *HistoryStack
	pipeline *Pipeline

	state      PhaseState
	guidedUsed bool
	sinks      []EventSink
}

// NewMachine creates a machine in the presenting state for the first
// challenge. Call Begin when the widget is on screen and ready for input.
func NewMachine(widget WidgetInstance, cfg Config, challenges []Challenge, checker Checker, submit SubmitFunc) *Machine {
	return &Machine{
		widget:     widget,
		cfg:        cfg,
		challenges: challenges,
		checker:    checker,
		tracker:    NewAttemptTracker(cfg.ceiling()),
		history:    NewHistoryStack(),
		pipeline:   NewPipeline(submit),
		state:      PhaseState{Status: StatusPresenting},
	}
}

// AddSink registers an event consumer.
func (m *Machine) AddSink(s EventSink) {
	if s != nil {
		m.sinks = append(m.sinks, s)
	}
}

func (m *Machine) emit(ev Event) {
	ev.Widget = m.widget
	for _, s := range m.sinks {
		s.HandleEvent(ev)
	}
}

// Begin opens the first (or, after Reset, the restarted) challenge for
// input. A no-op unless the machine is presenting.
func (m *Machine) Begin() {
	if m.state.Status != StatusPresenting || len(m.challenges) == 0 {
		return
	}
	m.state.Status = StatusAwaitingInput
	ch := m.challenges[m.state.Index]
	m.tracker.StartChallenge(ch.ID)
	m.emit(Event{Kind: EventActivityStart, Challenge: &ch})
}

// CheckAnswer evaluates a candidate against the current challenge.
// Only legal from awaiting-input; anything else is a rejected no-op.
// A checker that cannot evaluate degrades to "incorrect".
func (m *Machine) CheckAnswer(candidate any) CheckOutcome {
	if m.state.Status != StatusAwaitingInput || m.state.Complete {
		return CheckOutcome{}
	}

	ch := m.challenges[m.state.Index]
	m.state.Status = StatusEvaluating

	correct := false
	if m.checker != nil {
		ok, err := m.checker.Check(ch, candidate)
		correct = ok && err == nil
	}

	rec := m.tracker.RecordAttempt(ch.ID, correct)
	outcome := CheckOutcome{Evaluated: true, Correct: correct, Record: rec}

	switch {
	case correct:
		m.state.Status = StatusSolved
		m.state.Feedback = &Feedback{Text: successText(rec), Type: FeedbackSuccess}
		if m.cfg.AutoAdvance {
			outcome.AutoAdvanceAfter = m.cfg.advanceDelay()
		}

	case rec.MaxReached:
		m.state.Status = StatusMaxAttempts
		m.state.Feedback = &Feedback{Text: "Out of attempts — here's the answer.", Type: FeedbackError}
		outcome.RevealExpected = true

	default:
		m.state.Status = StatusAwaitingInput
		fb := &Feedback{Text: "Not quite — try again.", Type: FeedbackError}
		if ch.Hint != "" {
			fb = &Feedback{Text: "Not quite. Hint: " + ch.Hint, Type: FeedbackHint}
		}
		m.state.Feedback = fb
	}

	m.emit(Event{Kind: EventAnswer, Challenge: &ch, Correct: correct, Attempt: rec.Attempts})
	return outcome
}

func successText(rec AttemptRecord) string {
	if rec.FirstTry {
		return "Correct — first try!"
	}
	return "Correct!"
}

// Advance moves to the next challenge. Only legal from a terminal
// per-challenge state. History, feedback, and the guided dimension are
// cleared; attempt records are permanent. When the sequence is
// exhausted the machine completes and submits the evaluation.
func (m *Machine) Advance() bool {
	if !m.state.Status.Terminal() || m.state.Complete {
		return false
	}

	from := m.state.Index
	m.history.Reset()
	m.state.Feedback = nil
	m.state.GuidedDimension = ""
	m.state.Index++

	if m.state.Index >= len(m.challenges) {
		// Complete marks the super-state; the last challenge's terminal
		// status stays in place (it may be max-attempts-reached).
		m.state.Complete = true
		m.submitResult()
		return true
	}

	m.state.Status = StatusAwaitingInput
	ch := m.challenges[m.state.Index]
	m.tracker.StartChallenge(ch.ID)
	m.emit(Event{Kind: EventPhaseAdvance, Challenge: &ch, FromIndex: from, ToIndex: m.state.Index})
	return true
}

// submitResult aggregates the records into one evaluation and pushes it
// through the pipeline. The pipeline's idempotency guard makes repeat
// completion (which shouldn't happen) harmless.
func (m *Machine) submitResult() {
	records := m.tracker.Records()
	score, success := AggregateScore(records, m.cfg.RequireAllCorrect)

	firstTry := 0
	solved := 0
	for _, rec := range records {
		if rec.Correct {
			solved++
		}
		if rec.FirstTry {
			firstTry++
		}
	}

	metrics := Metrics{
		"challenges": len(m.challenges),
		"solved":     solved,
		"firstTry":   firstTry,
		"guidedUsed": m.guidedUsed,
	}

	m.pipeline.Submit(success, score, metrics, records)
	m.emit(Event{Kind: EventCompleted, Result: m.pipeline.Result()})
}

// Reset returns the machine to the first challenge and clears all
// attempt records and feedback. A previously submitted result is
// invalidated so a fresh submission is possible. The guided-used flag
// is monotonic and survives resets.
func (m *Machine) Reset() {
	m.tracker.Reset()
	m.history.Reset()
	m.state = PhaseState{Status: StatusPresenting}
	if m.pipeline.HasSubmitted() {
		m.pipeline.ResetAttempt()
	}
}

// EnterGuided narrows focus to one unresolved dimension. It filters
// which affordances are highlighted; it does not replace awaiting-input.
// The fact that guided mode was used at all is recorded permanently.
func (m *Machine) EnterGuided(dimension string) {
	if !m.cfg.GuidedAvailable || m.state.Status != StatusAwaitingInput || dimension == "" {
		return
	}
	entering := m.state.GuidedDimension == ""
	m.state.GuidedDimension = dimension
	m.guidedUsed = true
	if entering {
		ch := m.challenges[m.state.Index]
		m.emit(Event{Kind: EventGuidedEntered, Challenge: &ch, Dimension: dimension})
	}
}

// ExitGuided clears the guided dimension.
func (m *Machine) ExitGuided() {
	m.state.GuidedDimension = ""
}

// State returns the current phase state.
func (m *Machine) State() PhaseState {
	return m.state
}

// Widget returns the owning widget instance.
func (m *Machine) Widget() WidgetInstance {
	return m.widget
}

// Challenge returns the current challenge, or nil when the sequence is
// complete or empty.
func (m *Machine) Challenge() *Challenge {
	if m.state.Complete || m.state.Index >= len(m.challenges) {
		return nil
	}
	ch := m.challenges[m.state.Index]
	return &ch
}

// Challenges returns the full challenge sequence.
func (m *Machine) Challenges() []Challenge {
	return m.challenges
}

// History returns the undo/redo stack for the current challenge.
func (m *Machine) History() *HistoryStack {
	return m.history
}

// Records returns the per-challenge attempt records.
func (m *Machine) Records() []AttemptRecord {
	return m.tracker.Records()
}

// Result returns the submitted evaluation result, or nil.
func (m *Machine) Result() *EvaluationResult {
	return m.pipeline.Result()
}

// Pipeline exposes the evaluation pipeline (for reset flows).
func (m *Machine) Pipeline() *Pipeline {
	return m.pipeline
}

// GuidedUsed reports whether guided mode was ever entered.
func (m *Machine) GuidedUsed() bool {
	return m.guidedUsed
}
