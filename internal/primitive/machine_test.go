package primitive

import (
	"errors"
	"testing"
	"time"
)

// exactChecker matches candidate strings against Expected exactly.
var exactChecker = CheckerFunc(func(ch Challenge, candidate any) (bool, error) {
	s, ok := candidate.(string)
	if !ok {
		return false, errors.New("candidate must be a string")
	}
	return s == ch.Expected.(string), nil
})

func testChallenges(n int) []Challenge {
	out := make([]Challenge, n)
	for i := range out {
		out[i] = Challenge{
			ID:          string(rune('a' + i)),
			Kind:        "exact",
			Instruction: "answer ok",
			Expected:    "ok",
		}
	}
	return out
}

func newTestMachine(n int, cfg Config, submit SubmitFunc) *Machine {
	m := NewMachine(NewWidgetInstance("test"), cfg, testChallenges(n), exactChecker, submit)
	m.Begin()
	return m
}

func TestCheckAnswer_OnlyLegalFromAwaitingInput(t *testing.T) {
	m := NewMachine(NewWidgetInstance("test"), Config{}, testChallenges(1), exactChecker, nil)

	// Still presenting, so the check must be rejected without state change.
	out := m.CheckAnswer("ok")
	if out.Evaluated {
		t.Error("CheckAnswer before Begin should be rejected")
	}
	if len(m.Records()) != 0 {
		t.Error("rejected call must not record an attempt")
	}

	m.Begin()
	m.CheckAnswer("ok")

	// Solved; another check must be rejected.
	out = m.CheckAnswer("ok")
	if out.Evaluated {
		t.Error("CheckAnswer from solved should be rejected")
	}
}

func TestCheckAnswer_CorrectSolves(t *testing.T) {
	m := newTestMachine(2, Config{AutoAdvance: true, AutoAdvanceDelay: 50 * time.Millisecond}, nil)

	out := m.CheckAnswer("ok")
	if !out.Evaluated || !out.Correct {
		t.Fatalf("outcome = %+v, want evaluated correct", out)
	}
	if m.State().Status != StatusSolved {
		t.Errorf("Status = %s, want solved", m.State().Status)
	}
	if m.State().Feedback == nil || m.State().Feedback.Type != FeedbackSuccess {
		t.Error("expected success feedback")
	}
	if out.AutoAdvanceAfter != 50*time.Millisecond {
		t.Errorf("AutoAdvanceAfter = %s, want 50ms", out.AutoAdvanceAfter)
	}
}

func TestCheckAnswer_ManualNextWhenAutoAdvanceOff(t *testing.T) {
	m := newTestMachine(1, Config{}, nil)
	out := m.CheckAnswer("ok")
	if out.AutoAdvanceAfter != 0 {
		t.Error("expected no auto-advance when the widget requires acknowledgement")
	}
}

func TestCheckAnswer_IncorrectStaysAwaiting(t *testing.T) {
	m := newTestMachine(1, Config{AttemptCeiling: 3}, nil)

	out := m.CheckAnswer("nope")
	if out.Correct {
		t.Error("expected incorrect")
	}
	if m.State().Status != StatusAwaitingInput {
		t.Errorf("Status = %s, want awaiting-input for retry", m.State().Status)
	}
	if m.State().Feedback == nil || m.State().Feedback.Type == FeedbackSuccess {
		t.Error("expected error feedback")
	}
}

func TestCheckAnswer_CeilingRevealsAnswer(t *testing.T) {
	m := newTestMachine(1, Config{AttemptCeiling: 2}, nil)

	m.CheckAnswer("nope")
	out := m.CheckAnswer("nope")

	if !out.RevealExpected {
		t.Error("expected RevealExpected at ceiling")
	}
	if m.State().Status != StatusMaxAttempts {
		t.Errorf("Status = %s, want max-attempts-reached", m.State().Status)
	}

	// Terminal: an explicit skip (Advance) is now permitted.
	if !m.Advance() {
		t.Error("Advance should be legal from max-attempts-reached")
	}
}

func TestCheckAnswer_CheckerErrorDegradesToIncorrect(t *testing.T) {
	m := newTestMachine(1, Config{AttemptCeiling: 3}, nil)

	out := m.CheckAnswer(42) // wrong candidate type → checker error
	if !out.Evaluated {
		t.Fatal("call should still be evaluated")
	}
	if out.Correct {
		t.Error("a predicate failure must degrade to incorrect, not crash")
	}
	if m.State().Status != StatusAwaitingInput {
		t.Errorf("Status = %s, want awaiting-input", m.State().Status)
	}
}

func TestAdvance_OnlyFromTerminal(t *testing.T) {
	m := newTestMachine(2, Config{}, nil)

	if m.Advance() {
		t.Error("Advance from awaiting-input should be rejected")
	}

	m.CheckAnswer("ok")
	if !m.Advance() {
		t.Error("Advance from solved should succeed")
	}
	if m.State().Index != 1 {
		t.Errorf("Index = %d, want 1", m.State().Index)
	}
	if m.State().Feedback != nil {
		t.Error("feedback should be cleared on advance")
	}
}

func TestAdvance_ClearsHistoryNotAttempts(t *testing.T) {
	m := newTestMachine(2, Config{}, nil)
	m.History().Push("edit", "coefficient change")

	m.CheckAnswer("ok")
	m.Advance()

	if m.History().Len() != 0 {
		t.Error("history should be cleared on advance")
	}
	if len(m.Records()) != 1 {
		t.Error("attempt records are permanent across advances")
	}
}

func TestCompletion_SubmitsExactlyOnce(t *testing.T) {
	const n = 3
	submissions := 0
	var last EvaluationResult
	m := newTestMachine(n, Config{}, func(r EvaluationResult) {
		submissions++
		last = r
	})

	for i := 0; i < n; i++ {
		m.CheckAnswer("ok")
		m.Advance()
	}

	if !m.State().Complete {
		t.Fatal("machine should be complete after N advances")
	}
	if submissions != 1 {
		t.Errorf("submissions = %d, want exactly 1", submissions)
	}
	if last.Score != 100 || !last.Success {
		t.Errorf("result = %+v, want score 100 success", last)
	}

	// Completion is terminal: further operations are no-ops.
	if m.Advance() {
		t.Error("Advance after completion should be rejected")
	}
	if out := m.CheckAnswer("ok"); out.Evaluated {
		t.Error("CheckAnswer after completion should be rejected")
	}
}

func TestCompletion_KeepsMaxAttemptsStatus(t *testing.T) {
	m := newTestMachine(2, Config{AttemptCeiling: 2}, nil)

	m.CheckAnswer("ok")
	m.Advance()

	// Run out of attempts on the final challenge, then skip past it.
	m.CheckAnswer("no")
	m.CheckAnswer("no")
	if !m.Advance() {
		t.Fatal("Advance should be legal from max-attempts-reached")
	}

	if !m.State().Complete {
		t.Fatal("machine should be complete")
	}
	if m.State().Status != StatusMaxAttempts {
		t.Errorf("Status = %s, want max-attempts-reached to remain visible", m.State().Status)
	}
}

func TestEndToEnd_MixedOutcomes(t *testing.T) {
	// Challenge 1: first try (100). Challenge 2: attempt 3 (60).
	// Challenge 3: max attempts (0). Overall round(160/3)=53, success.
	var result *EvaluationResult
	m := newTestMachine(3, Config{AttemptCeiling: 3}, func(r EvaluationResult) {
		result = &r
	})

	m.CheckAnswer("ok")
	m.Advance()

	m.CheckAnswer("no")
	m.CheckAnswer("no")
	m.CheckAnswer("ok")
	m.Advance()

	m.CheckAnswer("no")
	m.CheckAnswer("no")
	m.CheckAnswer("no")
	m.Advance()

	if result == nil {
		t.Fatal("expected a submitted result")
	}
	if result.Score != 53 {
		t.Errorf("Score = %d, want 53", result.Score)
	}
	if !result.Success {
		t.Error("expected success (53 >= 50)")
	}
}

func TestReset_AllowsFreshSubmission(t *testing.T) {
	submissions := 0
	m := newTestMachine(1, Config{}, func(EvaluationResult) { submissions++ })

	m.CheckAnswer("ok")
	m.Advance()

	m.Reset()
	if m.State().Index != 0 || m.State().Complete {
		t.Error("reset should return to index 0, not complete")
	}
	if len(m.Records()) != 0 {
		t.Error("reset should clear attempt records")
	}
	if m.Result() != nil {
		t.Error("reset should invalidate the submitted result")
	}

	m.Begin()
	m.CheckAnswer("ok")
	m.Advance()

	if submissions != 2 {
		t.Errorf("submissions = %d, want 2 (fresh result after reset)", submissions)
	}
}

func TestReset_BeforeSubmissionIsNoOpOnPipeline(t *testing.T) {
	m := newTestMachine(2, Config{}, nil)
	m.CheckAnswer("ok")
	m.Reset()

	if m.Pipeline().HasSubmitted() {
		t.Error("pipeline should remain un-submitted")
	}
}

func TestGuidedMode_MonotonicFlag(t *testing.T) {
	m := newTestMachine(2, Config{GuidedAvailable: true}, nil)

	m.EnterGuided("oxygen")
	if m.State().GuidedDimension != "oxygen" {
		t.Errorf("GuidedDimension = %q, want oxygen", m.State().GuidedDimension)
	}
	if m.State().Status != StatusAwaitingInput {
		t.Error("guided mode must not replace awaiting-input")
	}

	m.ExitGuided()
	if !m.GuidedUsed() {
		t.Error("GuidedUsed must stay set after exit")
	}

	m.Reset()
	if !m.GuidedUsed() {
		t.Error("GuidedUsed is monotonic across resets")
	}
}

func TestGuidedMode_UnavailableIsNoOp(t *testing.T) {
	m := newTestMachine(1, Config{}, nil)
	m.EnterGuided("tens")
	if m.State().GuidedDimension != "" || m.GuidedUsed() {
		t.Error("guided mode should be a no-op when unavailable")
	}
}

func TestEvents_EmittedInOrder(t *testing.T) {
	var kinds []EventKind
	m := NewMachine(NewWidgetInstance("test"), Config{GuidedAvailable: true}, testChallenges(2), exactChecker, nil)
	m.AddSink(EventSinkFunc(func(ev Event) { kinds = append(kinds, ev.Kind) }))

	m.Begin()
	m.EnterGuided("units")
	m.CheckAnswer("ok")
	m.Advance()
	m.CheckAnswer("ok")
	m.Advance()

	want := []EventKind{
		EventActivityStart,
		EventGuidedEntered,
		EventAnswer,
		EventPhaseAdvance,
		EventAnswer,
		EventCompleted,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}
