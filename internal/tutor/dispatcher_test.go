package tutor

import (
	"strings"
	"testing"

	"github.com/abhisek/primer/internal/primitive"
)

func testWidget() primitive.WidgetInstance {
	return primitive.WidgetInstance{InstanceID: "w1", PrimitiveType: "balancer"}
}

func TestDispatcher_ActivityStartIsOneShot(t *testing.T) {
	rec := NewRecorder()
	d := NewDispatcher(rec)

	ev := primitive.Event{Kind: primitive.EventActivityStart, Widget: testWidget()}
	d.HandleEvent(ev)
	d.HandleEvent(ev)
	d.Wait()

	msgs := rec.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1 (activity-start is one-shot)", len(msgs))
	}
	if !strings.HasPrefix(msgs[0].Text, "[activity-start]") {
		t.Errorf("message = %q, want activity-start tag", msgs[0].Text)
	}
	if !msgs[0].Silent {
		t.Error("dispatch must be silent")
	}
}

func TestDispatcher_DroppedWhenNotInLessonMode(t *testing.T) {
	rec := NewRecorder()
	rec.Mode = SessionModeIdle
	d := NewDispatcher(rec)

	d.HandleEvent(primitive.Event{Kind: primitive.EventAnswer, Widget: testWidget(), Attempt: 1})
	d.Wait()

	if len(rec.Messages()) != 0 {
		t.Error("events should be dropped outside lesson mode")
	}
}

func TestDispatcher_DroppedWhenDisconnected(t *testing.T) {
	rec := NewRecorder()
	rec.Offline = true
	d := NewDispatcher(rec)

	d.HandleEvent(primitive.Event{Kind: primitive.EventAnswer, Widget: testWidget(), Attempt: 1})
	d.Wait()

	if len(rec.Messages()) != 0 {
		t.Error("events should be dropped when disconnected")
	}
}

func TestDispatcher_IncorrectAnswerNeverLeaksExpected(t *testing.T) {
	rec := NewRecorder()
	d := NewDispatcher(rec)

	ch := primitive.Challenge{
		ID:          "c1",
		Instruction: "Balance the equation",
		Expected:    "H2O-secret",
	}
	d.HandleEvent(primitive.Event{
		Kind:      primitive.EventAnswer,
		Widget:    testWidget(),
		Challenge: &ch,
		Correct:   false,
		Attempt:   2,
	})
	d.Wait()

	msgs := rec.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	text := msgs[0].Text
	if !strings.HasPrefix(text, "[answer-incorrect]") {
		t.Errorf("message = %q, want answer-incorrect tag", text)
	}
	if !strings.Contains(text, "attempt 2") {
		t.Errorf("message should carry the attempt number: %q", text)
	}
	if strings.Contains(text, "H2O-secret") {
		t.Error("message must not reveal the expected answer")
	}
}

func TestDispatcher_CompletionCarriesScore(t *testing.T) {
	rec := NewRecorder()
	d := NewDispatcher(rec)

	d.HandleEvent(primitive.Event{
		Kind:   primitive.EventCompleted,
		Widget: testWidget(),
		Result: &primitive.EvaluationResult{Success: true, Score: 87},
	})
	d.Wait()

	msgs := rec.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].Text, "87") || !strings.Contains(msgs[0].Text, "passed") {
		t.Errorf("completion message missing score/verdict: %q", msgs[0].Text)
	}
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	rec := NewRecorder()
	rec.SendErr = errFailed
	d := NewDispatcher(rec)

	// Must not panic or block.
	d.HandleEvent(primitive.Event{Kind: primitive.EventGuidedEntered, Widget: testWidget(), Dimension: "tens"})
	d.Wait()
}

var errFailed = &deliveryError{}

type deliveryError struct{}

func (*deliveryError) Error() string { return "delivery failed" }
