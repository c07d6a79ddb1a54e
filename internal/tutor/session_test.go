package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/primer/internal/llm"
)

func commentJSON(text string) json.RawMessage {
	raw, _ := json.Marshal(map[string]string{"comment": text})
	return raw
}

func waitForComment(t *testing.T, s *Session) *Comment {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if c, ok := s.ConsumeComment(); ok {
			return c
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for comment")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSession_GeneratesCommentOnAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: commentJSON("Nice try, look at the left pan again."),
	})
	s := NewSession(mock, nil, DefaultSessionConfig())
	s.SetMode(SessionModeLesson)

	s.SwitchContext(t.Context(), ContextSwitch{InstanceID: "w1", PrimitiveType: "balancer"})
	if err := s.SendMessage(t.Context(), "[answer-incorrect] The learner answered incorrectly on attempt 1.", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := waitForComment(t, s)
	if c.InstanceID != "w1" {
		t.Fatalf("expected comment for w1, got %q", c.InstanceID)
	}
	if c.Text != "Nice try, look at the left pan again." {
		t.Fatalf("unexpected comment text: %q", c.Text)
	}

	// Slot is cleared after consumption.
	if _, ok := s.ConsumeComment(); ok {
		t.Fatal("expected empty pending slot")
	}
}

func TestSession_FocusUpdatesDoNotTriggerComments(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewSession(mock, nil, DefaultSessionConfig())
	s.SetMode(SessionModeLesson)

	s.SwitchContext(t.Context(), ContextSwitch{InstanceID: "w1", PrimitiveType: "flashcards"})
	if err := s.SendMessage(t.Context(), "[phase-advance] The learner moved from challenge 1 to challenge 2.", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Wait()

	if mock.CallCount() != 0 {
		t.Fatalf("expected no LLM calls, got %d", mock.CallCount())
	}
	if _, ok := s.ConsumeComment(); ok {
		t.Fatal("expected no pending comment")
	}
}

func TestSession_GenerationFailureLeavesSlotEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	s := NewSession(mock, nil, DefaultSessionConfig())
	s.SetMode(SessionModeLesson)

	s.SendMessage(t.Context(), "[answer-correct] The learner answered correctly on attempt 1.", true)
	s.Wait()

	if _, ok := s.ConsumeComment(); ok {
		t.Fatal("expected no comment after generation failure")
	}
}

func TestSession_CloseDiscardsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: commentJSON("Great work!"),
	})
	s := NewSession(mock, nil, DefaultSessionConfig())
	s.SetMode(SessionModeLesson)

	s.SendMessage(context.Background(), "[activity-complete] The learner finished the balancer activity.", true)
	s.Wait()
	s.Close()

	if s.Connected() {
		t.Fatal("expected disconnected after close")
	}
	if _, ok := s.ConsumeComment(); ok {
		t.Fatal("expected pending slot cleared on close")
	}
}

func TestSession_TranscriptFeedsPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: commentJSON("Welcome!")},
		llm.MockResponse{Content: commentJSON("Well done!")},
	)
	s := NewSession(mock, nil, DefaultSessionConfig())
	s.SetMode(SessionModeLesson)

	s.SendMessage(t.Context(), "[activity-start] The learner opened a balancer activity.", true)
	s.Wait()
	s.SendMessage(t.Context(), "[answer-correct] The learner answered correctly on attempt 1.", true)
	s.Wait()

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}
	second := mock.Calls[1]
	if len(second.Messages) != 1 {
		t.Fatalf("expected single user message, got %d", len(second.Messages))
	}
	body := second.Messages[0].Content
	if want := "activity-start"; !strings.Contains(body, want) {
		t.Fatalf("expected earlier update %q in prompt, got:\n%s", want, body)
	}
}

func TestMessageCategory(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"[answer-correct] Good.", "answer-correct"},
		{"[activity-start] Opened.", "activity-start"},
		{"no tag here", "untagged"},
		{"[] empty", "untagged"},
	}
	for _, tt := range tests {
		if got := messageCategory(tt.text); got != tt.expected {
			t.Errorf("messageCategory(%q) = %q, want %q", tt.text, got, tt.expected)
		}
	}
}
