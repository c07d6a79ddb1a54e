package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/primer/internal/store"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_RecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"comment":"Back again."}`)},
	)
	p := withRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"comment":"Back again."}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	outage := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(outage, outage, outage, outage)
	p := withRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected the final error")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want MaxAttempts (3)", mock.CallCount())
	}
}

func TestRetry_TruncationIsNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := withRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %T", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry for a budget problem)", mock.CallCount())
	}
}

func TestRetry_InvalidReplyGetsOneMoreChance(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: json.RawMessage(`{}`)})
	p := withRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected the second invalid reply to end the attempt")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := withRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	outage := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(outage, outage, MockResponse{Content: json.RawMessage(`{}`)})
	p := withRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected an error once the context is cancelled")
	}
}

func TestRetry_DelegatesModelID(t *testing.T) {
	p := withRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

// captureRepo records LLMRequest events. The embedded interface covers
// the methods the recorder never calls.
type captureRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestRecorder_CapturesPurposeAndUsage(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"comment":"Solid work."}`),
		Usage:   Usage{InputTokens: 80, OutputTokens: 25, TotalTokens: 105},
	})
	p := withRecording(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor-comment")
	req := Request{
		System:   "You are a patient tutor.",
		Messages: []Message{{Role: RoleUser, Content: "[activity-complete] score 87"}},
		Schema:   &Schema{Name: "tutor_comment", Definition: map[string]any{"type": "object"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "tutor-comment" || !ev.Success {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 80 || ev.OutputTokens != 25 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != `{"comment":"Solid work."}` {
		t.Errorf("ResponseBody = %q", ev.ResponseBody)
	}
	for _, want := range []string{"[system]", "[user]", "[schema: tutor_comment]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("RequestBody missing %q:\n%s", want, ev.RequestBody)
		}
	}
}

func TestRecorder_KeepsErrorDetails(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := withRecording(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected the provider error to pass through")
	}
	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success || ev.ErrorMessage == "" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown for an unlabeled context", ev.Purpose)
	}
}
