package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/primer/internal/llm"
	"github.com/abhisek/primer/internal/store"
)

// SessionConfig tunes LLM-backed tutoring commentary.
type SessionConfig struct {
	MaxTokens     int
	Temperature   float64
	MaxTranscript int // updates retained as prompt context
}

// DefaultSessionConfig returns sensible commentary defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxTokens:     300,
		Temperature:   0.7,
		MaxTranscript: 12,
	}
}

// Comment is a generated tutor remark ready for display.
type Comment struct {
	InstanceID string
	Text       string
}

// Session is an LLM-backed tutoring Channel. It keeps a rolling
// transcript of state updates, generates commentary asynchronously,
// and records everything to the event log.
//
// SwitchContext and SendMessage are cheap: neither blocks on the LLM
// or the event store. Generated comments land in a single pending
// slot; the UI polls ConsumeComment on its tick.
type Session struct {
	provider llm.Provider
	events   store.EventRepo
	cfg      SessionConfig

	mu         sync.Mutex
	mode       string
	closed     bool
	current    ContextSwitch
	transcript []string
	pending    *Comment
	ready      bool
	wg         sync.WaitGroup
}

// NewSession creates a tutoring session in idle mode.
func NewSession(provider llm.Provider, events store.EventRepo, cfg SessionConfig) *Session {
	return &Session{
		provider: provider,
		events:   events,
		cfg:      cfg,
		mode:     SessionModeIdle,
	}
}

// SetMode moves the session between lesson and idle.
func (s *Session) SetMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// SessionMode reports the current mode.
func (s *Session) SessionMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Connected reports whether the session can deliver at all.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.provider != nil
}

// Close stops the session. In-flight generation finishes but its
// result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.pending = nil
	s.ready = false
	s.mu.Unlock()
}

// SwitchContext points the tutor at a different widget instance. The
// update is local and cheap; persistence happens off the caller's
// goroutine.
func (s *Session) SwitchContext(ctx context.Context, cs ContextSwitch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.current = cs
	s.appendTranscriptLocked(fmt.Sprintf("[focus] The learner is now looking at a %s activity.", cs.PrimitiveType))
	s.mu.Unlock()

	if s.events != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			_ = s.events.AppendFocusSwitch(context.Background(), store.FocusEventData{
				InstanceID:    cs.InstanceID,
				PrimitiveType: cs.PrimitiveType,
			})
		}()
	}
	return nil
}

// SendMessage records a state update and, for updates worth reacting
// to, kicks off async comment generation. Only one generation is
// in-flight at a time; a newer update replaces the pending comment.
func (s *Session) SendMessage(ctx context.Context, text string, silent bool) error {
	category := messageCategory(text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	instanceID := s.current.InstanceID
	history := make([]string, len(s.transcript))
	copy(history, s.transcript)
	s.appendTranscriptLocked(text)
	s.mu.Unlock()

	if s.events != nil {
		if err := s.events.AppendTutorMessage(ctx, store.TutorMessageEventData{
			InstanceID: instanceID,
			Category:   category,
			Text:       text,
		}); err != nil {
			return fmt.Errorf("recording tutor message: %w", err)
		}
	}

	if !commentWorthy(category) {
		return nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		comment, err := s.generate(history, text)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || err != nil {
			return
		}
		s.pending = &Comment{InstanceID: instanceID, Text: comment}
		s.ready = true
	}()
	return nil
}

// ConsumeComment returns the pending comment if one is ready.
// After consumption, the pending slot is cleared.
func (s *Session) ConsumeComment() (*Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	c := s.pending
	s.pending = nil
	s.ready = false
	return c, c != nil
}

// Wait blocks until in-flight work finishes. Test helper.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) appendTranscriptLocked(line string) {
	s.transcript = append(s.transcript, line)
	if max := s.cfg.MaxTranscript; max > 0 && len(s.transcript) > max {
		s.transcript = s.transcript[len(s.transcript)-max:]
	}
}

type commentOutput struct {
	Comment string `json:"comment"`
}

func (s *Session) generate(history []string, latest string) (string, error) {
	ctx := llm.WithPurpose(context.Background(), "tutor-comment")

	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCommentUserMessage(history, latest)},
		},
		Schema:      CommentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("comment generation: %w", err)
	}

	var out commentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse comment response: %w", err)
	}
	return strings.TrimSpace(out.Comment), nil
}

// messageCategory extracts the leading [tag] from a dispatcher message.
func messageCategory(text string) string {
	if strings.HasPrefix(text, "[") {
		if end := strings.Index(text, "]"); end > 1 {
			return text[1:end]
		}
	}
	return "untagged"
}

// commentWorthy filters which updates trigger commentary. Focus and
// phase changes update context only; the tutor speaks on answers and
// activity boundaries.
func commentWorthy(category string) bool {
	switch category {
	case "activity-start", "answer-correct", "answer-incorrect", "activity-complete":
		return true
	}
	return false
}
