// Package llm generates structured tutor commentary through a pluggable
// language-model backend. The player talks to a single Provider; which
// vendor sits behind it is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Provider produces one structured completion per call.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Schema constrains the model output to a JSON shape. Definition is a
// plain JSON Schema document; vendors that support native structured
// output get it on the request, and the reply is validated against it
// either way.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Request is a vendor-neutral completion request.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Stop reasons are normalized across vendors so callers never branch
// on vendor-specific strings.
const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a vendor-neutral completion result. Content is the raw
// JSON document the model produced.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// purposeKey carries the request purpose label through a context.
type purposeKey struct{}

// WithPurpose labels the context so the event log can attribute the
// request (e.g. "tutor-comment").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

// ErrRateLimit reports a vendor 429. RetryAfter is zero when the
// vendor gave no guidance.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports a vendor outage or transport failure.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed schema
// validation. Content holds the rejected document for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a reply truncated by the token budget.
// Retrying cannot help; the budget is a configuration problem.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "response truncated: max tokens exceeded"
}
