package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// commentSchema mirrors the shape the tutor asks every provider for.
func commentSchema() *Schema {
	return &Schema{
		Name:        "tutor_comment",
		Description: "A short tutor remark",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"comment": map[string]any{"type": "string"},
				"tone":    map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			},
			"required": []any{"comment"},
		},
	}
}

func TestEnforceSchema(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"full comment", `{"comment":"Nicely balanced.","tone":"warm"}`, false},
		{"optional field omitted", `{"comment":"Keep at it."}`, false},
		{"missing comment", `{"tone":"warm"}`, true},
		{"wrong type", `{"comment":42}`, true},
		{"enum violation", `{"comment":"ok","tone":"sarcastic"}`, true},
		{"not JSON at all", `the model rambled instead`, true},
		{"empty reply", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := enforceSchema(commentSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("enforceSchema = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %T, want ErrInvalidResponse", err)
				}
				if string(invalid.Content) != tt.raw {
					t.Errorf("Content = %q, want the rejected document", invalid.Content)
				}
			}
		})
	}
}

func TestEnforceSchema_NilSchemaAcceptsAnything(t *testing.T) {
	if err := enforceSchema(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestEnforceSchema_NestedDocuments(t *testing.T) {
	schema := &Schema{
		Name: "progress_report",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"widget": map[string]any{
					"type":       "object",
					"properties": map[string]any{"id": map[string]any{"type": "string"}},
					"required":   []any{"id"},
				},
				"scores": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			},
			"required": []any{"widget", "scores"},
		},
	}

	good := json.RawMessage(`{"widget":{"id":"w1"},"scores":[100,60,0]}`)
	if err := enforceSchema(schema, good); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	bad := json.RawMessage(`{"widget":{"id":"w1"},"scores":["a"]}`)
	if err := enforceSchema(schema, bad); err == nil {
		t.Fatal("expected rejection of non-integer scores")
	}
}
