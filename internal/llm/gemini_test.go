package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema_CommentShape(t *testing.T) {
	got := geminiSchema(map[string]any{
		"type":        "object",
		"description": "A short tutor remark",
		"properties": map[string]any{
			"comment": map[string]any{"type": "string"},
		},
		"required": []any{"comment"},
	})

	if got.Type != genai.TypeObject {
		t.Fatalf("Type = %s, want OBJECT", got.Type)
	}
	if got.Description != "A short tutor remark" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Properties["comment"] == nil || got.Properties["comment"].Type != genai.TypeString {
		t.Errorf("comment property = %+v", got.Properties["comment"])
	}
	if len(got.Required) != 1 || got.Required[0] != "comment" {
		t.Errorf("Required = %v", got.Required)
	}
}

func TestGeminiSchema_NestedAndEnum(t *testing.T) {
	got := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tone":   map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			"scores": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
	})

	if len(got.Properties["tone"].Enum) != 2 {
		t.Errorf("tone enum = %v", got.Properties["tone"].Enum)
	}
	scores := got.Properties["scores"]
	if scores.Type != genai.TypeArray || scores.Items == nil || scores.Items.Type != genai.TypeInteger {
		t.Errorf("scores schema = %+v", scores)
	}
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	got := geminiSchema(map[string]any{"type": "decimal"})
	if got.Type != genai.TypeString {
		t.Errorf("Type = %s, want STRING fallback", got.Type)
	}
}

func TestGemini_RequiresAPIKey(t *testing.T) {
	if _, err := newGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}
