package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_ValidLesson(t *testing.T) {
	data := []byte(`{
		"id": "demo",
		"title": "Demo Lesson",
		"widgets": [
			{
				"id": "w1",
				"type": "flashcards",
				"title": "Cards",
				"attempt_ceiling": 2,
				"auto_advance": true,
				"auto_advance_delay_ms": 1500,
				"challenges": [
					{"id": "c1", "kind": "integer", "instruction": "What is 2+3?", "expected": "5"}
				]
			}
		]
	}`)

	lesson, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson.ID != "demo" {
		t.Fatalf("expected id 'demo', got %q", lesson.ID)
	}
	if len(lesson.Widgets) != 1 {
		t.Fatalf("expected 1 widget, got %d", len(lesson.Widgets))
	}

	w := lesson.Widgets[0]
	cfg := w.PrimitiveConfig()
	if cfg.AttemptCeiling != 2 {
		t.Fatalf("expected ceiling 2, got %d", cfg.AttemptCeiling)
	}
	if !cfg.AutoAdvance || cfg.AutoAdvanceDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected auto-advance config: %+v", cfg)
	}

	challenges := w.PrimitiveChallenges()
	if len(challenges) != 1 || challenges[0].Instruction != "What is 2+3?" {
		t.Fatalf("unexpected challenges: %+v", challenges)
	}
}

func TestParse_RejectsUnknownWidgetType(t *testing.T) {
	data := []byte(`{
		"id": "demo",
		"title": "Demo",
		"widgets": [
			{
				"id": "w1",
				"type": "teleporter",
				"title": "Nope",
				"challenges": [{"id": "c1", "instruction": "x", "expected": 1}]
			}
		]
	}`)

	if _, err := Parse(data); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestParse_RejectsMissingChallenges(t *testing.T) {
	data := []byte(`{
		"id": "demo",
		"title": "Demo",
		"widgets": [
			{"id": "w1", "type": "balancer", "title": "Scale", "challenges": []}
		]
	}`)

	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for empty challenge list")
	}
}

func TestParse_RejectsDuplicateWidgetIDs(t *testing.T) {
	data := []byte(`{
		"id": "demo",
		"title": "Demo",
		"widgets": [
			{"id": "w1", "type": "flashcards", "title": "A",
			 "challenges": [{"id": "c1", "instruction": "x", "expected": "1"}]},
			{"id": "w1", "type": "flashcards", "title": "B",
			 "challenges": [{"id": "c1", "instruction": "y", "expected": "2"}]}
		]
	}`)

	_, err := Parse(data)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate widget id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected JSON error")
	}
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lesson.json")
	if err := os.WriteFile(path, builtinLessonJSON, 0o644); err != nil {
		t.Fatal(err)
	}

	lesson, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson.ID != "intro" {
		t.Fatalf("expected 'intro', got %q", lesson.ID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuiltin_IsValid(t *testing.T) {
	lesson := Builtin()
	if len(lesson.Widgets) != 3 {
		t.Fatalf("expected 3 widgets, got %d", len(lesson.Widgets))
	}

	types := make(map[string]bool)
	for _, w := range lesson.Widgets {
		types[w.Type] = true
	}
	for _, want := range []string{TypeBalancer, TypePlaceValue, TypeFlashcards} {
		if !types[want] {
			t.Fatalf("builtin lesson missing widget type %q", want)
		}
	}
}
