package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/primer/internal/primitive"
	"github.com/abhisek/primer/internal/router"
)

func sampleResults() []WidgetResult {
	return []WidgetResult{
		{
			Title: "Balance the Equation", PrimitiveType: "balancer",
			Score: 100, Success: true,
			Records: []primitive.AttemptRecord{
				{ChallengeID: "water", Attempts: 1, Correct: true, FirstTry: true},
			},
		},
		{
			Title: "Quick Cards", PrimitiveType: "flashcards",
			Score: 40, Success: false,
			Records: []primitive.AttemptRecord{
				{ChallengeID: "c1", Attempts: 3, Correct: false},
			},
		},
		{
			Title: "Place Values", PrimitiveType: "placevalue",
			Score: 80, Success: true, Restored: true,
		},
	}
}

func TestSummary_OverallScore(t *testing.T) {
	s := New("Getting Started", sampleResults())
	if got := s.OverallScore(); got != 73 {
		t.Fatalf("expected overall 73, got %d", got)
	}

	empty := New("Empty", nil)
	if got := empty.OverallScore(); got != 0 {
		t.Fatalf("expected 0 for no results, got %d", got)
	}
}

func TestSummary_ViewListsAllWidgets(t *testing.T) {
	s := New("Getting Started", sampleResults())
	out := s.View(100, 30)

	for _, want := range []string{
		"Lesson complete!",
		"Balance the Equation",
		"Quick Cards",
		"needs practice",
		"(from earlier run)",
		"1/1 first try",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, out)
		}
	}
}

func TestSummary_EnterPops(t *testing.T) {
	s := New("Getting Started", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
