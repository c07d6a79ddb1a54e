package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/primitive"
	"github.com/abhisek/primer/internal/router"
	"github.com/abhisek/primer/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func cardsLesson() *manifest.Lesson {
	return &manifest.Lesson{
		ID:    "test",
		Title: "Test Lesson",
		Widgets: []manifest.Widget{
			{
				ID: "w1", Type: manifest.TypeFlashcards, Title: "Cards",
				Challenges: []manifest.Challenge{
					{ID: "c1", Kind: "integer", Instruction: "What is 2+3?", Expected: "5"},
				},
			},
		},
	}
}

func mixedLesson() *manifest.Lesson {
	return &manifest.Lesson{
		ID:    "mixed",
		Title: "Mixed Lesson",
		Widgets: []manifest.Widget{
			{
				ID: "w1", Type: manifest.TypeFlashcards, Title: "Cards",
				AutoAdvance: true,
				Challenges: []manifest.Challenge{
					{ID: "c1", Kind: "integer", Instruction: "What is 2+3?", Expected: "5"},
					{ID: "c2", Kind: "integer", Instruction: "What is 3+4?", Expected: "7"},
				},
			},
			{
				ID: "w2", Type: manifest.TypeBalancer, Title: "Balance",
				GuidedAvailable: true,
				Challenges: []manifest.Challenge{
					{ID: "b1", Instruction: "Balance it.", Expected: map[string]any{"H": 2.0}},
				},
			},
		},
	}
}

// fakeSnapRepo serves a canned snapshot and records saves.
type fakeSnapRepo struct {
	latest *store.Snapshot
	saved  []*store.Snapshot
}

func (f *fakeSnapRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapRepo) Latest(context.Context) (*store.Snapshot, error) {
	return f.latest, nil
}

func (f *fakeSnapRepo) Prune(context.Context, int) error { return nil }

func newTestScreen(t *testing.T, l *manifest.Lesson) *LessonScreen {
	t.Helper()
	s, err := New(l, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Init()
	s.View(80, 24) // establish geometry
	return s
}

func TestLessonScreen_FlashcardFlow(t *testing.T) {
	s := newTestScreen(t, cardsLesson())

	v := s.views[0]
	if v.machine.State().Status != primitive.StatusAwaitingInput {
		t.Fatalf("expected awaiting-input after Init, got %s", v.machine.State().Status)
	}

	// Wrong answer first.
	v.input.Model.SetValue("4")
	s.Update(specialKey(tea.KeyEnter))
	if v.machine.State().Status != primitive.StatusAwaitingInput {
		t.Fatalf("expected retry after wrong answer, got %s", v.machine.State().Status)
	}

	// Then right.
	v.input.Model.SetValue("5")
	s.Update(specialKey(tea.KeyEnter))
	if v.machine.State().Status != primitive.StatusSolved {
		t.Fatalf("expected solved, got %s", v.machine.State().Status)
	}

	// Manual advance finishes the single-challenge widget.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if !v.machine.State().Complete {
		t.Fatal("expected widget complete")
	}
	if cmd == nil {
		t.Fatal("expected summary push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg to summary")
	}
}

func TestLessonScreen_EmptyAnswerIgnored(t *testing.T) {
	s := newTestScreen(t, cardsLesson())
	v := s.views[0]

	s.Update(specialKey(tea.KeyEnter))
	if got := len(v.machine.Records()); got != 0 {
		t.Fatalf("expected no attempts for empty answer, got %d", got)
	}
}

func TestLessonScreen_AutoAdvanceScheduling(t *testing.T) {
	s := newTestScreen(t, mixedLesson())
	v := s.views[0]

	v.input.Model.SetValue("5")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected auto-advance timer command")
	}

	// A stale generation is ignored.
	s.Update(autoAdvanceMsg{widget: 0, gen: s.advanceGen - 1})
	if v.machine.State().Index != 0 {
		t.Fatal("stale timer must not advance")
	}

	// The live generation advances to the next challenge.
	s.Update(autoAdvanceMsg{widget: 0, gen: s.advanceGen})
	if v.machine.State().Index != 1 {
		t.Fatalf("expected index 1 after auto-advance, got %d", v.machine.State().Index)
	}
	if v.machine.State().Status != primitive.StatusAwaitingInput {
		t.Fatalf("expected awaiting-input, got %s", v.machine.State().Status)
	}
}

func TestLessonScreen_BalancerKeysAndGuided(t *testing.T) {
	s := newTestScreen(t, mixedLesson())

	// Move to the balancer widget.
	s.Update(specialKey(tea.KeyTab))
	if s.selected != 1 {
		t.Fatalf("expected balancer selected, got %d", s.selected)
	}
	v := s.views[1]
	if v.balancer == nil {
		t.Fatal("expected balancer state prepared")
	}

	// Guided mode narrows to the unresolved element.
	s.Update(keyPress('g'))
	if dim := v.machine.State().GuidedDimension; dim != "H" {
		t.Fatalf("expected guided dimension H, got %q", dim)
	}

	s.Update(keyPress('+'))
	s.Update(keyPress('+'))
	if v.balancer.Counts["H"] != 2 {
		t.Fatalf("expected count 2, got %d", v.balancer.Counts["H"])
	}

	// Undo steps back one edit.
	s.Update(keyPress('u'))
	if v.balancer.Counts["H"] != 1 {
		t.Fatalf("expected count 1 after undo, got %d", v.balancer.Counts["H"])
	}
	s.Update(keyPress('+'))

	s.Update(specialKey(tea.KeyEnter))
	if v.machine.State().Status != primitive.StatusSolved {
		t.Fatalf("expected solved, got %s", v.machine.State().Status)
	}
	if !v.machine.GuidedUsed() {
		t.Fatal("expected guided usage recorded")
	}
}

func TestLessonScreen_RestoresCompletedWidgets(t *testing.T) {
	snaps := &fakeSnapRepo{
		latest: &store.Snapshot{
			Data: store.SnapshotData{
				Version:  1,
				LessonID: "mixed",
				Instances: map[string]store.InstanceProgress{
					"w1": {PrimitiveType: "flashcards", Complete: true, Submitted: true, Score: 80},
				},
			},
		},
	}

	s, err := New(mixedLesson(), nil, snaps, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Init()

	if s.views[0].restored == nil {
		t.Fatal("expected first widget restored from snapshot")
	}
	if s.selected != 1 {
		t.Fatalf("expected selection to skip restored widget, got %d", s.selected)
	}

	solved, total := s.Progress()
	if total != 3 || solved != 2 {
		t.Fatalf("expected progress 2/3, got %d/%d", solved, total)
	}
}

func TestLessonScreen_SnapshotMismatchedLessonIgnored(t *testing.T) {
	snaps := &fakeSnapRepo{
		latest: &store.Snapshot{
			Data: store.SnapshotData{
				Version:  1,
				LessonID: "other-lesson",
				Instances: map[string]store.InstanceProgress{
					"w1": {Complete: true, Score: 80},
				},
			},
		},
	}

	s, err := New(mixedLesson(), nil, snaps, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.views[0].restored != nil {
		t.Fatal("snapshot for a different lesson must not restore progress")
	}
}
