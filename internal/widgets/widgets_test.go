package widgets

import (
	"testing"

	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/primitive"
)

func balancerChallenge() primitive.Challenge {
	return primitive.Challenge{
		ID:          "water",
		Kind:        "elements",
		Instruction: "Balance H2 + O2 -> H2O.",
		Expected:    map[string]any{"H": 4.0, "O": 2.0},
	}
}

func TestBalancer_ExactMatch(t *testing.T) {
	ch := balancerChallenge()

	ok, err := checkBalancer(ch, map[string]int{"H": 4, "O": 2})
	if err != nil || !ok {
		t.Fatalf("expected correct, got ok=%v err=%v", ok, err)
	}

	ok, err = checkBalancer(ch, map[string]int{"H": 4, "O": 3})
	if err != nil || ok {
		t.Fatalf("expected incorrect, got ok=%v err=%v", ok, err)
	}

	// Missing element is incorrect, not an error.
	ok, err = checkBalancer(ch, map[string]int{"H": 4})
	if err != nil || ok {
		t.Fatalf("expected incorrect for missing element, got ok=%v err=%v", ok, err)
	}
}

func TestBalancer_BadInputsError(t *testing.T) {
	ch := balancerChallenge()

	if _, err := checkBalancer(ch, "not counts"); err == nil {
		t.Fatal("expected error for non-map candidate")
	}

	bad := primitive.Challenge{ID: "x", Expected: "oops"}
	if _, err := checkBalancer(bad, map[string]int{"H": 1}); err == nil {
		t.Fatal("expected error for malformed expected value")
	}
}

func TestBalancerState_AdjustAndResolve(t *testing.T) {
	ch := balancerChallenge()
	state, err := NewBalancerState(ch)
	if err != nil {
		t.Fatal(err)
	}

	if got := state.Elements(); len(got) != 2 || got[0] != "H" || got[1] != "O" {
		t.Fatalf("unexpected elements: %v", got)
	}

	state.Adjust("H", -1) // clamped at zero
	if state.Counts["H"] != 0 {
		t.Fatalf("expected clamp at 0, got %d", state.Counts["H"])
	}

	state.Adjust("H", 4)
	state.Adjust("O", 2)
	if unresolved := state.UnresolvedElements(ch); len(unresolved) != 0 {
		t.Fatalf("expected all resolved, got %v", unresolved)
	}

	ok, err := checkBalancer(ch, state)
	if err != nil || !ok {
		t.Fatalf("expected state to check correct, got ok=%v err=%v", ok, err)
	}
}

func TestBalancerState_SnapshotRoundtrip(t *testing.T) {
	ch := balancerChallenge()
	state, _ := NewBalancerState(ch)
	state.Adjust("H", 2)

	snap := state.Snapshot()
	state.Adjust("H", 2)
	if state.Counts["H"] != 4 {
		t.Fatalf("expected 4, got %d", state.Counts["H"])
	}

	state.Restore(snap)
	if state.Counts["H"] != 2 {
		t.Fatalf("expected restore to 2, got %d", state.Counts["H"])
	}
}

func placeValueChallenge() primitive.Challenge {
	return primitive.Challenge{
		ID:          "pv-347",
		Instruction: "Break 347 into place values.",
		Expected:    []any{300.0, 40.0, 7.0},
	}
}

func TestPlaceValue_ColumnsMustMatchInOrder(t *testing.T) {
	ch := placeValueChallenge()

	ok, err := checkPlaceValue(ch, []int{300, 40, 7})
	if err != nil || !ok {
		t.Fatalf("expected correct, got ok=%v err=%v", ok, err)
	}

	// Same sum, wrong columns.
	ok, err = checkPlaceValue(ch, []int{340, 0, 7})
	if err != nil || ok {
		t.Fatalf("expected incorrect, got ok=%v err=%v", ok, err)
	}

	ok, err = checkPlaceValue(ch, []int{300, 40})
	if err != nil || ok {
		t.Fatalf("expected incorrect for short answer, got ok=%v err=%v", ok, err)
	}
}

func TestPlaceValueState_EditAndSnapshot(t *testing.T) {
	ch := placeValueChallenge()
	state, err := NewPlaceValueState(ch)
	if err != nil {
		t.Fatal(err)
	}

	state.Set(0, 300)
	state.Set(1, 40)
	state.Set(5, 99) // out of range, ignored
	state.Set(2, -1) // negative, ignored

	if state.Sum() != 340 {
		t.Fatalf("expected sum 340, got %d", state.Sum())
	}

	snap := state.Snapshot()
	state.Set(2, 7)

	ok, err := checkPlaceValue(ch, state)
	if err != nil || !ok {
		t.Fatalf("expected correct, got ok=%v err=%v", ok, err)
	}

	state.Restore(snap)
	if state.Columns[2] != 0 {
		t.Fatalf("expected restore to clear ones column, got %d", state.Columns[2])
	}
}

func TestFlashcard_AnswerTypes(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		expected  any
		candidate string
		want      bool
	}{
		{"text case-insensitive", "text", "Paris", "  paris ", true},
		{"text mismatch", "text", "Paris", "London", false},
		{"integer leading zeros", "integer", "7", "007", true},
		{"decimal tolerance", "decimal", "3.5", "3.50", true},
		{"fraction lowest terms", "fraction", "3/4", "6/8", true},
		{"fraction mismatch", "fraction", "3/4", "2/4", false},
		{"numeric expected formatted", "integer", 5.0, "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := primitive.Challenge{ID: "card", Kind: tt.kind, Expected: tt.expected}
			ok, err := checkFlashcard(ch, tt.candidate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, ok)
			}
		})
	}
}

func TestFlashcard_BadInputsError(t *testing.T) {
	ch := primitive.Challenge{ID: "card", Kind: "text", Expected: "yes"}
	if _, err := checkFlashcard(ch, 42); err == nil {
		t.Fatal("expected error for non-string candidate")
	}

	bad := primitive.Challenge{ID: "card", Kind: "text", Expected: []any{}}
	if _, err := checkFlashcard(bad, "yes"); err == nil {
		t.Fatal("expected error for malformed expected value")
	}
}

func TestBuild_WiresMachineFromManifest(t *testing.T) {
	w := manifest.Widget{
		ID:    "w1",
		Type:  manifest.TypeFlashcards,
		Title: "Cards",
		Challenges: []manifest.Challenge{
			{ID: "c1", Kind: "integer", Instruction: "What is 2+3?", Expected: "5"},
		},
	}

	var submitted bool
	machine, err := Build(w, func(primitive.EvaluationResult) { submitted = true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if machine.Widget().InstanceID != "w1" {
		t.Fatalf("expected manifest id as instance id, got %q", machine.Widget().InstanceID)
	}

	machine.Begin()
	outcome := machine.CheckAnswer("5")
	if !outcome.Correct {
		t.Fatal("expected correct answer")
	}
	machine.Advance()
	if !submitted {
		t.Fatal("expected evaluation submission on completion")
	}
}

func TestBuild_UnknownTypeFails(t *testing.T) {
	w := manifest.Widget{ID: "w1", Type: "teleporter", Title: "Nope"}
	if _, err := Build(w, nil); err == nil {
		t.Fatal("expected error for unknown widget type")
	}
}
