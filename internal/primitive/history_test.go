package primitive

import "testing"

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	h := NewHistoryStack()
	h.Push([]int{1}, "set a")
	h.Push([]int{1, 2}, "set b")
	h.Push([]int{1, 2, 3}, "set c")

	got := h.Undo()
	if got == nil {
		t.Fatal("expected undo to return a snapshot")
	}
	if !IntsEqual(got.([]int), []int{1, 2}) {
		t.Errorf("Undo = %v, want [1 2]", got)
	}

	// redo(undo(x)) == x
	got = h.Redo()
	if !IntsEqual(got.([]int), []int{1, 2, 3}) {
		t.Errorf("Redo = %v, want [1 2 3]", got)
	}
}

func TestHistory_BoundariesAreNoOps(t *testing.T) {
	h := NewHistoryStack()
	if h.Undo() != nil {
		t.Error("undo on empty stack should return nil")
	}
	if h.Redo() != nil {
		t.Error("redo on empty stack should return nil")
	}

	h.Push("a", "first")
	if h.Undo() != nil {
		t.Error("undo at start should be a no-op")
	}
	if h.Current() != "a" {
		t.Errorf("Current = %v, want a (no state change)", h.Current())
	}
	if h.Redo() != nil {
		t.Error("redo at tail should be a no-op")
	}
}

func TestHistory_PushTruncatesRedoTail(t *testing.T) {
	h := NewHistoryStack()
	h.Push("a", "")
	h.Push("b", "")
	h.Push("c", "")
	h.Undo() // cursor at b
	h.Push("d", "")

	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3 (c discarded)", h.Len())
	}
	if h.CanRedo() {
		t.Error("redo should be impossible after a fresh push")
	}
	if h.Current() != "d" {
		t.Errorf("Current = %v, want d", h.Current())
	}
	if got := h.Undo(); got != "b" {
		t.Errorf("Undo = %v, want b", got)
	}
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistoryStack()
	h.Push("a", "")
	h.Reset()

	if h.Len() != 0 || h.CanUndo() || h.CanRedo() || h.Current() != nil {
		t.Error("expected an empty stack after reset")
	}
}
