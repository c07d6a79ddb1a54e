package primitive

// HistoryEntry is one snapshot of freeform widget state (coefficient
// arrays, digit columns) with a human-readable edit description.
type HistoryEntry struct {
	Snapshot    any
	Description string
}

// HistoryStack is a linear undo/redo log for freeform edits within a
// single challenge. Advancing to the next challenge clears it; it is
// deliberately decoupled from the phase machine.
//
// Invariant: -1 <= cursor < len(entries). cursor == -1 only when empty.
type HistoryStack struct {
	entries []HistoryEntry
	cursor  int
}

// NewHistoryStack creates an empty stack.
func NewHistoryStack() *HistoryStack {
	return &HistoryStack{cursor: -1}
}

// Push records a new snapshot. If the cursor is not at the tail, all
// entries beyond it are discarded first; there is no branching history.
func (h *HistoryStack) Push(snapshot any, description string) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, HistoryEntry{Snapshot: snapshot, Description: description})
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry and returns the snapshot to restore.
// A no-op returning nil at the start boundary.
func (h *HistoryStack) Undo() any {
	if h.cursor <= 0 {
		return nil
	}
	h.cursor--
	return h.entries[h.cursor].Snapshot
}

// Redo steps forward one entry and returns the snapshot to restore.
// A no-op returning nil at the end boundary.
func (h *HistoryStack) Redo() any {
	if h.cursor >= len(h.entries)-1 {
		return nil
	}
	h.cursor++
	return h.entries[h.cursor].Snapshot
}

// CanUndo reports whether Undo would change state.
func (h *HistoryStack) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would change state.
func (h *HistoryStack) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Current returns the snapshot at the cursor, or nil when empty.
func (h *HistoryStack) Current() any {
	if h.cursor < 0 {
		return nil
	}
	return h.entries[h.cursor].Snapshot
}

// Len returns the number of entries.
func (h *HistoryStack) Len() int {
	return len(h.entries)
}

// Reset clears all entries.
func (h *HistoryStack) Reset() {
	h.entries = nil
	h.cursor = -1
}
