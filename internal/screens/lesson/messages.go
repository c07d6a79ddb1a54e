package lesson

import "time"

// autoAdvanceMsg fires after the auto-advance delay for one widget.
// Gen invalidates timers from before a reset or manual advance.
type autoAdvanceMsg struct {
	widget int
	gen    int
}

// tutorTickMsg polls the tutoring session for a pending comment.
type tutorTickMsg time.Time
