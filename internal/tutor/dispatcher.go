package tutor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/primer/internal/primitive"
)

// dispatchTimeout bounds a single fire-and-forget delivery.
const dispatchTimeout = 10 * time.Second

// Dispatcher translates machine transitions into tagged, silent
// messages on the tutoring channel. Dispatch never blocks or gates a
// state transition; delivery failures are swallowed, since tutoring
// commentary is an enhancement, not a correctness requirement.
//
// It implements primitive.EventSink; register it on each machine.
type Dispatcher struct {
	ch Channel

	mu        sync.Mutex
	startSent map[string]bool // one-shot activity-start per instance
	wg        sync.WaitGroup
}

// NewDispatcher creates a dispatcher for the given channel.
func NewDispatcher(ch Channel) *Dispatcher {
	return &Dispatcher{ch: ch, startSent: make(map[string]bool)}
}

// HandleEvent formats and delivers one machine event.
func (d *Dispatcher) HandleEvent(ev primitive.Event) {
	if d.ch == nil || !d.ch.Connected() || d.ch.SessionMode() != SessionModeLesson {
		return
	}

	if ev.Kind == primitive.EventActivityStart {
		d.mu.Lock()
		sent := d.startSent[ev.Widget.InstanceID]
		d.startSent[ev.Widget.InstanceID] = true
		d.mu.Unlock()
		if sent {
			return
		}
	}

	text := formatEvent(ev)
	if text == "" {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		// Best-effort: a failed delivery is steady-state, not an error.
		_ = d.ch.SendMessage(ctx, text, true)
	}()
}

// Wait blocks until in-flight deliveries finish. Test helper.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// formatEvent builds the tagged message for one event: a short
// machine-readable category token followed by a natural-language
// payload. Answer messages carry the attempt number and instruction
// context but never the expected answer, so the tutor can phrase a
// hint without revealing it.
func formatEvent(ev primitive.Event) string {
	switch ev.Kind {
	case primitive.EventActivityStart:
		return fmt.Sprintf("[activity-start] The learner opened a %s activity%s.",
			ev.Widget.PrimitiveType, challengeContext(ev.Challenge))

	case primitive.EventAnswer:
		if ev.Correct {
			return fmt.Sprintf("[answer-correct] The learner answered correctly on attempt %d%s.",
				ev.Attempt, challengeContext(ev.Challenge))
		}
		return fmt.Sprintf("[answer-incorrect] The learner answered incorrectly on attempt %d%s. Offer encouragement or a nudge, but do not reveal the answer.",
			ev.Attempt, challengeContext(ev.Challenge))

	case primitive.EventPhaseAdvance:
		return fmt.Sprintf("[phase-advance] The learner moved from challenge %d to challenge %d%s.",
			ev.FromIndex+1, ev.ToIndex+1, challengeContext(ev.Challenge))

	case primitive.EventGuidedEntered:
		return fmt.Sprintf("[guided-mode] The learner entered guided mode, focusing on %q.", ev.Dimension)

	case primitive.EventCompleted:
		if ev.Result == nil {
			return fmt.Sprintf("[activity-complete] The learner finished the %s activity.", ev.Widget.PrimitiveType)
		}
		verdict := "did not pass"
		if ev.Result.Success {
			verdict = "passed"
		}
		return fmt.Sprintf("[activity-complete] The learner finished the %s activity with a score of %d and %s.",
			ev.Widget.PrimitiveType, ev.Result.Score, verdict)
	}
	return ""
}

func challengeContext(ch *primitive.Challenge) string {
	if ch == nil || ch.Instruction == "" {
		return ""
	}
	return fmt.Sprintf(" (task: %q)", ch.Instruction)
}
