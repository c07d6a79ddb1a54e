// Package focus decides which widget instance the learner is looking
// at and keeps the tutoring channel's context in sync, without reacting
// to every line of scroll.
package focus

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/primer/internal/tutor"
)

// Config tunes the tracker.
type Config struct {
	// Debounce is how long a candidate must stay the winner before a
	// context switch is committed.
	Debounce time.Duration

	// TopExclusion and BottomExclusion define the focus band: the
	// fractions of the viewport excluded at the top and bottom. Only
	// content in the remaining band counts as "in focus", biasing
	// toward what the learner is actively reading rather than content
	// merely scrolled past or not yet reached.
	TopExclusion    float64
	BottomExclusion float64
}

// DefaultConfig returns the standard tuning: 500ms debounce, top 20%
// and bottom 50% of the viewport excluded.
func DefaultConfig() Config {
	return Config{
		Debounce:        500 * time.Millisecond,
		TopExclusion:    0.20,
		BottomExclusion: 0.50,
	}
}

// region is one observed widget extent in feed coordinates.
type region struct {
	instanceID    string
	primitiveType string
	top           int
	height        int
	seq           int // first-encountered order, for tie-breaking
}

// debounceState is the tracker's explicit debounce machine.
type debounceState int

const (
	stateIdle debounceState = iota
	statePending
)

// Tracker owns the lesson view's shared focus state. It watches widget
// extents against the viewport, picks the candidate whose top edge is
// closest to the top of the focus band, and commits a context switch
// only for the last candidate standing for a full debounce window.
//
// Cancellation is a first-class transition: a cancelled timer never
// fires its callback, and nothing is delivered after Close.
type Tracker struct {
	cfg Config
	ch  tutor.Channel

	// onSwitch, when set, observes every committed switch (event log).
	onSwitch func(instanceID, primitiveType string)

	mu       sync.Mutex
	vpTop    int
	vpHeight int
	regions  map[string]*region
	nextSeq  int

	state   debounceState
	pending string
	gen     int
	timer   *time.Timer
	current string
	closed  bool
}

// New creates a tracker bound to a tutoring channel. A nil channel is
// permitted; switches then only feed the onSwitch observer.
func New(ch tutor.Channel, cfg Config) *Tracker {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	return &Tracker{
		cfg:     cfg,
		ch:      ch,
		regions: make(map[string]*region),
	}
}

// OnSwitch registers an observer for committed switches.
func (t *Tracker) OnSwitch(fn func(instanceID, primitiveType string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSwitch = fn
}

// SetViewport updates the visible window (feed coordinates) and
// re-evaluates the winning candidate.
func (t *Tracker) SetViewport(top, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.vpTop = top
	t.vpHeight = height
	t.recompute()
}

// Observe reports a widget's extent in the feed. Called on mount and
// whenever layout shifts; repeat calls update the extent in place.
func (t *Tracker) Observe(instanceID, primitiveType string, top, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	r := t.regions[instanceID]
	if r == nil {
		r = &region{instanceID: instanceID, primitiveType: primitiveType, seq: t.nextSeq}
		t.nextSeq++
		t.regions[instanceID] = r
	}
	r.top = top
	r.height = height
	t.recompute()
}

// Remove stops observing an instance (widget unmount). A pending
// switch to that instance is cancelled.
func (t *Tracker) Remove(instanceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.regions, instanceID)
	if t.current == instanceID {
		t.current = ""
	}
	if t.state == statePending && t.pending == instanceID {
		t.cancelPending()
	}
	if !t.closed {
		t.recompute()
	}
}

// Current returns the committed in-focus instance ID, or "".
func (t *Tracker) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Close cancels any pending timer and stops observing. No switch is
// delivered after Close returns.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.cancelPending()
	t.regions = make(map[string]*region)
}

// cancelPending transitions pending → idle. Caller holds the lock.
func (t *Tracker) cancelPending() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = ""
	t.state = stateIdle
	t.gen++ // invalidate any fire already scheduled
}

// recompute picks the winner and drives the debounce machine.
// Caller holds the lock.
func (t *Tracker) recompute() {
	winner := t.pickWinner()

	switch {
	case winner == nil:
		// Nothing in the band: keep the committed focus, drop any
		// pending candidate.
		if t.state == statePending {
			t.cancelPending()
		}

	case winner.instanceID == t.current:
		// Already focused; a pending switch elsewhere is stale.
		if t.state == statePending {
			t.cancelPending()
		}

	case t.state == statePending && winner.instanceID == t.pending:
		// Same candidate still winning: let its timer run.

	default:
		// New winning candidate: restart the window. Only the last
		// candidate standing for the full debounce triggers a switch.
		t.cancelPending()
		t.state = statePending
		t.pending = winner.instanceID
		gen := t.gen
		t.timer = time.AfterFunc(t.cfg.Debounce, func() { t.fire(gen) })
	}
}

// pickWinner returns the region intersecting the focus band whose top
// edge is closest to the band top, ties broken by first-encountered.
// Caller holds the lock.
func (t *Tracker) pickWinner() *region {
	if t.vpHeight <= 0 {
		return nil
	}
	bandTop := t.vpTop + int(float64(t.vpHeight)*t.cfg.TopExclusion)
	bandBottom := t.vpTop + int(float64(t.vpHeight)*(1-t.cfg.BottomExclusion))
	if bandBottom <= bandTop {
		return nil
	}

	var best *region
	bestDist := 0
	for _, r := range t.regions {
		if r.top >= bandBottom || r.top+r.height <= bandTop {
			continue
		}
		dist := r.top - bandTop
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist || (dist == bestDist && r.seq < best.seq) {
			best = r
			bestDist = dist
		}
	}
	return best
}

// fire commits the pending candidate if its window survived intact.
func (t *Tracker) fire(gen int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || gen != t.gen || t.state != statePending {
		return
	}

	r := t.regions[t.pending]
	t.current = t.pending
	t.pending = ""
	t.state = stateIdle
	t.timer = nil

	if r == nil {
		return
	}

	if t.onSwitch != nil {
		t.onSwitch(r.instanceID, r.primitiveType)
	}

	// Drop silently when the tutoring channel has no active lesson
	// session. Expected steady state, not an error; no queueing.
	if t.ch == nil || !t.ch.Connected() || t.ch.SessionMode() != tutor.SessionModeLesson {
		return
	}

	// Channel implementations keep SwitchContext cheap (local context
	// update); delivery under the lock is what guarantees nothing
	// lands after Close.
	_ = t.ch.SwitchContext(context.Background(), tutor.ContextSwitch{
		PrimitiveType: r.primitiveType,
		InstanceID:    r.instanceID,
	})
}
