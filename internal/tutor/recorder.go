package tutor

import (
	"context"
	"sync"
)

// Recorder is a deterministic Channel for testing. It records every
// message and context switch and reports a configurable mode.
type Recorder struct {
	mu        sync.Mutex
	Mode      string
	Offline   bool
	SendErr   error
	messages  []RecordedMessage
	switches  []ContextSwitch
}

// RecordedMessage is one captured SendMessage call.
type RecordedMessage struct {
	Text   string
	Silent bool
}

// NewRecorder creates a Recorder in lesson mode.
func NewRecorder() *Recorder {
	return &Recorder{Mode: SessionModeLesson}
}

func (r *Recorder) SendMessage(_ context.Context, text string, silent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SendErr != nil {
		return r.SendErr
	}
	r.messages = append(r.messages, RecordedMessage{Text: text, Silent: silent})
	return nil
}

func (r *Recorder) SwitchContext(_ context.Context, cs ContextSwitch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.switches = append(r.switches, cs)
	return nil
}

func (r *Recorder) SessionMode() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Mode
}

func (r *Recorder) Connected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.Offline
}

// Messages returns a copy of the captured messages.
func (r *Recorder) Messages() []RecordedMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

// Switches returns a copy of the captured context switches.
func (r *Recorder) Switches() []ContextSwitch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ContextSwitch, len(r.switches))
	copy(out, r.switches)
	return out
}
