package manifest

import (
	"time"

	"github.com/abhisek/primer/internal/primitive"
)

// Lesson is a declarative description of a playable lesson: an ordered
// feed of interactive widgets, each with its own challenge sequence.
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Widgets     []Widget `json:"widgets"`
}

// Widget describes one interactive activity in the lesson feed.
type Widget struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`

	AttemptCeiling     int  `json:"attempt_ceiling,omitempty"`
	AutoAdvance        bool `json:"auto_advance,omitempty"`
	AutoAdvanceDelayMs int  `json:"auto_advance_delay_ms,omitempty"`
	RequireAllCorrect  bool `json:"require_all_correct,omitempty"`
	GuidedAvailable    bool `json:"guided_available,omitempty"`

	Challenges []Challenge `json:"challenges"`
}

// Challenge is one task within a widget.
type Challenge struct {
	ID          string `json:"id"`
	Kind        string `json:"kind,omitempty"`
	Instruction string `json:"instruction"`
	Hint        string `json:"hint,omitempty"`
	Expected    any    `json:"expected"`
	Difficulty  int    `json:"difficulty,omitempty"`
}

// Widget types understood by the player.
const (
	TypeBalancer   = "balancer"
	TypePlaceValue = "placevalue"
	TypeFlashcards = "flashcards"
)

// PrimitiveConfig converts the widget's tuning knobs into engine config.
func (w Widget) PrimitiveConfig() primitive.Config {
	cfg := primitive.Config{
		AttemptCeiling:    w.AttemptCeiling,
		AutoAdvance:       w.AutoAdvance,
		RequireAllCorrect: w.RequireAllCorrect,
		GuidedAvailable:   w.GuidedAvailable,
	}
	if w.AutoAdvanceDelayMs > 0 {
		cfg.AutoAdvanceDelay = time.Duration(w.AutoAdvanceDelayMs) * time.Millisecond
	}
	return cfg
}

// PrimitiveChallenges converts the widget's challenge list into engine
// challenges, preserving manifest order.
func (w Widget) PrimitiveChallenges() []primitive.Challenge {
	out := make([]primitive.Challenge, len(w.Challenges))
	for i, c := range w.Challenges {
		out[i] = primitive.Challenge{
			ID:          c.ID,
			Kind:        c.Kind,
			Instruction: c.Instruction,
			Hint:        c.Hint,
			Expected:    c.Expected,
			Difficulty:  c.Difficulty,
		}
	}
	return out
}
