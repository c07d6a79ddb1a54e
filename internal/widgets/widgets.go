// Package widgets implements the interactive primitives a lesson
// manifest can reference. Each widget contributes a correctness
// predicate and an editable state model; the engine mechanics
// (attempts, phases, scoring) are shared.
package widgets

import (
	"fmt"

	"github.com/abhisek/primer/internal/manifest"
	"github.com/abhisek/primer/internal/primitive"
)

// CheckerFor returns the correctness predicate for a widget type.
func CheckerFor(widgetType string) (primitive.Checker, error) {
	switch widgetType {
	case manifest.TypeBalancer:
		return primitive.CheckerFunc(checkBalancer), nil
	case manifest.TypePlaceValue:
		return primitive.CheckerFunc(checkPlaceValue), nil
	case manifest.TypeFlashcards:
		return primitive.CheckerFunc(checkFlashcard), nil
	}
	return nil, fmt.Errorf("unknown widget type: %q", widgetType)
}

// Build assembles the engine machine for one manifest widget. The
// manifest widget ID becomes the instance ID so progress and events
// correlate across sessions.
func Build(w manifest.Widget, submit primitive.SubmitFunc) (*primitive.Machine, error) {
	checker, err := CheckerFor(w.Type)
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", w.ID, err)
	}

	instance := primitive.WidgetInstance{
		InstanceID:    w.ID,
		PrimitiveType: w.Type,
	}
	if instance.InstanceID == "" {
		instance = primitive.NewWidgetInstance(w.Type)
	}

	return primitive.NewMachine(instance, w.PrimitiveConfig(), w.PrimitiveChallenges(), checker, submit), nil
}

// asFloat converts the numeric types JSON decoding and widget state
// can produce.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
