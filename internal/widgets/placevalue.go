package widgets

import (
	"fmt"

	"github.com/abhisek/primer/internal/primitive"
)

// PlaceValueState holds the learner's digit-column decomposition.
// Columns are ordered highest place first, matching the challenge.
type PlaceValueState struct {
	Columns []int
}

// NewPlaceValueState creates a zeroed state sized to the challenge.
func NewPlaceValueState(ch primitive.Challenge) (*PlaceValueState, error) {
	expected, err := expectedColumns(ch)
	if err != nil {
		return nil, err
	}
	return &PlaceValueState{Columns: make([]int, len(expected))}, nil
}

// Set assigns one column's value. Out-of-range indexes and negative
// values are ignored.
func (s *PlaceValueState) Set(index, value int) {
	if index < 0 || index >= len(s.Columns) || value < 0 {
		return
	}
	s.Columns[index] = value
}

// Sum returns the total the columns currently represent.
func (s *PlaceValueState) Sum() int {
	total := 0
	for _, v := range s.Columns {
		total += v
	}
	return total
}

// Snapshot returns a copy suitable for the history stack.
func (s *PlaceValueState) Snapshot() []int {
	out := make([]int, len(s.Columns))
	copy(out, s.Columns)
	return out
}

// Restore replaces the state from a history snapshot.
func (s *PlaceValueState) Restore(snapshot any) {
	cols, ok := snapshot.([]int)
	if !ok {
		return
	}
	s.Columns = make([]int, len(cols))
	copy(s.Columns, cols)
}

// checkPlaceValue requires every column to match exactly, in order.
func checkPlaceValue(ch primitive.Challenge, candidate any) (bool, error) {
	expected, err := expectedColumns(ch)
	if err != nil {
		return false, err
	}

	cols, err := candidateColumns(candidate)
	if err != nil {
		return false, err
	}

	return primitive.IntsEqual(cols, expected), nil
}

// expectedColumns decodes the challenge's expected decomposition.
// JSON decoding yields []any with float64 values.
func expectedColumns(ch primitive.Challenge) ([]int, error) {
	switch v := ch.Expected.(type) {
	case []int:
		return v, nil
	case []any:
		out := make([]int, len(v))
		for i, e := range v {
			f, ok := asFloat(e)
			if !ok || f != float64(int(f)) {
				return nil, fmt.Errorf("challenge %q: column %d is not an integer", ch.ID, i)
			}
			out[i] = int(f)
		}
		return out, nil
	}
	return nil, fmt.Errorf("challenge %q: expected digit columns, got %T", ch.ID, ch.Expected)
}

func candidateColumns(candidate any) ([]int, error) {
	switch c := candidate.(type) {
	case []int:
		return c, nil
	case *PlaceValueState:
		if c == nil {
			return nil, fmt.Errorf("nil placevalue state")
		}
		return c.Columns, nil
	}
	return nil, fmt.Errorf("placevalue candidate must be digit columns, got %T", candidate)
}
