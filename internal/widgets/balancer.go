package widgets

import (
	"fmt"
	"sort"

	"github.com/abhisek/primer/internal/primitive"
)

// BalancerState holds the learner's element counts for an equation
// balancing challenge. Counts never go below zero.
type BalancerState struct {
	Counts map[string]int
}

// NewBalancerState creates a zeroed state for the elements named by
// the challenge's expected counts.
func NewBalancerState(ch primitive.Challenge) (*BalancerState, error) {
	expected, err := expectedCounts(ch)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(expected))
	for el := range expected {
		counts[el] = 0
	}
	return &BalancerState{Counts: counts}, nil
}

// Elements returns the element names in stable display order.
func (s *BalancerState) Elements() []string {
	els := make([]string, 0, len(s.Counts))
	for el := range s.Counts {
		els = append(els, el)
	}
	sort.Strings(els)
	return els
}

// Adjust changes one element's count, clamping at zero. Unknown
// elements are ignored.
func (s *BalancerState) Adjust(element string, delta int) {
	if _, ok := s.Counts[element]; !ok {
		return
	}
	n := s.Counts[element] + delta
	if n < 0 {
		n = 0
	}
	s.Counts[element] = n
}

// Snapshot returns a copy suitable for the history stack.
func (s *BalancerState) Snapshot() map[string]int {
	out := make(map[string]int, len(s.Counts))
	for el, n := range s.Counts {
		out[el] = n
	}
	return out
}

// Restore replaces the state from a history snapshot.
func (s *BalancerState) Restore(snapshot any) {
	counts, ok := snapshot.(map[string]int)
	if !ok {
		return
	}
	s.Counts = make(map[string]int, len(counts))
	for el, n := range counts {
		s.Counts[el] = n
	}
}

// UnresolvedElements lists elements whose count still differs from the
// expected answer. Guided mode narrows to the first of these.
func (s *BalancerState) UnresolvedElements(ch primitive.Challenge) []string {
	expected, err := expectedCounts(ch)
	if err != nil {
		return nil
	}
	var out []string
	for _, el := range s.Elements() {
		if s.Counts[el] != expected[el] {
			out = append(out, el)
		}
	}
	return out
}

// checkBalancer requires every element's count to match exactly.
// Discrete comparison, no tolerance.
func checkBalancer(ch primitive.Challenge, candidate any) (bool, error) {
	expected, err := expectedCounts(ch)
	if err != nil {
		return false, err
	}

	counts, err := candidateCounts(candidate)
	if err != nil {
		return false, err
	}

	if len(counts) != len(expected) {
		return false, nil
	}
	for el, want := range expected {
		got, ok := counts[el]
		if !ok || got != want {
			return false, nil
		}
	}
	return true, nil
}

// expectedCounts decodes the challenge's expected element counts.
// JSON decoding yields map[string]any with float64 values.
func expectedCounts(ch primitive.Challenge) (map[string]int, error) {
	switch m := ch.Expected.(type) {
	case map[string]int:
		return m, nil
	case map[string]any:
		out := make(map[string]int, len(m))
		for el, v := range m {
			f, ok := asFloat(v)
			if !ok || f != float64(int(f)) {
				return nil, fmt.Errorf("challenge %q: element %q count is not an integer", ch.ID, el)
			}
			out[el] = int(f)
		}
		return out, nil
	}
	return nil, fmt.Errorf("challenge %q: expected element counts, got %T", ch.ID, ch.Expected)
}

func candidateCounts(candidate any) (map[string]int, error) {
	switch c := candidate.(type) {
	case map[string]int:
		return c, nil
	case *BalancerState:
		if c == nil {
			return nil, fmt.Errorf("nil balancer state")
		}
		return c.Counts, nil
	}
	return nil, fmt.Errorf("balancer candidate must be element counts, got %T", candidate)
}
