package primitive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RealTolerance is the uniform tolerance for real-valued comparisons,
// absorbing floating-point rounding from derived quantities. Discrete
// and structural comparisons require exact equality.
const RealTolerance = 1e-4

// Checker is the widget-specific correctness predicate. A predicate
// that cannot evaluate its inputs must return an error; the machine
// degrades that to "incorrect" rather than crashing.
type Checker interface {
	Check(ch Challenge, candidate any) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ch Challenge, candidate any) (bool, error)

func (f CheckerFunc) Check(ch Challenge, candidate any) (bool, error) {
	return f(ch, candidate)
}

// RealsEqual compares two reals within RealTolerance.
func RealsEqual(a, b float64) bool {
	return math.Abs(a-b) <= RealTolerance
}

// IntsEqual compares two int slices for exact structural equality.
func IntsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AnswerType selects the normalization applied to free-text answers.
type AnswerType string

const (
	AnswerTypeText     AnswerType = "text"
	AnswerTypeInteger  AnswerType = "integer"
	AnswerTypeDecimal  AnswerType = "decimal"
	AnswerTypeFraction AnswerType = "fraction"
)

// TextAnswersEqual compares two free-text answers after normalization.
//
// Normalization rules:
//   - Whitespace is trimmed; comparison is case-insensitive
//   - Decimals compare within RealTolerance ("3.50" matches "3.5")
//   - Integers ignore leading zeros ("007" matches "7")
//   - Fractions compare in lowest terms ("2/4" matches "1/2")
func TextAnswersEqual(candidate, expected string, at AnswerType) bool {
	candidate = strings.TrimSpace(candidate)
	expected = strings.TrimSpace(expected)
	if candidate == "" {
		return false
	}

	if at == AnswerTypeDecimal {
		cf, err1 := strconv.ParseFloat(candidate, 64)
		ef, err2 := strconv.ParseFloat(expected, 64)
		if err1 != nil || err2 != nil {
			return false
		}
		return RealsEqual(cf, ef)
	}

	nc, err := normalizeAnswer(candidate, at)
	if err != nil {
		return false
	}
	ne, err := normalizeAnswer(expected, at)
	if err != nil {
		return false
	}
	return strings.EqualFold(nc, ne)
}

// normalizeAnswer canonicalizes an answer string for comparison.
func normalizeAnswer(answer string, at AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch at {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeFraction:
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(absInt64(num), den)
		return fmt.Sprintf("%d/%d", num/g, den/g), nil

	default:
		return answer, nil
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of non-negative a and b.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
