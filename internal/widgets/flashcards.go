package widgets

import (
	"fmt"
	"strconv"

	"github.com/abhisek/primer/internal/primitive"
)

// checkFlashcard compares a typed answer against the expected one.
// The challenge's Kind selects the normalization: integer, decimal,
// fraction, or plain text (the default).
func checkFlashcard(ch primitive.Challenge, candidate any) (bool, error) {
	expected, err := expectedText(ch)
	if err != nil {
		return false, err
	}

	text, ok := candidate.(string)
	if !ok {
		return false, fmt.Errorf("flashcard candidate must be a string, got %T", candidate)
	}

	return primitive.TextAnswersEqual(text, expected, answerType(ch.Kind)), nil
}

func answerType(kind string) primitive.AnswerType {
	switch primitive.AnswerType(kind) {
	case primitive.AnswerTypeInteger, primitive.AnswerTypeDecimal, primitive.AnswerTypeFraction:
		return primitive.AnswerType(kind)
	}
	return primitive.AnswerTypeText
}

// expectedText decodes the expected answer. Manifests may use a bare
// number for numeric cards; it is formatted before comparison.
func expectedText(ch primitive.Challenge) (string, error) {
	switch v := ch.Expected.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	}
	return "", fmt.Errorf("challenge %q: expected answer text, got %T", ch.ID, ch.Expected)
}
