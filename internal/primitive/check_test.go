package primitive

import "testing"

func TestTextAnswersEqual_Integer(t *testing.T) {
	if !TextAnswersEqual("007", "7", AnswerTypeInteger) {
		t.Error("leading zeros should be ignored")
	}
	if TextAnswersEqual("8", "7", AnswerTypeInteger) {
		t.Error("8 should not match 7")
	}
	if TextAnswersEqual("", "7", AnswerTypeInteger) {
		t.Error("empty answer is never correct")
	}
}

func TestTextAnswersEqual_DecimalTolerance(t *testing.T) {
	if !TextAnswersEqual("3.50", "3.5", AnswerTypeDecimal) {
		t.Error("trailing zeros should be ignored")
	}
	if !TextAnswersEqual("0.33335", "0.3334", AnswerTypeDecimal) {
		t.Error("values within 1e-4 should match")
	}
	if TextAnswersEqual("0.34", "0.3334", AnswerTypeDecimal) {
		t.Error("values beyond tolerance should not match")
	}
}

func TestTextAnswersEqual_Fraction(t *testing.T) {
	if !TextAnswersEqual("2/4", "1/2", AnswerTypeFraction) {
		t.Error("equivalent fractions should match")
	}
	if !TextAnswersEqual("-1/2", "1/-2", AnswerTypeFraction) {
		t.Error("sign normalization should match")
	}
	if TextAnswersEqual("1/0", "1/2", AnswerTypeFraction) {
		t.Error("zero denominator should never match")
	}
}

func TestTextAnswersEqual_Text(t *testing.T) {
	if !TextAnswersEqual("  Photosynthesis ", "photosynthesis", AnswerTypeText) {
		t.Error("text comparison should trim and ignore case")
	}
}

func TestIntsEqual_Structural(t *testing.T) {
	if !IntsEqual([]int{2, 1, 2}, []int{2, 1, 2}) {
		t.Error("identical slices should match")
	}
	if IntsEqual([]int{2, 1}, []int{2, 1, 2}) {
		t.Error("length mismatch should not match")
	}
	if IntsEqual([]int{2, 1, 3}, []int{2, 1, 2}) {
		t.Error("structural comparison requires exact equality")
	}
}

func TestRealsEqual_Tolerance(t *testing.T) {
	if !RealsEqual(1.00005, 1.0) {
		t.Error("within 1e-4 should match")
	}
	if RealsEqual(1.001, 1.0) {
		t.Error("beyond 1e-4 should not match")
	}
}
