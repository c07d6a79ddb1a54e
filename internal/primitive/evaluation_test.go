package primitive

import "testing"

func TestSubmit_Idempotent(t *testing.T) {
	calls := 0
	p := NewPipeline(func(EvaluationResult) { calls++ })

	if !p.Submit(true, 90, nil, nil) {
		t.Fatal("first submit should be accepted")
	}
	if p.Submit(true, 90, nil, nil) {
		t.Error("second submit should be rejected")
	}
	if calls != 1 {
		t.Errorf("callback fired %d times, want exactly 1", calls)
	}
}

func TestSubmit_AfterResetAttempt(t *testing.T) {
	calls := 0
	p := NewPipeline(func(EvaluationResult) { calls++ })

	p.Submit(false, 40, nil, nil)
	p.ResetAttempt()

	if p.HasSubmitted() {
		t.Error("HasSubmitted should be false after reset")
	}
	if p.Result() != nil {
		t.Error("Result should be cleared after reset")
	}

	if !p.Submit(true, 100, nil, nil) {
		t.Error("submit after reset should be accepted")
	}
	if calls != 2 {
		t.Errorf("callback fired %d times, want 2", calls)
	}
	if res := p.Result(); res == nil || res.Score != 100 {
		t.Errorf("Result = %+v, want fresh score 100", res)
	}
}

func TestSubmit_ClampsScore(t *testing.T) {
	p := NewPipeline(nil)
	p.Submit(true, 140, nil, nil)
	if got := p.Result().Score; got != 100 {
		t.Errorf("Score = %d, want clamped 100", got)
	}
}

func TestAggregateScore_MeanAndRounding(t *testing.T) {
	// 100 + 60 + 0 → round(160/3) = 53, success under the >=50 rule.
	records := []AttemptRecord{
		{Attempts: 1, Correct: true},
		{Attempts: 3, Correct: true},
		{Attempts: 3, MaxReached: true},
	}

	score, success := AggregateScore(records, false)
	if score != 53 {
		t.Errorf("score = %d, want 53", score)
	}
	if !success {
		t.Error("expected success with score 53 >= 50")
	}
}

func TestAggregateScore_RequireAllCorrect(t *testing.T) {
	records := []AttemptRecord{
		{Attempts: 1, Correct: true},
		{Attempts: 3, MaxReached: true},
	}

	_, success := AggregateScore(records, true)
	if success {
		t.Error("expected failure: not all challenges correct")
	}

	records[1] = AttemptRecord{Attempts: 2, Correct: true}
	_, success = AggregateScore(records, true)
	if !success {
		t.Error("expected success: all challenges correct")
	}
}

func TestAggregateScore_Empty(t *testing.T) {
	score, success := AggregateScore(nil, false)
	if score != 0 || success {
		t.Errorf("empty records: score=%d success=%v, want 0/false", score, success)
	}
}
