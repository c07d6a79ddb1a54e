package primitive

import "testing"

func TestRecordAttempt_FirstTry(t *testing.T) {
	tr := NewAttemptTracker(3)
	rec := tr.RecordAttempt("c1", true)

	if rec.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", rec.Attempts)
	}
	if !rec.Correct {
		t.Error("expected Correct")
	}
	if !rec.FirstTry {
		t.Error("expected FirstTry")
	}
	if got := rec.Score(); got != 100 {
		t.Errorf("Score = %d, want 100", got)
	}
}

func TestRecordAttempt_CorrectLatches(t *testing.T) {
	tr := NewAttemptTracker(5)
	tr.RecordAttempt("c1", false)
	rec := tr.RecordAttempt("c1", true)

	if rec.FirstTry {
		t.Error("FirstTry should be false after a wrong attempt")
	}
	if !rec.Correct {
		t.Error("expected Correct")
	}

	// A later call still counts attempts but cannot unset Correct.
	rec = tr.RecordAttempt("c1", false)
	if !rec.Correct {
		t.Error("Correct must stay latched")
	}
	if rec.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", rec.Attempts)
	}
}

func TestScore_PenaltyAndFloor(t *testing.T) {
	cases := []struct {
		attempts int
		want     int
	}{
		{1, 100},
		{2, 80},
		{3, 60},
		{4, 50}, // floored
		{9, 50},
	}
	for _, tc := range cases {
		rec := AttemptRecord{Attempts: tc.attempts, Correct: true}
		if got := rec.Score(); got != tc.want {
			t.Errorf("Score(attempts=%d) = %d, want %d", tc.attempts, got, tc.want)
		}
	}
}

func TestScore_MonotonicInAttempts(t *testing.T) {
	prev := 101
	for attempts := 1; attempts <= 10; attempts++ {
		rec := AttemptRecord{Attempts: attempts, Correct: true}
		score := rec.Score()
		if score > prev {
			t.Errorf("score increased from %d to %d at attempts=%d", prev, score, attempts)
		}
		prev = score
	}
}

func TestScore_MaxReached(t *testing.T) {
	tr := NewAttemptTracker(2)
	tr.RecordAttempt("c1", false)
	rec := tr.RecordAttempt("c1", false)

	if !rec.MaxReached {
		t.Error("expected MaxReached at ceiling")
	}
	if got := rec.Score(); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestReset_ClearsRecords(t *testing.T) {
	tr := NewAttemptTracker(3)
	tr.RecordAttempt("c1", true)
	tr.Reset()

	if len(tr.Records()) != 0 {
		t.Errorf("Records after reset = %d, want 0", len(tr.Records()))
	}
	rec := tr.RecordAttempt("c1", true)
	if !rec.FirstTry {
		t.Error("expected a fresh record after reset")
	}
}
