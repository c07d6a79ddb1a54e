package primitive

import "time"

// AttemptRecord tracks attempts for one challenge. Append-only within the
// challenge's lifetime; cleared only by an explicit widget reset.
type AttemptRecord struct {
	ChallengeID string

	// Attempts is the total number of answers submitted.
	Attempts int

	// Correct is set once, on the first correct answer.
	Correct bool

	// FirstTry is true when the first submitted answer was correct.
	FirstTry bool

	// MaxReached is true when the attempt ceiling was hit without success.
	MaxReached bool

	// TimeToAnswer is wall-clock time from challenge start to the
	// terminal answer (correct or ceiling).
	TimeToAnswer time.Duration
}

// Score derives the per-challenge score from the attempt count:
// solved on attempt 1 scores 100, each extra attempt subtracts
// AttemptPenalty, floored at CorrectFloor while still correct.
// A challenge that hit the ceiling without success scores 0.
func (r AttemptRecord) Score() int {
	if r.MaxReached && !r.Correct {
		return 0
	}
	if !r.Correct {
		return 0
	}
	score := 100 - AttemptPenalty*(r.Attempts-1)
	if score < CorrectFloor {
		score = CorrectFloor
	}
	return score
}

const (
	// AttemptPenalty is subtracted per extra attempt before success.
	AttemptPenalty = 20

	// CorrectFloor is the minimum score for a challenge answered
	// correctly within the ceiling.
	CorrectFloor = 50
)

// AttemptTracker counts attempts per challenge and derives scores.
// It has no side effects beyond its records; callers decide UI
// consequences (reveal answer, allow skip).
type AttemptTracker struct {
	ceiling int
	records map[string]*AttemptRecord
	order   []string
	started map[string]time.Time
	now     func() time.Time
}

// NewAttemptTracker creates a tracker with the given attempt ceiling.
func NewAttemptTracker(ceiling int) *AttemptTracker {
	if ceiling <= 0 {
		ceiling = DefaultAttemptCeiling
	}
	return &AttemptTracker{
		ceiling: ceiling,
		records: make(map[string]*AttemptRecord),
		started: make(map[string]time.Time),
		now:     time.Now,
	}
}

// StartChallenge marks the wall-clock start for a challenge. Repeated
// calls for the same challenge keep the original start time.
func (t *AttemptTracker) StartChallenge(challengeID string) {
	if _, ok := t.started[challengeID]; !ok {
		t.started[challengeID] = t.now()
	}
}

// RecordAttempt increments the attempt count and applies the outcome.
// Correct is latched on the first correct answer; later calls still
// count attempts but cannot unset it. Returns a copy of the record.
func (t *AttemptTracker) RecordAttempt(challengeID string, isCorrect bool) AttemptRecord {
	rec := t.records[challengeID]
	if rec == nil {
		rec = &AttemptRecord{ChallengeID: challengeID}
		t.records[challengeID] = rec
		t.order = append(t.order, challengeID)
	}

	rec.Attempts++

	if isCorrect && !rec.Correct {
		rec.Correct = true
		rec.FirstTry = rec.Attempts == 1
		t.markTerminal(rec)
	}

	if !rec.Correct && rec.Attempts >= t.ceiling {
		rec.MaxReached = true
		t.markTerminal(rec)
	}

	return *rec
}

// markTerminal stamps the time-to-answer once, at the terminal outcome.
func (t *AttemptTracker) markTerminal(rec *AttemptRecord) {
	if rec.TimeToAnswer != 0 {
		return
	}
	if start, ok := t.started[rec.ChallengeID]; ok {
		rec.TimeToAnswer = t.now().Sub(start)
	}
}

// Record returns the record for a challenge, or a zero record if the
// challenge has no attempts yet.
func (t *AttemptTracker) Record(challengeID string) AttemptRecord {
	if rec := t.records[challengeID]; rec != nil {
		return *rec
	}
	return AttemptRecord{ChallengeID: challengeID}
}

// Ceiling returns the attempt ceiling.
func (t *AttemptTracker) Ceiling() int {
	return t.ceiling
}

// Records returns all records in first-attempt order.
func (t *AttemptTracker) Records() []AttemptRecord {
	out := make([]AttemptRecord, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.records[id])
	}
	return out
}

// Reset clears all records and start times.
func (t *AttemptTracker) Reset() {
	t.records = make(map[string]*AttemptRecord)
	t.order = nil
	t.started = make(map[string]time.Time)
}
