package primitive

import (
	"math"
	"time"
)

// Metrics carries widget-specific structured measurements for a result.
type Metrics map[string]any

// EvaluationResult is the terminal artifact of a widget instance.
// At most one result is ever submitted per instance unless an explicit
// reset occurs.
type EvaluationResult struct {
	Success     bool
	Score       int // 0-100
	Metrics     Metrics
	StudentWork any // opaque payload for audit/review
	Elapsed     time.Duration
	SubmittedAt time.Time
}

// SubmitFunc is the external submission callback. Fire-and-forget:
// errors are the collaborator's concern.
type SubmitFunc func(result EvaluationResult)

// Pipeline guards evaluation submission: exactly one submit per widget
// instance until ResetAttempt re-arms it. The elapsed-time baseline is
// set when the pipeline is created (widget mount) and on each reset.
type Pipeline struct {
	submit       SubmitFunc
	armedAt      time.Time
	hasSubmitted bool
	result       *EvaluationResult
	now          func() time.Time
}

// NewPipeline creates an armed pipeline. A nil submit callback is
// permitted; submission then only freezes the result.
func NewPipeline(submit SubmitFunc) *Pipeline {
	p := &Pipeline{submit: submit, now: time.Now}
	p.armedAt = p.now()
	return p
}

// Submit freezes the result and invokes the external callback exactly
// once. While a result is held, further calls are rejected without
// firing the callback, until ResetAttempt. Returns whether the
// submission was accepted.
func (p *Pipeline) Submit(success bool, score int, metrics Metrics, studentWork any) bool {
	if p.hasSubmitted {
		return false
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	now := p.now()
	p.result = &EvaluationResult{
		Success:     success,
		Score:       score,
		Metrics:     metrics,
		StudentWork: studentWork,
		Elapsed:     now.Sub(p.armedAt),
		SubmittedAt: now,
	}
	p.hasSubmitted = true

	if p.submit != nil {
		p.submit(*p.result)
	}
	return true
}

// HasSubmitted reports whether a result is currently held.
func (p *Pipeline) HasSubmitted() bool {
	return p.hasSubmitted
}

// Result returns the frozen result, or nil before submission.
func (p *Pipeline) Result() *EvaluationResult {
	if p.result == nil {
		return nil
	}
	r := *p.result
	return &r
}

// ResetAttempt clears the frozen result and re-arms the pipeline with a
// fresh elapsed-time baseline. It does not retroactively un-send
// anything already delivered to the external collaborator.
func (p *Pipeline) ResetAttempt() {
	p.hasSubmitted = false
	p.result = nil
	p.armedAt = p.now()
}

// AggregateScore computes the widget-level score and success from the
// per-challenge records: arithmetic mean of challenge scores rounded to
// the nearest integer; success is score >= 50 unless the widget requires
// every challenge solved.
func AggregateScore(records []AttemptRecord, requireAllCorrect bool) (score int, success bool) {
	if len(records) == 0 {
		return 0, false
	}

	sum := 0
	allCorrect := true
	for _, rec := range records {
		sum += rec.Score()
		if !rec.Correct {
			allCorrect = false
		}
	}

	score = int(math.Round(float64(sum) / float64(len(records))))
	if requireAllCorrect {
		return score, allCorrect
	}
	return score, score >= 50
}
