package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAttemptAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, correct := range []bool{true, true, false, true} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			InstanceID:    "w1",
			PrimitiveType: "balancer",
			ChallengeID:   "c1",
			Attempt:       1,
			Correct:       correct,
			TimeMs:        1200,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	acc, err := repo.InstanceAccuracy(ctx, "w1")
	if err != nil {
		t.Fatalf("instance accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// Unknown instance: no attempts, accuracy zero.
	acc, err = repo.InstanceAccuracy(ctx, "missing")
	if err != nil {
		t.Fatalf("instance accuracy (missing): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}
}

func TestAppendEvaluationAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendEvaluation(ctx, EvaluationEventData{
		InstanceID:    "w1",
		PrimitiveType: "placevalue",
		Success:       true,
		Score:         87,
		Metrics:       map[string]any{"challenges": 3},
		ElapsedMs:     42000,
	})
	if err != nil {
		t.Fatalf("append evaluation: %v", err)
	}

	n, err := repo.EvaluationCount(ctx)
	if err != nil {
		t.Fatalf("evaluation count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  7,
		Timestamp: now,
		Data: SnapshotData{
			Version:  1,
			LessonID: "intro",
			Instances: map[string]InstanceProgress{
				"w1": {PrimitiveType: "balancer", ChallengeIndex: 2, Submitted: true, Score: 80},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.LessonID != "intro" {
		t.Errorf("LessonID = %q, want intro", snap.Data.LessonID)
	}
	if got := snap.Data.Instances["w1"]; got.ChallengeIndex != 2 || got.Score != 80 {
		t.Errorf("instance progress = %+v", got)
	}
}

func TestSequenceIsGloballyMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{InstanceID: "w1", PrimitiveType: "balancer", ChallengeID: "c1", Attempt: 1, Correct: false},
		{InstanceID: "w1", PrimitiveType: "balancer", ChallengeID: "c1", Attempt: 2, Correct: true},
		{InstanceID: "w2", PrimitiveType: "flashcards", ChallengeID: "f1", Attempt: 1, Correct: true},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	rows, err := repo.AttemptStats(ctx)
	if err != nil {
		t.Fatalf("attempt stats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	// Most attempts first.
	if rows[0].InstanceID != "w1" || rows[0].Attempts != 2 || rows[0].Correct != 1 {
		t.Errorf("w1 stats = %+v", rows[0])
	}
	if rows[1].InstanceID != "w2" || rows[1].Attempts != 1 || rows[1].Correct != 1 {
		t.Errorf("w2 stats = %+v", rows[1])
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-1", Purpose: "tutor-comment", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true, RequestBody: "req-a", ResponseBody: "resp-a"},
		{Provider: "mock", Model: "mock-1", Purpose: "tutor-comment", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "mock-2", Purpose: "context-switch", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "context-switch" {
		t.Errorf("first record purpose = %q, want context-switch", records[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, records[1].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.Purpose != "tutor-comment" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose name: context-switch, tutor-comment.
	tc := byPurpose[1]
	if tc.Purpose != "tutor-comment" || tc.Calls != 2 || tc.InputTokens != 220 || tc.OutputTokens != 100 || tc.AvgLatencyMs != 300 {
		t.Errorf("tutor-comment usage = %+v", tc)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "mock-1" || byModel[0].Calls != 2 {
		t.Errorf("mock-1 usage = %+v", byModel[0])
	}
}
