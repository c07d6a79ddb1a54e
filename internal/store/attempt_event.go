package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/primer/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetInstanceID(data.InstanceID).
		SetPrimitiveType(data.PrimitiveType).
		SetChallengeID(data.ChallengeID).
		SetAttempt(data.Attempt).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) InstanceAccuracy(ctx context.Context, instanceID string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.InstanceID(instanceID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query instance accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) AttemptStats(ctx context.Context) ([]InstanceStats, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt stats: %w", err)
	}

	byInstance := make(map[string]*InstanceStats)
	for _, e := range events {
		st, ok := byInstance[e.InstanceID]
		if !ok {
			st = &InstanceStats{InstanceID: e.InstanceID, PrimitiveType: e.PrimitiveType}
			byInstance[e.InstanceID] = st
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
	}

	rows := make([]InstanceStats, 0, len(byInstance))
	for _, st := range byInstance {
		rows = append(rows, *st)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Attempts != rows[j].Attempts {
			return rows[i].Attempts > rows[j].Attempts
		}
		return rows[i].InstanceID < rows[j].InstanceID
	})
	return rows, nil
}
