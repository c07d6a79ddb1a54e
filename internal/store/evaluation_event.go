package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetInstanceID(data.InstanceID).
		SetPrimitiveType(data.PrimitiveType).
		SetSuccess(data.Success).
		SetScore(data.Score).
		SetElapsedMs(data.ElapsedMs)

	if len(data.Metrics) > 0 {
		builder = builder.SetMetrics(data.Metrics)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) EvaluationCount(ctx context.Context) (int, error) {
	n, err := r.client.EvaluationEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return n, nil
}
