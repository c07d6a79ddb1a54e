package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTutorMessage(ctx context.Context, data TutorMessageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TutorMessageEvent.Create().
		SetSequence(seqNum).
		SetInstanceID(data.InstanceID).
		SetCategory(data.Category).
		SetText(data.Text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save tutor message event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendFocusSwitch(ctx context.Context, data FocusEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FocusEvent.Create().
		SetSequence(seqNum).
		SetInstanceID(data.InstanceID).
		SetPrimitiveType(data.PrimitiveType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save focus event: %w", err)
	}
	return nil
}
