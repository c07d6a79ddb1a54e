package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/primer/ent"
	"github.com/abhisek/primer/ent/snapshot"
)

// snapshotRepo persists lesson progress snapshots through ent.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	var payload map[string]any
	if err := jsonRoundTrip(snap.Data, &payload); err != nil {
		return fmt.Errorf("encode snapshot data: %w", err)
	}

	_, err := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot, or nil when none exist.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := jsonRoundTrip(row.Data, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

// Prune deletes everything older than the keep most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The cutoff is the timestamp of the snapshot just past the keep
	// window; nothing to do when the table is smaller than that.
	past, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(past) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(past[0].Timestamp)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// jsonRoundTrip copies src into dst through JSON, bridging typed
// snapshot data and ent's generic JSON column.
func jsonRoundTrip(src any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
