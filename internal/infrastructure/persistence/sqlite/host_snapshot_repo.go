package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

type hostSnapshotRepo struct {
	db *sql.DB
}

// NewHostSnapshotRepository creates a new host snapshot repository.
func NewHostSnapshotRepository(db *sql.DB) repository.HostSnapshotRepository {
	return &hostSnapshotRepo{db: db}
}

// Save stores the snapshot as a single JSON document.
func (r *hostSnapshotRepo) Save(ctx context.Context, snap *entity.HostSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("host snapshot cannot be nil")
	}

	stateJSON, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal host snapshot")
		return err
	}

	log.Debug().
		Str("host_id", snap.HostID).
		Str("form", snap.Form.String()).
		Msg("saving host snapshot")

	_, err = r.db.ExecContext(ctx, `
INSERT INTO host_snapshots (host_id, version, state_json, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (host_id) DO UPDATE SET
    version = excluded.version,
    state_json = excluded.state_json,
    updated_at = excluded.updated_at`,
		snap.HostID, snap.Version, string(stateJSON), millis(snap.SavedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert host snapshot: %w", err)
	}
	return nil
}

func (r *hostSnapshotRepo) Get(ctx context.Context, hostID string) (*entity.HostSnapshot, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx,
		`SELECT state_json FROM host_snapshots WHERE host_id = ?`, hostID,
	).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.HostSnapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("host_id", hostID).
			Msg("failed to unmarshal host snapshot")
		return nil, err
	}
	return &snap, nil
}

func (r *hostSnapshotRepo) Delete(ctx context.Context, hostID string) error {
	logging.FromContext(ctx).Debug().Str("host_id", hostID).Msg("deleting host snapshot")
	_, err := r.db.ExecContext(ctx, `DELETE FROM host_snapshots WHERE host_id = ?`, hostID)
	return err
}
