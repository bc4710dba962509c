package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	selectRowSQL = `
SELECT table_id, instance_id, savepoint, updated_at
FROM form_rows
WHERE table_id = ? AND instance_id = ?`

	upsertRowSQL = `
INSERT INTO form_rows (table_id, instance_id, savepoint, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (table_id, instance_id) DO UPDATE SET
    savepoint = excluded.savepoint,
    updated_at = excluded.updated_at`

	listRowsSQL = `
SELECT table_id, instance_id, savepoint, updated_at
FROM form_rows
WHERE table_id = ?
ORDER BY updated_at DESC, instance_id
LIMIT ?`
)

type rowRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewRowRepository creates a new row state repository.
func NewRowRepository(db *sql.DB) repository.RowRepository {
	return &rowRepo{db: db, now: time.Now}
}

func (r *rowRepo) Get(ctx context.Context, tableID string, instanceID entity.InstanceID) (*entity.Row, error) {
	row, err := scanRow(r.db.QueryRowContext(ctx, selectRowSQL, tableID, string(instanceID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// MarkSaved reads and writes inside one transaction so the changed flag
// reflects the value it replaced.
func (r *rowRepo) MarkSaved(
	ctx context.Context,
	tableID string,
	instanceID entity.InstanceID,
	savepoint entity.Savepoint,
) (bool, error) {
	log := logging.FromContext(ctx)
	if tableID == "" || !instanceID.IsBound() {
		return false, errors.New("table id and instance id are required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin row transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("row rollback reported non-terminal error")
		}
	}()

	var previous string
	err = tx.QueryRowContext(ctx,
		`SELECT savepoint FROM form_rows WHERE table_id = ? AND instance_id = ?`,
		tableID, string(instanceID),
	).Scan(&previous)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		previous = ""
	case err != nil:
		return false, fmt.Errorf("read row %s/%s: %w", tableID, instanceID, err)
	}

	if _, err := tx.ExecContext(ctx, upsertRowSQL,
		tableID, string(instanceID), string(savepoint), millis(r.now()),
	); err != nil {
		return false, fmt.Errorf("write row %s/%s: %w", tableID, instanceID, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit row transaction: %w", err)
	}

	return previous != string(savepoint), nil
}

func (r *rowRepo) ListByTable(ctx context.Context, tableID string, limit int) ([]*entity.Row, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, listRowsSQL, tableID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*entity.Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func scanRow(s rowScanner) (*entity.Row, error) {
	var (
		row        entity.Row
		instanceID string
		savepoint  string
		updated    int64
	)
	if err := s.Scan(&row.TableID, &instanceID, &savepoint, &updated); err != nil {
		return nil, err
	}
	row.InstanceID = entity.InstanceID(instanceID)
	row.Savepoint = entity.Savepoint(savepoint)
	row.UpdatedAt = fromMillis(updated)
	return &row, nil
}
