package repository

import (
	"context"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// RowRepository persists host-side row state for form instances.
type RowRepository interface {
	// Get returns the row or nil when it does not exist.
	Get(ctx context.Context, tableID string, instanceID entity.InstanceID) (*entity.Row, error)

	// MarkSaved records a save with the given savepoint. It reports whether
	// the stored savepoint changed, so callers can detect repeated applies.
	MarkSaved(ctx context.Context, tableID string, instanceID entity.InstanceID, savepoint entity.Savepoint) (bool, error)

	// ListByTable returns the rows of a table, most recently updated first.
	ListByTable(ctx context.Context, tableID string, limit int) ([]*entity.Row, error)
}
