package repository

import (
	"context"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// HostSnapshotRepository persists the host properties needed after an
// interruption.
type HostSnapshotRepository interface {
	// Save writes the snapshot, replacing any earlier one for the same host.
	Save(ctx context.Context, snap *entity.HostSnapshot) error

	// Get returns the snapshot or nil when none exists.
	Get(ctx context.Context, hostID string) (*entity.HostSnapshot, error)

	// Delete removes the snapshot of a host.
	Delete(ctx context.Context, hostID string) error
}
