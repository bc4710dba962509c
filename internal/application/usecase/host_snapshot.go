package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

// HostSnapshotUseCase saves and restores the host properties that survive a
// process interruption.
type HostSnapshotUseCase struct {
	repo repository.HostSnapshotRepository
	now  func() time.Time
}

// NewHostSnapshotUseCase creates the use case.
func NewHostSnapshotUseCase(repo repository.HostSnapshotRepository) *HostSnapshotUseCase {
	return &HostSnapshotUseCase{repo: repo, now: time.Now}
}

// HostSnapshotInput is the host state captured at interruption time.
type HostSnapshotInput struct {
	HostID     string
	Form       entity.FormReference
	InstanceID entity.InstanceID
	ScreenPath string
	AuxParams  map[string]string
}

// Save writes the whole snapshot in one repository call.
func (uc *HostSnapshotUseCase) Save(ctx context.Context, input HostSnapshotInput) error {
	if input.HostID == "" {
		return errors.New("host id required")
	}
	if err := input.Form.Validate(); err != nil {
		return fmt.Errorf("snapshot form: %w", err)
	}

	snap := &entity.HostSnapshot{
		Version:    entity.HostSnapshotVersion,
		HostID:     input.HostID,
		Form:       input.Form,
		InstanceID: input.InstanceID,
		ScreenPath: input.ScreenPath,
		AuxParams:  maps.Clone(input.AuxParams),
		SavedAt:    uc.now().UTC(),
	}

	logging.FromContext(ctx).Debug().
		Str("host_id", snap.HostID).
		Str("form", snap.Form.String()).
		Str("instance_id", snap.InstanceID.String()).
		Msg("saving host snapshot")

	if err := uc.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save host snapshot: %w", err)
	}
	return nil
}

// Restore returns the saved snapshot for hostID, or nil when there is none.
// Snapshots written by another serialization version are discarded.
func (uc *HostSnapshotUseCase) Restore(ctx context.Context, hostID string) (*entity.HostSnapshot, error) {
	snap, err := uc.repo.Get(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("load host snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	if snap.Version != entity.HostSnapshotVersion {
		logging.FromContext(ctx).Warn().
			Int("version", snap.Version).
			Str("host_id", hostID).
			Msg("discarding host snapshot with unknown version")
		if err := uc.repo.Delete(ctx, hostID); err != nil {
			return nil, fmt.Errorf("discard host snapshot: %w", err)
		}
		return nil, nil
	}
	return snap, nil
}

// Discard removes the snapshot once the host finished normally.
func (uc *HostSnapshotUseCase) Discard(ctx context.Context, hostID string) error {
	if err := uc.repo.Delete(ctx, hostID); err != nil {
		return fmt.Errorf("delete host snapshot: %w", err)
	}
	return nil
}
