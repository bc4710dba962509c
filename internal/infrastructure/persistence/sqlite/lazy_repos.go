package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
)

// The lazy wrappers defer opening the database until a repository is first
// used. CLI commands that never touch the database start without paying for
// the WASM compilation and migrations, and a host started while the database
// is unavailable keeps retrying through LazyDB.

// LazyFormRepository wraps a form repository with lazy database initialization.
type LazyFormRepository struct {
	provider port.DatabaseProvider
	mu       sync.Mutex
	repo     repository.FormRepository
}

// NewLazyFormRepository creates a lazy-loading form repository.
func NewLazyFormRepository(provider port.DatabaseProvider) repository.FormRepository {
	return &LazyFormRepository{provider: provider}
}

func (r *LazyFormRepository) get(ctx context.Context) (repository.FormRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.repo != nil {
		return r.repo, nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.repo = NewFormRepository(db)
	return r.repo, nil
}

func (r *LazyFormRepository) Save(ctx context.Context, form *entity.Form) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, form)
}

func (r *LazyFormRepository) FindByReference(ctx context.Context, ref entity.FormReference) (*entity.Form, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.FindByReference(ctx, ref)
}

func (r *LazyFormRepository) List(ctx context.Context, appName string) ([]*entity.Form, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, appName)
}

func (r *LazyFormRepository) Delete(ctx context.Context, ref entity.FormReference) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, ref)
}

// LazyRowRepository wraps a row repository with lazy database initialization.
type LazyRowRepository struct {
	provider port.DatabaseProvider
	mu       sync.Mutex
	repo     repository.RowRepository
}

// NewLazyRowRepository creates a lazy-loading row repository.
func NewLazyRowRepository(provider port.DatabaseProvider) repository.RowRepository {
	return &LazyRowRepository{provider: provider}
}

func (r *LazyRowRepository) get(ctx context.Context) (repository.RowRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.repo != nil {
		return r.repo, nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.repo = NewRowRepository(db)
	return r.repo, nil
}

func (r *LazyRowRepository) Get(ctx context.Context, tableID string, instanceID entity.InstanceID) (*entity.Row, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, tableID, instanceID)
}

func (r *LazyRowRepository) MarkSaved(
	ctx context.Context,
	tableID string,
	instanceID entity.InstanceID,
	savepoint entity.Savepoint,
) (bool, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return false, err
	}
	return repo.MarkSaved(ctx, tableID, instanceID, savepoint)
}

func (r *LazyRowRepository) ListByTable(ctx context.Context, tableID string, limit int) ([]*entity.Row, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListByTable(ctx, tableID, limit)
}

// LazyHostSnapshotRepository wraps a snapshot repository with lazy database
// initialization.
type LazyHostSnapshotRepository struct {
	provider port.DatabaseProvider
	mu       sync.Mutex
	repo     repository.HostSnapshotRepository
}

// NewLazyHostSnapshotRepository creates a lazy-loading snapshot repository.
func NewLazyHostSnapshotRepository(provider port.DatabaseProvider) repository.HostSnapshotRepository {
	return &LazyHostSnapshotRepository{provider: provider}
}

func (r *LazyHostSnapshotRepository) get(ctx context.Context) (repository.HostSnapshotRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.repo != nil {
		return r.repo, nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.repo = NewHostSnapshotRepository(db)
	return r.repo, nil
}

func (r *LazyHostSnapshotRepository) Save(ctx context.Context, snap *entity.HostSnapshot) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, snap)
}

func (r *LazyHostSnapshotRepository) Get(ctx context.Context, hostID string) (*entity.HostSnapshot, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, hostID)
}

func (r *LazyHostSnapshotRepository) Delete(ctx context.Context, hostID string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, hostID)
}
