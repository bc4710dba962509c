package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bnema/formbridge/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SchemaStatus is the state of the embedded migrations in a database.
type SchemaStatus struct {
	Version int64
	Applied []int64
	Pending []int64
}

// UpToDate reports whether every embedded migration has been applied.
func (s SchemaStatus) UpToDate() bool {
	return len(s.Pending) == 0
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations applies pending migrations and returns the versions it
// applied, oldest first. An up-to-date database yields an empty slice.
func RunMigrations(ctx context.Context, db *sql.DB) ([]int64, error) {
	log := logging.FromContext(ctx)

	provider, err := newMigrationProvider(db)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	applied := make([]int64, 0, len(results))
	for _, res := range results {
		if res.Error != nil {
			continue
		}
		applied = append(applied, res.Source.Version)
		log.Info().
			Int64("version", res.Source.Version).
			Str("file", filepath.Base(res.Source.Path)).
			Dur("took", res.Duration).
			Msg("migration applied")
	}
	if err != nil {
		return applied, fmt.Errorf("apply migrations: %w", err)
	}

	if len(applied) == 0 {
		log.Debug().Msg("database schema up to date")
	}
	return applied, nil
}

// ReadSchemaStatus reports the schema version and which embedded migrations
// are applied or still pending. It never migrates.
func ReadSchemaStatus(ctx context.Context, db *sql.DB) (SchemaStatus, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return SchemaStatus{}, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read migration status: %w", err)
	}
	var status SchemaStatus
	for _, st := range statuses {
		switch st.State {
		case goose.StateApplied:
			status.Applied = append(status.Applied, st.Source.Version)
		case goose.StatePending:
			status.Pending = append(status.Pending, st.Source.Version)
		}
	}

	status.Version, err = provider.GetDBVersion(ctx)
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read schema version: %w", err)
	}
	return status, nil
}
