package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/formbridge/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
}

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, lazy.IsInitialized(), "LazyDB should be initialized after DB() is called")

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)

	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.Same(t, db1, db2, "DB() should return the same connection instance")

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	const goroutines = 10
	var wg sync.WaitGroup
	wg.Add(goroutines)

	type result struct {
		db  *sql.DB
		err error
	}
	results := make(chan result, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			results <- result{db, err}
		}()
	}

	wg.Wait()
	close(results)

	var firstDB *sql.DB
	for r := range results {
		require.NoError(t, r.err)
		require.NotNil(t, r.db)

		if firstDB == nil {
			firstDB = r.db
		} else {
			assert.Same(t, firstDB, r.db, "all goroutines should receive the same DB instance")
		}
	}

	require.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	err := lazy.Close()
	assert.NoError(t, err)
}

func TestLazyDB_Path(t *testing.T) {
	dbPath := "/some/path/to/db.sqlite"
	lazy := sqlite.NewLazyDB(dbPath)

	assert.Equal(t, dbPath, lazy.Path())
}

func TestLazyDB_DBIsUsable(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(dbPath)

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	var result int
	err = db.QueryRowContext(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_RetriesAfterFailure(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	// a regular file where the database directory should be makes the
	// first open fail
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "formbridge.db"))

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, os.Remove(blocker))

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyRepositories_ShareProvider(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "formbridge.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	rows := sqlite.NewLazyRowRepository(lazy)
	forms := sqlite.NewLazyFormRepository(lazy)
	snaps := sqlite.NewLazyHostSnapshotRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	_, err := rows.MarkSaved(ctx, "households", "uuid:1", "complete")
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	list, err := forms.List(ctx, "survey")
	require.NoError(t, err)
	assert.Empty(t, list)

	snap, err := snaps.Get(ctx, "main")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
