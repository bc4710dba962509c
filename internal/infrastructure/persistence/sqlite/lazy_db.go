package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/logging"
)

// LazyDB implements port.DatabaseProvider with lazy initialization.
// The connection is opened on first access. A failed open is not cached:
// the next call retries, so a database that comes back is picked up without
// restarting the host.
type LazyDB struct {
	dbPath  string
	db      *sql.DB
	lastErr error
	mu      sync.Mutex
	open    func(ctx context.Context, path string) (*sql.DB, error)
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a new lazy database provider.
// The actual connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath, open: NewConnection}
}

// DB returns the database connection, initializing it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

	db, err := l.open(ctx, l.dbPath)
	if err != nil {
		if l.lastErr == nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
		l.lastErr = err
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}

	if l.lastErr != nil {
		log.Info().Msg("database initialization recovered")
	}
	l.db, l.lastErr = db, nil
	return l.db, nil
}

// Close closes the database connection if it was initialized. A later DB()
// call opens a new connection.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized returns true if a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
