// Package cli wires formbridge's components for the command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/domain/build"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/infrastructure/config"
	"github.com/bnema/formbridge/internal/infrastructure/filesystem"
	"github.com/bnema/formbridge/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	formsDirPerm = 0o755

	logMaxSizeMB  = 10
	logMaxBackups = 5
	logMaxAgeDays = 14
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	DB        *sqlite.LazyDB
	FS        *filesystem.Adapter
	Forms     repository.FormRepository
	Rows      repository.RowRepository
	Snapshots repository.HostSnapshotRepository

	// Use cases
	Resolver   *usecase.ResolveFormUseCase
	RefreshUC  *usecase.RefreshFormsUseCase
	SnapshotUC *usecase.HostSnapshotUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration from the XDG config dir and builds the app.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return NewAppWithConfig(mgr.Get(), mgr)
}

// NewAppWithConfig builds the app from an already loaded configuration.
// mgr may be nil.
func NewAppWithConfig(cfg *config.Config, mgr *config.Manager) (*App, error) {
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAgeDays: logMaxAgeDays,
			Compress:   true,
		},
	)
	if logErr != nil {
		logger.Warn().Err(logErr).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	if err := os.MkdirAll(cfg.Forms.Root, formsDirPerm); err != nil {
		logCleanup()
		return nil, fmt.Errorf("create forms root: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	fs := filesystem.New()
	forms := sqlite.NewLazyFormRepository(db)
	rows := sqlite.NewLazyRowRepository(db)
	snapshots := sqlite.NewLazyHostSnapshotRepository(db)

	a := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		DB:            db,
		FS:            fs,
		Forms:         forms,
		Rows:          rows,
		Snapshots:     snapshots,
		SnapshotUC:    usecase.NewHostSnapshotUseCase(snapshots),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}
	a.Resolver = a.NewResolver(usecase.BaseURLMode(cfg.Bridge.BaseURLMode), cfg.Server.Addr)
	a.RefreshUC = usecase.NewRefreshFormsUseCase(fs, forms, a.Resolver)

	logger.Debug().
		Str("forms_root", cfg.Forms.Root).
		Str("db_path", cfg.Database.Path).
		Str("base_url_mode", string(cfg.Bridge.BaseURLMode)).
		Msg("app initialized")
	return a, nil
}

// NewResolver builds a resolver with a specific base URL mode, leaving the
// rest of the configuration as loaded.
func (a *App) NewResolver(mode usecase.BaseURLMode, serverAddr string) *usecase.ResolveFormUseCase {
	return usecase.NewResolveFormUseCase(a.FS, a.Rows, usecase.PageURLConfig{
		Mode:       mode,
		FormsRoot:  a.Config.Forms.Root,
		ServerAddr: serverAddr,
		AppName:    a.Config.Forms.AppName,
	})
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.DB.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
