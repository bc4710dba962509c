package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/formbridge/internal/app/bridge"
	"github.com/bnema/formbridge/internal/app/host"
	"github.com/bnema/formbridge/internal/app/mainloop"
	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/infrastructure/formstore"
	"github.com/bnema/formbridge/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/formbridge/internal/infrastructure/refid"
	"github.com/bnema/formbridge/internal/infrastructure/tasks"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	taskLimit       = 2
	watcherDebounce = 300 * time.Millisecond
)

// RuntimeOptions selects the view and listener a Runtime drives.
type RuntimeOptions struct {
	HostID   string
	View     port.WebView
	Listener port.HostListener
	// Resolver defaults to the app's resolver
	Resolver *usecase.ResolveFormUseCase
	// OnRefresh, if set, runs on the loop after every forms refresh
	OnRefresh func(tasks.Result[*usecase.RefreshFormsResult])
}

// Runtime is one running host: its loop, database health probe,
// background tasks and forms tree watcher.
type Runtime struct {
	app        *App
	ctx        context.Context
	Loop       *mainloop.Loop
	Host       *host.Host
	Dispatcher *bridge.Dispatcher
	Health     *sqlite.HealthMonitor
	Tasks      *tasks.Runner

	resolver  *usecase.ResolveFormUseCase
	onRefresh func(tasks.Result[*usecase.RefreshFormsResult])

	// loop only
	refreshing   bool
	refreshAgain bool
}

// NewRuntime wires a host for opts.View.
func (a *App) NewRuntime(ctx context.Context, opts RuntimeOptions) *Runtime {
	if opts.Resolver == nil {
		opts.Resolver = a.Resolver
	}
	if opts.Listener == nil {
		opts.Listener = port.NopListener{}
	}
	ctx = logging.WithComponent(ctx, "runtime")
	loop := mainloop.New()

	h := host.New(ctx, host.Options{
		ID:        opts.HostID,
		Loop:      loop,
		View:      opts.View,
		Resolver:  opts.Resolver,
		Outcomes:  usecase.NewApplySaveOutcomeUseCase(a.Rows, opts.Listener),
		Snapshots: a.SnapshotUC,
		Listener:  opts.Listener,
		RefIDs:    refid.NewGenerator(),
	})

	interval := time.Duration(a.Config.Database.HealthIntervalMs) * time.Millisecond
	return &Runtime{
		app:        a,
		ctx:        ctx,
		Loop:       loop,
		Host:       h,
		Dispatcher: bridge.NewDispatcher(ctx, h.Bridge()),
		Health:     sqlite.NewHealthMonitor(a.DB, h, interval),
		Tasks:      tasks.NewRunner(ctx, loop.Post, taskLimit),
		resolver:   opts.Resolver,
		onRefresh:  opts.OnRefresh,
	}
}

// HandleBridge runs one encoded bridge call. It matches server.BridgeHandler
// and scriptview.Dispatch.
func (r *Runtime) HandleBridge(payload []byte) any {
	return r.Dispatcher.Handle(payload)
}

// RefreshForms schedules a forms registry refresh. Requests arriving while
// one runs collapse into a single follow-up.
func (r *Runtime) RefreshForms() {
	r.Loop.Post(r.refreshForms)
}

func (r *Runtime) refreshForms() {
	if r.refreshing {
		r.refreshAgain = true
		return
	}
	r.refreshing = true

	err := tasks.Go(r.Tasks, "refresh-forms",
		func(ctx context.Context) (*usecase.RefreshFormsResult, error) {
			return r.app.RefreshUC.Execute(ctx, "")
		},
		func(res tasks.Result[*usecase.RefreshFormsResult]) {
			r.refreshing = false
			log := logging.FromContext(r.ctx)
			if res.Err != nil {
				log.Warn().Err(res.Err).Msg("forms refresh failed")
			} else {
				log.Info().
					Str("app", res.Value.AppName).
					Int("added", res.Value.Added).
					Int("updated", res.Value.Updated).
					Int("removed", res.Value.Removed).
					Int("skipped", res.Value.Skipped).
					Msg("forms refreshed")
			}
			if r.onRefresh != nil {
				r.onRefresh(res)
			}
			if r.refreshAgain {
				r.refreshAgain = false
				r.refreshForms()
			}
		})
	if err != nil {
		r.refreshing = false
		logging.FromContext(r.ctx).Debug().Err(err).Msg("forms refresh not scheduled")
	}
}

// Sync waits until everything posted to the loop before it has run.
func (r *Runtime) Sync(ctx context.Context) error {
	done := make(chan struct{})
	if !r.Loop.Post(func() { close(done) }) {
		return mainloop.ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the loop, the health probe and, when enabled, the forms
// watcher, plus any extra services, until ctx is done or one of them fails.
// Nothing is started when the forms watcher cannot be prepared.
func (r *Runtime) Run(ctx context.Context, services ...func(context.Context) error) error {
	watcher, err := r.formsWatcher(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := r.Loop.Run(gctx)
		if errors.Is(err, mainloop.ErrStopped) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		r.Health.Run(gctx)
		return nil
	})
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}
	for _, service := range services {
		g.Go(func() error { return service(gctx) })
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// formsWatcher returns nil when watching is off or the watcher cannot start;
// only a forms directory that cannot be created is an error.
func (r *Runtime) formsWatcher(ctx context.Context) (*formstore.Watcher, error) {
	if !r.app.Config.Forms.Watch {
		return nil, nil
	}
	appDir := r.resolver.AppDir(r.app.Config.Forms.AppName)
	if err := os.MkdirAll(appDir, formsDirPerm); err != nil {
		return nil, fmt.Errorf("create app forms dir: %w", err)
	}
	watcher, err := formstore.NewWatcher(appDir, watcherDebounce, r.RefreshForms)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("forms watcher disabled")
		return nil, nil
	}
	return watcher, nil
}

// Close stops the loop, drops pending loads and waits for background tasks.
func (r *Runtime) Close() error {
	r.Host.Close()
	r.Loop.Stop()
	return r.Tasks.Close()
}
