// Package host owns the state of one web view: its bridge session, the
// controller that navigates it and the event loop everything runs on.
package host

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/formbridge/internal/app/bridge"
	"github.com/bnema/formbridge/internal/app/control"
	"github.com/bnema/formbridge/internal/app/mainloop"
	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	loadKey   = "load-page"
	reloadKey = "reload-page"
)

// Options wires a Host. Loop, View, Resolver and RefIDs are required.
type Options struct {
	ID        string
	Loop      *mainloop.Loop
	View      port.WebView
	Resolver  *usecase.ResolveFormUseCase
	Outcomes  *usecase.ApplySaveOutcomeUseCase
	Snapshots *usecase.HostSnapshotUseCase
	Listener  port.HostListener
	RefIDs    port.RefIDGenerator
}

// Host is the explicitly constructed context of one web view. Bridge calls
// may arrive on any goroutine; everything they trigger on the host side is
// posted to the loop.
type Host struct {
	id        string
	baseCtx   context.Context
	loop      *mainloop.Loop
	coalescer *mainloop.Coalescer

	session    *bridge.Session
	bridge     *bridge.Bridge
	controller *control.WebViewController

	outcomes  *usecase.ApplySaveOutcomeUseCase
	snapshots *usecase.HostSnapshotUseCase
	listener  port.HostListener

	// loop-only state
	dbAvailable bool
	pendingExit func()

	lastMu     sync.Mutex
	lastResult LoadResult
}

// LoadResult is the outcome of the latest load request.
type LoadResult struct {
	Decision control.Decision
	Err      error
}

// New builds a host. The page is not loaded until OpenForm.
func New(ctx context.Context, opts Options) *Host {
	if opts.ID == "" {
		opts.ID = "main"
	}
	if opts.Listener == nil {
		opts.Listener = port.NopListener{}
	}
	baseCtx := logging.WithComponent(ctx, "host")

	h := &Host{
		id:          opts.ID,
		baseCtx:     baseCtx,
		loop:        opts.Loop,
		coalescer:   mainloop.NewCoalescer(opts.Loop.Post),
		session:     bridge.NewSession(bridge.NewRefIDValidator(opts.RefIDs)),
		outcomes:    opts.Outcomes,
		snapshots:   opts.Snapshots,
		listener:    opts.Listener,
		dbAvailable: true,
	}
	h.bridge = bridge.New(ctx, h.session, h, h)
	h.controller = control.NewWebViewController(opts.View, h.session, opts.Resolver, opts.Listener)
	return h
}

// ID returns the host identifier used for snapshots.
func (h *Host) ID() string { return h.id }

// Bridge returns the call surface handed to the page.
func (h *Host) Bridge() *bridge.Bridge { return h.bridge }

// Session returns the bridge session.
func (h *Host) Session() *bridge.Session { return h.session }

// LastResult returns the outcome of the latest load request.
func (h *Host) LastResult() LoadResult {
	h.lastMu.Lock()
	defer h.lastMu.Unlock()
	return h.lastResult
}

// OpenForm targets a form and row and requests a load.
func (h *Host) OpenForm(ref entity.FormReference, instanceID entity.InstanceID, screenPath string) {
	h.loop.Post(func() {
		h.controller.SetTarget(control.Target{
			Form:       ref,
			Row:        usecase.RowContext{InstanceID: instanceID},
			ScreenPath: screenPath,
		})
		h.requestLoad()
	})
}

// OpenScreen points the current form at another screen.
func (h *Host) OpenScreen(screenPath string) {
	h.loop.Post(func() {
		h.controller.SetScreenPath(screenPath)
		h.requestLoad()
	})
}

// SetAuxParams sets the one-shot startup parameters of the next load.
func (h *Host) SetAuxParams(params map[string]string) {
	h.session.SetAuxParams(params)
}

// RequestLoad asks for a load. Bursts are merged into one decision.
func (h *Host) RequestLoad() {
	h.loop.Post(h.requestLoad)
}

// RequestReload asks for a forced full navigation. It supersedes any
// pending plain load.
func (h *Host) RequestReload() {
	h.loop.Post(func() {
		h.coalescer.Cancel(loadKey)
		h.coalescer.Post(reloadKey, func() {
			h.record(h.controller.ReloadPage(h.baseCtx))
		})
	})
}

func (h *Host) requestLoad() {
	if h.coalescer.Pending(reloadKey) {
		return
	}
	h.coalescer.Post(loadKey, func() {
		h.record(h.controller.LoadPage(h.baseCtx))
	})
}

func (h *Host) record(d control.Decision, err error) {
	log := logging.FromContext(h.baseCtx)
	if err != nil && !errors.Is(err, control.ErrNavigationBlocked) {
		log.Error().Err(err).Str("decision", string(d)).Msg("load failed")
	}
	h.lastMu.Lock()
	h.lastResult = LoadResult{Decision: d, Err: err}
	h.lastMu.Unlock()
}

// DeliverOutcome implements port.OutcomeSink.
func (h *Host) DeliverOutcome(outcome entity.SaveOutcome) {
	h.loop.Post(func() { h.applyOutcome(outcome) })
}

func (h *Host) applyOutcome(outcome entity.SaveOutcome) {
	ctx := logging.WithInstance(logging.WithRefID(h.baseCtx, outcome.RefID), outcome.InstanceID)
	target, ok := h.controller.Target()
	if !ok {
		logging.FromContext(ctx).Warn().Str("outcome", string(outcome.Kind)).Msg("outcome without target form")
		return
	}

	var err error
	if h.outcomes != nil {
		err = h.outcomes.Execute(ctx, target.Form, outcome)
	}

	if h.pendingExit == nil {
		return
	}
	if outcome.IsFailure() || err != nil {
		logging.FromContext(ctx).Info().Msg("exit cancelled by failed outcome")
		h.pendingExit = nil
		return
	}
	exit := h.pendingExit
	h.pendingExit = nil
	h.finishExit(ctx)
	exit()
}

// FrameworkLoaded implements port.FrameworkObserver.
func (h *Host) FrameworkLoaded(_ entity.RefID, success bool, messages []string) {
	h.loop.Post(func() {
		h.listener.InitializationComplete(success, messages)
	})
}

// DatabaseAvailabilityChanged implements port.AvailabilityListener.
func (h *Host) DatabaseAvailabilityChanged(available bool) {
	h.loop.Post(func() {
		if available == h.dbAvailable {
			return
		}
		h.dbAvailable = available
		if !available {
			h.controller.Suspend()
			h.listener.DatabaseUnavailable()
			return
		}
		h.listener.DatabaseAvailable()
		h.record(h.controller.Resume(h.baseCtx))
	})
}

// RequestExit handles a back-press. With no row bound, onExit runs right
// away. Otherwise the exit waits for the page's save or ignore outcome; a
// failed outcome cancels it.
func (h *Host) RequestExit(onExit func()) {
	h.loop.Post(func() {
		if !h.session.View().InstanceID.IsBound() {
			h.finishExit(h.baseCtx)
			if onExit != nil {
				onExit()
			}
			return
		}
		logging.FromContext(h.baseCtx).Info().Msg("exit waiting for save outcome")
		if onExit == nil {
			onExit = func() {}
		}
		h.pendingExit = onExit
	})
}

// ExitPending reports whether an exit waits for an outcome. Loop only.
func (h *Host) ExitPending() bool {
	return h.pendingExit != nil
}

func (h *Host) finishExit(ctx context.Context) {
	if h.snapshots == nil {
		return
	}
	if err := h.snapshots.Discard(ctx, h.id); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to discard host snapshot")
	}
}

// SaveSnapshot writes the host properties needed after an interruption.
// It runs on the caller's goroutine and reads only locked session state.
func (h *Host) SaveSnapshot(ctx context.Context, target control.Target) error {
	if h.snapshots == nil {
		return nil
	}
	view := h.session.View()
	screenPath := target.ScreenPath
	if history := h.session.ScreenHistory(); len(history) > 0 {
		screenPath = history[len(history)-1].ScreenPath
	}
	instance := view.InstanceID
	if !instance.IsBound() {
		instance = target.Row.InstanceID
	}
	return h.snapshots.Save(ctx, usecase.HostSnapshotInput{
		HostID:     h.id,
		Form:       target.Form,
		InstanceID: instance,
		ScreenPath: screenPath,
		AuxParams:  h.session.AuxParams(),
	})
}

// Snapshot saves the current target. It must be called from the loop.
func (h *Host) Snapshot(ctx context.Context) error {
	target, ok := h.controller.Target()
	if !ok {
		return nil
	}
	return h.SaveSnapshot(ctx, target)
}

// Restore reopens the form recorded by an earlier snapshot. It reports
// whether one was found.
func (h *Host) Restore(ctx context.Context) (bool, error) {
	if h.snapshots == nil {
		return false, nil
	}
	snap, err := h.snapshots.Restore(ctx, h.id)
	if err != nil || snap == nil {
		return false, err
	}
	logging.FromContext(ctx).Info().
		Str("form", snap.Form.String()).
		Str("instance_id", snap.InstanceID.String()).
		Msg("restoring host from snapshot")

	h.session.SetAuxParams(snap.AuxParams)
	h.OpenForm(snap.Form, snap.InstanceID, snap.ScreenPath)
	return true, nil
}

// Controller exposes the controller for loop-side inspection.
func (h *Host) Controller() *control.WebViewController {
	return h.controller
}

// Close detaches the bridge and drops scheduled loads.
func (h *Host) Close() {
	h.session.Detach()
	h.coalescer.Destroy()
}

var (
	_ port.OutcomeSink          = (*Host)(nil)
	_ port.FrameworkObserver    = (*Host)(nil)
	_ port.AvailabilityListener = (*Host)(nil)
)
