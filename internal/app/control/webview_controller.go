package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/formbridge/internal/app/bridge"
	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/logging"
)

var (
	// ErrNavigationBlocked is returned when no page can be built for the
	// target. Nothing is loaded until a later attempt resolves.
	ErrNavigationBlocked = errors.New("navigation blocked")

	// ErrNoTarget is returned by loads issued before any form was opened.
	ErrNoTarget = errors.New("no form target")
)

// Decision is the navigation action a load request resulted in.
type Decision string

const (
	DecisionFull     Decision = "full"
	DecisionHashOnly Decision = "hash_only"
	DecisionNone     Decision = "none"
	// DecisionDeferred means the request is held until the database is back.
	DecisionDeferred Decision = "deferred"
)

// Target is what the host wants the web view to show.
type Target struct {
	Form       entity.FormReference
	Row        usecase.RowContext
	ScreenPath string
}

// WebViewController decides between full navigations and hash-only
// transitions. It is not safe for concurrent use; the host calls it from its
// loop only.
type WebViewController struct {
	view     port.WebView
	session  *bridge.Session
	resolver *usecase.ResolveFormUseCase
	listener port.HostListener

	target      *Target
	targetDirty bool
	loadedBase  string

	blocked       bool
	suspended     bool
	pending       bool
	pendingForced bool
}

// NewWebViewController creates a controller driving view for session.
func NewWebViewController(
	view port.WebView,
	session *bridge.Session,
	resolver *usecase.ResolveFormUseCase,
	listener port.HostListener,
) *WebViewController {
	if listener == nil {
		listener = port.NopListener{}
	}
	return &WebViewController{
		view:     view,
		session:  session,
		resolver: resolver,
		listener: listener,
	}
}

// SetTarget switches to another form or row. The next load binds the
// requested row instead of whatever the page bound last.
func (c *WebViewController) SetTarget(t Target) {
	c.target = &t
	c.targetDirty = true
}

// SetScreenPath changes the screen the next load points at.
func (c *WebViewController) SetScreenPath(screenPath string) {
	if c.target != nil {
		c.target.ScreenPath = screenPath
	}
}

// Target returns a copy of the current target.
func (c *WebViewController) Target() (Target, bool) {
	if c.target == nil {
		return Target{}, false
	}
	return *c.target, true
}

// LoadedBaseURL returns the base URL of the last full navigation.
func (c *WebViewController) LoadedBaseURL() string {
	return c.loadedBase
}

// Blocked reports whether the last attempt failed to resolve the target.
func (c *WebViewController) Blocked() bool {
	return c.blocked
}

// Suspended reports whether navigation is paused for a database outage.
func (c *WebViewController) Suspended() bool {
	return c.suspended
}

// Suspend pauses navigation. Requests made while suspended are remembered
// and replayed by Resume; session state is left alone.
func (c *WebViewController) Suspend() {
	c.suspended = true
}

// Resume lifts a suspension and replays the request held meanwhile. A held
// plain load stays a plain load, so stacks survive the outage.
func (c *WebViewController) Resume(ctx context.Context) (Decision, error) {
	c.suspended = false
	if !c.pending {
		return DecisionNone, nil
	}
	forced := c.pendingForced
	c.pending, c.pendingForced = false, false

	logging.FromContext(ctx).Info().Bool("forced", forced).Msg("resuming held navigation")
	if forced {
		return c.ReloadPage(ctx)
	}
	return c.LoadPage(ctx)
}

// LoadPage navigates to the target. A full navigation happens when the page
// framework has not loaded successfully or the base URL changed; otherwise
// only the fragment is updated.
func (c *WebViewController) LoadPage(ctx context.Context) (Decision, error) {
	return c.load(ctx, false)
}

// ReloadPage always performs a full navigation.
func (c *WebViewController) ReloadPage(ctx context.Context) (Decision, error) {
	return c.load(ctx, true)
}

func (c *WebViewController) load(ctx context.Context, forced bool) (Decision, error) {
	log := logging.FromContext(ctx)

	if c.suspended {
		c.pending = true
		c.pendingForced = c.pendingForced || forced
		log.Info().Bool("forced", forced).Msg("navigation held while database is unavailable")
		return DecisionDeferred, nil
	}
	if c.target == nil {
		return DecisionNone, ErrNoTarget
	}

	state := c.session.View()
	if !state.Attached {
		log.Warn().Msg("web view detached, skipping navigation")
		return DecisionNone, nil
	}

	target := *c.target
	ctx = logging.WithForm(ctx, target.Form)
	log = logging.FromContext(ctx)

	loc, err := c.resolver.ResolveFormLocation(ctx, target.Form)
	if err != nil {
		c.blocked = true
		log.Error().Err(err).Msg("form resolution failed")
		c.listener.ResolutionFailed(target.Form, err)
		return DecisionNone, fmt.Errorf("%w: %w", ErrNavigationBlocked, err)
	}

	instance, err := c.instanceFor(ctx, state, target)
	if err != nil {
		if errors.Is(err, usecase.ErrInstanceLookup) {
			c.pending = true
			c.pendingForced = c.pendingForced || forced
			log.Warn().Err(err).Msg("instance lookup failed, navigation held")
			return DecisionDeferred, err
		}
		return DecisionNone, err
	}
	c.blocked = false

	params := usecase.FragmentParams{
		ScreenPath: target.ScreenPath,
		RefID:      state.RefID,
		Aux:        c.session.AuxParams(),
	}
	page, err := c.resolver.BuildPageURL(loc, instance, params)
	if err != nil {
		c.blocked = true
		c.listener.ResolutionFailed(target.Form, err)
		return DecisionNone, fmt.Errorf("%w: %w", ErrNavigationBlocked, err)
	}

	// A page that never reported a successful load, or a new base URL, is
	// rebuilt. An unresolvable target already returned above as blocked, so
	// there is no third outcome.
	reuse := state.Framework == entity.FrameworkLoaded && c.loadedBase != ""
	if forced || !reuse || page.BaseURL != c.loadedBase {
		return c.navigate(ctx, loc, instance, params)
	}

	if err := c.view.SetHash(ctx, page.Hash); err != nil {
		return DecisionNone, fmt.Errorf("set hash: %w", err)
	}
	c.session.MarkNavigating()
	log.Debug().Str("hash", page.Hash).Msg("hash-only transition")
	return DecisionHashOnly, nil
}

// navigate performs a full navigation: new RefID, cleared stacks, fresh URL.
func (c *WebViewController) navigate(
	ctx context.Context,
	loc *entity.FormLocation,
	instance entity.InstanceID,
	params usecase.FragmentParams,
) (Decision, error) {
	params.RefID = c.session.Renew()
	page, err := c.resolver.BuildPageURL(loc, instance, params)
	if err != nil {
		return DecisionNone, fmt.Errorf("%w: %w", ErrNavigationBlocked, err)
	}

	log := logging.FromContext(logging.WithNavigation(ctx, params.RefID, page.BaseURL))
	log.Info().Msg("full navigation")

	if err := c.view.LoadURL(ctx, page.Full()); err != nil {
		c.loadedBase = ""
		return DecisionNone, fmt.Errorf("load url: %w", err)
	}
	c.loadedBase = page.BaseURL
	c.targetDirty = false
	return DecisionFull, nil
}

// instanceFor picks the row the next page binds: the row the page itself
// bound, unless the host switched targets since.
func (c *WebViewController) instanceFor(ctx context.Context, state bridge.SessionView, target Target) (entity.InstanceID, error) {
	if !c.targetDirty && state.InstanceID.IsBound() {
		return state.InstanceID, nil
	}
	id, stored, err := c.resolver.ResolveCurrentInstance(ctx, target.Form, target.Row)
	if err != nil {
		return entity.NoInstance, err
	}
	if !stored && id.IsBound() {
		logging.FromContext(logging.WithInstance(ctx, id)).Info().Msg("instance has no saved row yet, page creates it")
	}
	return id, nil
}
