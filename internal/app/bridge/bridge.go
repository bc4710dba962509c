// Package bridge implements the call surface a page uses to hand state to the
// host. Every call carries the RefID of the page load it belongs to; calls
// from superseded loads are dropped without touching host state.
package bridge

import (
	"context"
	"errors"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/logging"
)

// ProtocolVersion is the version of the bridge call surface.
const ProtocolVersion = 1

// Bridge exposes the session of one web view to its page.
type Bridge struct {
	baseCtx  context.Context
	session  *Session
	dedup    *OutcomeDeduplicator
	sink     port.OutcomeSink
	observer port.FrameworkObserver
}

// New creates a bridge over session. Outcomes go to sink and framework
// reports to observer; either may be nil.
func New(ctx context.Context, session *Session, sink port.OutcomeSink, observer port.FrameworkObserver) *Bridge {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bridge{
		baseCtx:  logging.WithComponent(ctx, "bridge"),
		session:  session,
		dedup:    NewOutcomeDeduplicator(),
		sink:     sink,
		observer: observer,
	}
}

// Session returns the session the bridge operates on.
func (b *Bridge) Session() *Session {
	return b.session
}

// IsAttached reports bridge liveness. It is the only call without a RefID.
func (b *Bridge) IsAttached() bool {
	return b.session.IsAttached()
}

func (b *Bridge) drop(op string, refID entity.RefID, err error) {
	log := logging.FromContext(b.baseCtx)
	ev := log.Warn()
	if errors.Is(err, errDetached) {
		ev = log.Debug()
	}
	ev.Str("op", op).
		Str("ref_id", refID.String()).
		Str("current_ref_id", b.session.refs.Current().String()).
		Err(err).
		Msg("dropping bridge call")
}

// FrameworkHasLoaded records the page's framework startup outcome. On
// failure the host must not attempt hash-only transitions.
func (b *Bridge) FrameworkHasLoaded(refID entity.RefID, success bool, messages []string) {
	err := b.session.withCurrent(refID, func(p pageState) {
		if success {
			p.s.framework = entity.FrameworkLoaded
			p.s.phase = entity.PhaseLoaded
		} else {
			p.s.framework = entity.FrameworkFailed
		}
	})
	if err != nil {
		b.drop("frameworkHasLoaded", refID, err)
		return
	}

	logging.FromContext(b.baseCtx).Info().
		Str("ref_id", refID.String()).
		Bool("success", success).
		Strs("messages", messages).
		Msg("framework reported load")

	if b.observer != nil {
		b.observer.FrameworkLoaded(refID, success, messages)
	}
}

// ClearAuxiliaryHash drops the one-shot parameters that seeded the page, so
// later fragments are not read as fresh initialization.
func (b *Bridge) ClearAuxiliaryHash(refID entity.RefID) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		clear(p.s.aux)
	}); err != nil {
		b.drop("clearAuxiliaryHash", refID, err)
	}
}

// GetInstanceID returns the bound instance, false when none is bound or the
// call is stale.
func (b *Bridge) GetInstanceID(refID entity.RefID) (entity.InstanceID, bool) {
	var id entity.InstanceID
	if err := b.session.withCurrent(refID, func(p pageState) {
		id = p.s.instance
	}); err != nil {
		b.drop("getInstanceId", refID, err)
		return entity.NoInstance, false
	}
	return id, id.IsBound()
}

// SetInstanceID binds the page to a row.
func (b *Bridge) SetInstanceID(refID entity.RefID, instanceID entity.InstanceID) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.s.instance = instanceID
	}); err != nil {
		b.drop("setInstanceId", refID, err)
	}
}

// ClearInstanceID unbinds the page from its row.
func (b *Bridge) ClearInstanceID(refID entity.RefID) {
	b.SetInstanceID(refID, entity.NoInstance)
}

// PushScreenState appends a screen history entry.
func (b *Bridge) PushScreenState(refID entity.RefID, screenPath, state string) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.screens().Push(entity.ScreenState{ScreenPath: screenPath, State: state})
		p.touch()
	}); err != nil {
		b.drop("pushScreenState", refID, err)
	}
}

// SetScreenState replaces the top screen entry. An empty history is left
// untouched: the depth never changes here.
func (b *Bridge) SetScreenState(refID entity.RefID, screenPath, state string) {
	replaced := true
	if err := b.session.withCurrent(refID, func(p pageState) {
		replaced = p.screens().SetTop(entity.ScreenState{ScreenPath: screenPath, State: state})
		p.touch()
	}); err != nil {
		b.drop("setScreenState", refID, err)
		return
	}
	if !replaced {
		logging.FromContext(b.baseCtx).Debug().
			Str("screen_path", screenPath).
			Msg("setScreenState on empty history ignored")
	}
}

// ClearScreenHistory empties the screen history.
func (b *Bridge) ClearScreenHistory(refID entity.RefID) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.screens().Clear()
	}); err != nil {
		b.drop("clearScreenHistory", refID, err)
	}
}

// HasScreenHistory reports whether the screen history has entries.
func (b *Bridge) HasScreenHistory(refID entity.RefID) bool {
	var has bool
	if err := b.session.withCurrent(refID, func(p pageState) {
		has = !p.screens().IsEmpty()
	}); err != nil {
		b.drop("hasScreenHistory", refID, err)
		return false
	}
	return has
}

// PopScreenHistory removes and returns the top screen entry, nil when empty
// or stale.
func (b *Bridge) PopScreenHistory(refID entity.RefID) *entity.ScreenState {
	var top *entity.ScreenState
	if err := b.session.withCurrent(refID, func(p pageState) {
		top = p.screens().Pop()
		p.touch()
	}); err != nil {
		b.drop("popScreenHistory", refID, err)
		return nil
	}
	return top
}

// GetScreenPath returns the screen path of the top screen entry.
func (b *Bridge) GetScreenPath(refID entity.RefID) (string, bool) {
	top := b.peekScreen("getScreenPath", refID)
	if top == nil {
		return "", false
	}
	return top.ScreenPath, true
}

// GetControllerState returns the serialized state of the top screen entry.
func (b *Bridge) GetControllerState(refID entity.RefID) (string, bool) {
	top := b.peekScreen("getControllerState", refID)
	if top == nil {
		return "", false
	}
	return top.State, true
}

func (b *Bridge) peekScreen(op string, refID entity.RefID) *entity.ScreenState {
	var top *entity.ScreenState
	if err := b.session.withCurrent(refID, func(p pageState) {
		top = p.screens().Peek()
	}); err != nil {
		b.drop(op, refID, err)
		return nil
	}
	return top
}

// PushSectionState appends a section stack entry.
func (b *Bridge) PushSectionState(refID entity.RefID, screenPath, state string) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.sections().Push(entity.ScreenState{ScreenPath: screenPath, State: state})
		p.touch()
	}); err != nil {
		b.drop("pushSectionState", refID, err)
	}
}

// SetSectionState replaces the top section entry without changing depth.
func (b *Bridge) SetSectionState(refID entity.RefID, screenPath, state string) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.sections().SetTop(entity.ScreenState{ScreenPath: screenPath, State: state})
		p.touch()
	}); err != nil {
		b.drop("setSectionState", refID, err)
	}
}

// ClearSectionStack empties the section stack.
func (b *Bridge) ClearSectionStack(refID entity.RefID) {
	if err := b.session.withCurrent(refID, func(p pageState) {
		p.sections().Clear()
	}); err != nil {
		b.drop("clearSectionStack", refID, err)
	}
}

// HasSectionStack reports whether the section stack has entries.
func (b *Bridge) HasSectionStack(refID entity.RefID) bool {
	var has bool
	if err := b.session.withCurrent(refID, func(p pageState) {
		has = !p.sections().IsEmpty()
	}); err != nil {
		b.drop("hasSectionStack", refID, err)
		return false
	}
	return has
}

// PopSectionStack removes and returns the top section entry.
func (b *Bridge) PopSectionStack(refID entity.RefID) *entity.ScreenState {
	var top *entity.ScreenState
	if err := b.session.withCurrent(refID, func(p pageState) {
		top = p.sections().Pop()
		p.touch()
	}); err != nil {
		b.drop("popSectionStack", refID, err)
		return nil
	}
	return top
}

// SaveAllChangesCompleted reports a finished save of instanceID.
func (b *Bridge) SaveAllChangesCompleted(refID entity.RefID, instanceID entity.InstanceID, asComplete bool) {
	b.deliver("saveAllChangesCompleted", entity.SaveOutcome{
		Kind: entity.OutcomeSaveCompleted, RefID: refID, InstanceID: instanceID, AsComplete: asComplete,
	})
}

// SaveAllChangesFailed reports a failed save of instanceID.
func (b *Bridge) SaveAllChangesFailed(refID entity.RefID, instanceID entity.InstanceID) {
	b.deliver("saveAllChangesFailed", entity.SaveOutcome{
		Kind: entity.OutcomeSaveFailed, RefID: refID, InstanceID: instanceID,
	})
}

// IgnoreAllChangesCompleted reports that unsaved changes were discarded.
func (b *Bridge) IgnoreAllChangesCompleted(refID entity.RefID, instanceID entity.InstanceID) {
	b.deliver("ignoreAllChangesCompleted", entity.SaveOutcome{
		Kind: entity.OutcomeIgnoreCompleted, RefID: refID, InstanceID: instanceID,
	})
}

// IgnoreAllChangesFailed reports that discarding changes failed.
func (b *Bridge) IgnoreAllChangesFailed(refID entity.RefID, instanceID entity.InstanceID) {
	b.deliver("ignoreAllChangesFailed", entity.SaveOutcome{
		Kind: entity.OutcomeIgnoreFailed, RefID: refID, InstanceID: instanceID,
	})
}

func (b *Bridge) deliver(op string, outcome entity.SaveOutcome) {
	if err := b.session.withCurrent(outcome.RefID, func(pageState) {}); err != nil {
		b.drop(op, outcome.RefID, err)
		return
	}

	log := logging.FromContext(b.baseCtx)
	if b.dedup.IsDuplicate(outcome) {
		log.Debug().
			Str("op", op).
			Str("instance_id", outcome.InstanceID.String()).
			Msg("duplicate outcome suppressed")
		return
	}

	log.Info().
		Str("op", op).
		Str("instance_id", outcome.InstanceID.String()).
		Bool("as_complete", outcome.AsComplete).
		Msg("save outcome received")

	if b.sink != nil {
		b.sink.DeliverOutcome(outcome)
	}
}
