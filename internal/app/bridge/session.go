package bridge

import (
	"errors"
	"maps"
	"sync"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/navigation"
)

var (
	errDetached = errors.New("bridge detached from web view")
	errStale    = errors.New("stale or foreign refId")
)

// Session is the host-held state of one web view: the RefID validator, the
// screen and section stacks, the bound instance and the auxiliary startup
// parameters. One mutex covers all of it, including the RefID check, so a
// call validated against a RefID can never land after that RefID was replaced.
type Session struct {
	mu   sync.Mutex
	refs *RefIDValidator

	attached  bool
	instance  entity.InstanceID
	aux       map[string]string
	screens   *navigation.Stack
	sections  *navigation.Stack
	phase     entity.LoadPhase
	framework entity.FrameworkStatus
}

// SessionView is a point-in-time copy of the session for the host.
type SessionView struct {
	RefID        entity.RefID
	Attached     bool
	InstanceID   entity.InstanceID
	Phase        entity.LoadPhase
	Framework    entity.FrameworkStatus
	ScreenDepth  int
	SectionDepth int
}

// NewSession creates an attached session in the fresh state.
func NewSession(refs *RefIDValidator) *Session {
	return &Session{
		refs:      refs,
		attached:  true,
		aux:       map[string]string{},
		screens:   navigation.NewStack(),
		sections:  navigation.NewStack(),
		phase:     entity.PhaseFresh,
		framework: entity.FrameworkUnknown,
	}
}

// Renew starts a new page-load session: the current RefID is superseded and
// the stacks, bound instance and framework status are reset. Auxiliary
// parameters survive; only the page can consume them.
func (s *Session) Renew() entity.RefID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = entity.PhaseReloading
	ref := s.refs.Mint()
	s.screens.Clear()
	s.sections.Clear()
	s.instance = entity.NoInstance
	s.framework = entity.FrameworkUnknown
	s.phase = entity.PhaseFresh
	return ref
}

// Attach marks the web view as alive.
func (s *Session) Attach() {
	s.mu.Lock()
	s.attached = true
	s.mu.Unlock()
}

// Detach invalidates the bridge handle. Every later call is dropped until
// Attach.
func (s *Session) Detach() {
	s.mu.Lock()
	s.attached = false
	s.mu.Unlock()
}

// IsAttached reports whether the web view is alive.
func (s *Session) IsAttached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// View returns a copy of the session state.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		RefID:        s.refs.Current(),
		Attached:     s.attached,
		InstanceID:   s.instance,
		Phase:        s.phase,
		Framework:    s.framework,
		ScreenDepth:  s.screens.Len(),
		SectionDepth: s.sections.Len(),
	}
}

// AuxParams returns a copy of the one-shot startup parameters.
func (s *Session) AuxParams() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.aux)
}

// SetAuxParams replaces the one-shot startup parameters.
func (s *Session) SetAuxParams(params map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aux = maps.Clone(params)
	if s.aux == nil {
		s.aux = map[string]string{}
	}
}

// MarkNavigating records an in-page transition of a loaded page.
func (s *Session) MarkNavigating() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == entity.PhaseLoaded {
		s.phase = entity.PhaseNavigating
	}
}

// ScreenHistory returns the screen stack bottom first.
func (s *Session) ScreenHistory() []entity.ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screens.Entries()
}

// SectionHistory returns the section stack bottom first.
func (s *Session) SectionHistory() []entity.ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sections.Entries()
}

// pageState is what bridge calls may touch while holding the session lock.
type pageState struct {
	s *Session
}

func (p pageState) screens() *navigation.Stack  { return p.s.screens }
func (p pageState) sections() *navigation.Stack { return p.s.sections }

func (p pageState) touch() {
	if p.s.phase == entity.PhaseLoaded {
		p.s.phase = entity.PhaseNavigating
	}
}

// withCurrent runs fn under the session lock if the web view is attached
// and refID is current.
func (s *Session) withCurrent(refID entity.RefID, fn func(p pageState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return errDetached
	}
	if !s.refs.IsCurrent(refID) {
		return errStale
	}
	fn(pageState{s: s})
	return nil
}
