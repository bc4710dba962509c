package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/logging"
)

// HostEvent is one notification raised by the host.
type HostEvent struct {
	Name     string
	Success  bool
	Messages []string
	Form     string
	Instance entity.InstanceID
	Err      error
}

func (e HostEvent) String() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	case e.Instance != "":
		return fmt.Sprintf("%s (%s)", e.Name, e.Instance)
	default:
		return e.Name
	}
}

// EventLog is the HostListener of headless and served hosts. It logs each
// notification and keeps them for the final report.
type EventLog struct {
	ctx context.Context

	mu      sync.Mutex
	events  []HostEvent
	settled chan struct{}
	once    sync.Once
}

// NewEventLog creates an empty log.
func NewEventLog(ctx context.Context) *EventLog {
	return &EventLog{
		ctx:     logging.WithComponent(ctx, "listener"),
		settled: make(chan struct{}),
	}
}

func (l *EventLog) add(ev HostEvent) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *EventLog) settle() {
	l.once.Do(func() { close(l.settled) })
}

// Wait blocks until the page reported its startup or resolution failed.
func (l *EventLog) Wait(ctx context.Context) error {
	select {
	case <-l.settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns a copy of the recorded notifications.
func (l *EventLog) Events() []HostEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]HostEvent, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) DatabaseAvailable() {
	logging.FromContext(l.ctx).Info().Msg("database available")
	l.add(HostEvent{Name: "database-available"})
}

func (l *EventLog) DatabaseUnavailable() {
	logging.FromContext(l.ctx).Warn().Msg("database unavailable")
	l.add(HostEvent{Name: "database-unavailable"})
}

func (l *EventLog) InitializationComplete(success bool, messages []string) {
	ev := logging.FromContext(l.ctx).Info()
	if !success {
		ev = logging.FromContext(l.ctx).Warn()
	}
	ev.Bool("success", success).Strs("messages", messages).Msg("page initialized")
	l.add(HostEvent{Name: "initialization-complete", Success: success, Messages: messages})
	l.settle()
}

func (l *EventLog) ResolutionFailed(ref entity.FormReference, err error) {
	logging.FromContext(l.ctx).Error().Err(err).Str("form", ref.String()).Msg("form resolution failed")
	l.add(HostEvent{Name: "resolution-failed", Form: ref.String(), Err: err})
	l.settle()
}

func (l *EventLog) SaveAllChangesCompleted(instanceID entity.InstanceID, asComplete bool) {
	logging.FromContext(l.ctx).Info().
		Str("instance_id", instanceID.String()).
		Bool("complete", asComplete).
		Msg("changes saved")
	l.add(HostEvent{Name: "save-completed", Instance: instanceID, Success: asComplete})
}

func (l *EventLog) SaveAllChangesFailed(instanceID entity.InstanceID) {
	logging.FromContext(l.ctx).Error().Str("instance_id", instanceID.String()).Msg("saving changes failed")
	l.add(HostEvent{Name: "save-failed", Instance: instanceID})
}

func (l *EventLog) IgnoreAllChangesCompleted(instanceID entity.InstanceID) {
	logging.FromContext(l.ctx).Info().Str("instance_id", instanceID.String()).Msg("changes discarded")
	l.add(HostEvent{Name: "ignore-completed", Instance: instanceID})
}

func (l *EventLog) IgnoreAllChangesFailed(instanceID entity.InstanceID) {
	logging.FromContext(l.ctx).Error().Str("instance_id", instanceID.String()).Msg("discarding changes failed")
	l.add(HostEvent{Name: "ignore-failed", Instance: instanceID})
}

var _ port.HostListener = (*EventLog)(nil)
