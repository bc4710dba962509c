package port

import "github.com/bnema/formbridge/internal/domain/entity"

// HostListener is implemented by the surrounding UI layer. The host raises
// these on its event loop; implementations show dialogs, toasts or navigate.
type HostListener interface {
	DatabaseAvailable()
	DatabaseUnavailable()

	// InitializationComplete reports the page's framework startup outcome.
	InitializationComplete(success bool, messages []string)

	// ResolutionFailed reports that no page could be built for ref.
	ResolutionFailed(ref entity.FormReference, err error)

	SaveAllChangesCompleted(instanceID entity.InstanceID, asComplete bool)
	SaveAllChangesFailed(instanceID entity.InstanceID)
	IgnoreAllChangesCompleted(instanceID entity.InstanceID)
	IgnoreAllChangesFailed(instanceID entity.InstanceID)
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) DatabaseAvailable()                              {}
func (NopListener) DatabaseUnavailable()                            {}
func (NopListener) InitializationComplete(bool, []string)           {}
func (NopListener) ResolutionFailed(entity.FormReference, error)    {}
func (NopListener) SaveAllChangesCompleted(entity.InstanceID, bool) {}
func (NopListener) SaveAllChangesFailed(entity.InstanceID)          {}
func (NopListener) IgnoreAllChangesCompleted(entity.InstanceID)     {}
func (NopListener) IgnoreAllChangesFailed(entity.InstanceID)        {}

var _ HostListener = NopListener{}
