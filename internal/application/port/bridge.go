package port

import "github.com/bnema/formbridge/internal/domain/entity"

// RefIDGenerator mints fresh RefIDs. Implementations must not repeat values
// within a process.
type RefIDGenerator func() entity.RefID

// OutcomeSink receives save/ignore outcomes from the bridge. Deliver must not
// block on I/O; the host queues outcomes onto its event loop.
type OutcomeSink interface {
	DeliverOutcome(outcome entity.SaveOutcome)
}

// FrameworkObserver is told when the page reports its framework startup.
type FrameworkObserver interface {
	FrameworkLoaded(refID entity.RefID, success bool, messages []string)
}
