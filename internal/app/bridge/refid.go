package bridge

import (
	"sync"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
)

// RefIDValidator holds the single current RefID of a web view.
type RefIDValidator struct {
	mu       sync.RWMutex
	current  entity.RefID
	generate port.RefIDGenerator
}

// NewRefIDValidator creates a validator. Nothing is current until the first Mint.
func NewRefIDValidator(generate port.RefIDGenerator) *RefIDValidator {
	if generate == nil {
		panic("bridge.NewRefIDValidator: generator cannot be nil")
	}
	return &RefIDValidator{generate: generate}
}

// Mint supersedes the current RefID with a fresh one and returns it.
func (v *RefIDValidator) Mint() entity.RefID {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := v.generate()
	for next == entity.NoRefID || next == v.current {
		next = v.generate()
	}
	v.current = next
	return next
}

// Current returns the current RefID, NoRefID before the first Mint.
func (v *RefIDValidator) Current() entity.RefID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// IsCurrent reports whether candidate is the current RefID.
func (v *RefIDValidator) IsCurrent(candidate entity.RefID) bool {
	if candidate == entity.NoRefID {
		return false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	return candidate == v.current
}
