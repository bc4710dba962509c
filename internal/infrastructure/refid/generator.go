// Package refid mints page-load identifiers.
package refid

import (
	"github.com/google/uuid"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
)

// NewGenerator returns a generator of random (v4) UUID RefIDs.
func NewGenerator() port.RefIDGenerator {
	return func() entity.RefID {
		return entity.RefID(uuid.NewString())
	}
}

// Sequence returns a generator that yields the given ids in order and then
// falls back to random ones. Useful where a test needs predictable RefIDs.
func Sequence(ids ...string) port.RefIDGenerator {
	next := 0
	random := NewGenerator()
	return func() entity.RefID {
		if next < len(ids) {
			id := ids[next]
			next++
			return entity.RefID(id)
		}
		return random()
	}
}
