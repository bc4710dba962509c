package refid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/formbridge/internal/domain/entity"
)

func TestNewGenerator_MintsDistinctUUIDs(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[entity.RefID]bool)
	for i := 0; i < 100; i++ {
		id := gen()
		_, err := uuid.Parse(id.String())
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate refId %s", id)
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("r1", "r2")
	assert.Equal(t, entity.RefID("r1"), gen())
	assert.Equal(t, entity.RefID("r2"), gen())

	_, err := uuid.Parse(gen().String())
	assert.NoError(t, err)
}
