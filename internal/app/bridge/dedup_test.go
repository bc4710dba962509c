package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/formbridge/internal/domain/entity"
)

func TestOutcomeDeduplicator(t *testing.T) {
	d := NewOutcomeDeduplicator()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }
	d.lastCleanup = now

	done := entity.SaveOutcome{Kind: entity.OutcomeSaveCompleted, RefID: "r", InstanceID: "i", AsComplete: true}
	failed := entity.SaveOutcome{Kind: entity.OutcomeSaveFailed, RefID: "r", InstanceID: "i"}

	assert.False(t, d.IsDuplicate(done))
	assert.True(t, d.IsDuplicate(done))
	assert.False(t, d.IsDuplicate(failed))
	assert.False(t, d.IsDuplicate(failed))
	assert.Equal(t, 1, d.Len())

	now = now.Add(time.Hour)
	other := entity.SaveOutcome{Kind: entity.OutcomeIgnoreCompleted, RefID: "r", InstanceID: "j"}
	assert.False(t, d.IsDuplicate(other))
	assert.Equal(t, 1, d.Len(), "expired entries are swept")
}
