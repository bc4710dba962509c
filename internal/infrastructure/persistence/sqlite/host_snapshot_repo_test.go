package sqlite_test

import (
	"testing"
	"time"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSnapshotRepository_SaveGetDelete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHostSnapshotRepository(openTestDB(t))

	got, err := repo.Get(ctx, "main")
	require.NoError(t, err)
	assert.Nil(t, got)

	snap := &entity.HostSnapshot{
		Version:    entity.HostSnapshotVersion,
		HostID:     "main",
		Form:       entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake", Version: "2"},
		InstanceID: "uuid:1",
		ScreenPath: "survey/4",
		AuxParams:  map[string]string{"mode": "review"},
		SavedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, snap))

	snap2 := *snap
	snap2.ScreenPath = "survey/5"
	require.NoError(t, repo.Save(ctx, &snap2))

	got, err = repo.Get(ctx, "main")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.Form, got.Form)
	assert.Equal(t, "survey/5", got.ScreenPath)
	assert.Equal(t, snap.AuxParams, got.AuxParams)
	assert.True(t, got.SavedAt.Equal(snap.SavedAt))

	require.NoError(t, repo.Delete(ctx, "main"))
	got, err = repo.Get(ctx, "main")
	require.NoError(t, err)
	assert.Nil(t, got)
}
