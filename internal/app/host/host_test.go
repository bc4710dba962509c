package host_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/formbridge/internal/app/control"
	"github.com/bnema/formbridge/internal/app/host"
	"github.com/bnema/formbridge/internal/app/mainloop"
	portmocks "github.com/bnema/formbridge/internal/application/port/mocks"
	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	repomocks "github.com/bnema/formbridge/internal/domain/repository/mocks"
	"github.com/bnema/formbridge/internal/infrastructure/filesystem"
	"github.com/bnema/formbridge/internal/logging"
)

var intake = entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}

type fixture struct {
	loop     *mainloop.Loop
	host     *host.Host
	view     *portmocks.MockWebView
	listener *portmocks.MockHostListener
	rows     *repomocks.MockRowRepository
	snaps    *repomocks.MockHostSnapshotRepository
	loads    []string
	hashes   []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "survey", filepath.FromSlash(intake.FormPath()))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, entity.FormDefinitionFile), []byte(`{}`), 0o600))

	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	f := &fixture{
		loop:     mainloop.New(),
		view:     portmocks.NewMockWebView(t),
		listener: portmocks.NewMockHostListener(t),
		rows:     repomocks.NewMockRowRepository(t),
		snaps:    repomocks.NewMockHostSnapshotRepository(t),
	}
	f.view.EXPECT().LoadURL(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, url string) { f.loads = append(f.loads, url) }).
		Return(nil).Maybe()
	f.view.EXPECT().SetHash(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, hash string) { f.hashes = append(f.hashes, hash) }).
		Return(nil).Maybe()

	n := 0
	resolver := usecase.NewResolveFormUseCase(filesystem.New(), f.rows, usecase.PageURLConfig{
		Mode: usecase.BaseURLFile, FormsRoot: root, AppName: "survey",
	})
	f.host = host.New(ctx, host.Options{
		ID:        "main",
		Loop:      f.loop,
		View:      f.view,
		Resolver:  resolver,
		Outcomes:  usecase.NewApplySaveOutcomeUseCase(f.rows, f.listener),
		Snapshots: usecase.NewHostSnapshotUseCase(f.snaps),
		Listener:  f.listener,
		RefIDs: func() entity.RefID {
			n++
			return entity.RefID(fmt.Sprintf("R%d", n))
		},
	})
	return f
}

func (f *fixture) ref() entity.RefID {
	return f.host.Session().View().RefID
}

func (f *fixture) openAndLoad(t *testing.T) {
	t.Helper()
	f.host.OpenForm(intake, entity.NoInstance, "")
	f.loop.Drain()
	require.Len(t, f.loads, 1)
	f.listener.EXPECT().InitializationComplete(true, []string(nil)).Return().Once()
	f.host.Bridge().FrameworkHasLoaded(f.ref(), true, nil)
	f.loop.Drain()
}

func TestHost_BurstOfLoadsIsCoalesced(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)

	f.host.OpenScreen("/a")
	f.host.OpenScreen("/b")
	f.host.RequestLoad()
	f.loop.Drain()

	require.Len(t, f.hashes, 1)
	assert.Contains(t, f.hashes[0], "screenPath=%2Fb")
	assert.Equal(t, control.DecisionHashOnly, f.host.LastResult().Decision)
}

func TestHost_ReloadSupersedesPendingLoad(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)

	f.host.RequestLoad()
	f.host.RequestReload()
	f.loop.Drain()

	assert.Empty(t, f.hashes)
	assert.Len(t, f.loads, 2)
	assert.Equal(t, control.DecisionFull, f.host.LastResult().Decision)
}

// Scenario D: a duplicated completed save is applied once; failures always
// reach the listener.
func TestHost_OutcomesAppliedOnceFailuresAlways(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	ref := f.ref()
	b := f.host.Bridge()

	f.rows.EXPECT().MarkSaved(mock.Anything, "households", entity.InstanceID("uuid-1"), entity.SavepointComplete).
		Return(true, nil).Once()
	f.listener.EXPECT().SaveAllChangesCompleted(entity.InstanceID("uuid-1"), true).Return().Once()
	f.listener.EXPECT().SaveAllChangesFailed(entity.InstanceID("uuid-1")).Return().Twice()

	b.SaveAllChangesCompleted(ref, "uuid-1", true)
	b.SaveAllChangesCompleted(ref, "uuid-1", true)
	b.SaveAllChangesFailed(ref, "uuid-1")
	b.SaveAllChangesFailed(ref, "uuid-1")
	f.loop.Drain()
}

func TestHost_DatabaseOutageHoldsNavigation(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	b := f.host.Bridge()
	b.PushScreenState(f.ref(), "/s1", "{}")

	f.listener.EXPECT().DatabaseUnavailable().Return().Once()
	f.host.DatabaseAvailabilityChanged(false)
	f.host.DatabaseAvailabilityChanged(false)
	f.host.OpenScreen("/s2")
	f.loop.Drain()

	assert.True(t, f.host.Controller().Suspended())
	assert.Empty(t, f.hashes)
	assert.Equal(t, control.DecisionDeferred, f.host.LastResult().Decision)

	f.listener.EXPECT().DatabaseAvailable().Return().Once()
	f.host.DatabaseAvailabilityChanged(true)
	f.loop.Drain()

	require.Len(t, f.hashes, 1)
	assert.Contains(t, f.hashes[0], "screenPath=%2Fs2")
	assert.Equal(t, 1, f.host.Session().View().ScreenDepth, "queued stack contents survive the outage")
}

func TestHost_ExitWaitsForSaveOutcome(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	b := f.host.Bridge()
	b.SetInstanceID(f.ref(), "uuid-1")

	exited := false
	f.host.RequestExit(func() { exited = true })
	f.loop.Drain()
	assert.False(t, exited)
	assert.True(t, f.host.ExitPending())

	f.listener.EXPECT().SaveAllChangesFailed(entity.InstanceID("uuid-1")).Return().Once()
	b.SaveAllChangesFailed(f.ref(), "uuid-1")
	f.loop.Drain()
	assert.False(t, exited)
	assert.False(t, f.host.ExitPending(), "a failed outcome cancels the exit")

	f.host.RequestExit(func() { exited = true })
	f.loop.Drain()

	f.rows.EXPECT().MarkSaved(mock.Anything, "households", entity.InstanceID("uuid-1"), entity.SavepointIncomplete).
		Return(true, nil).Once()
	f.listener.EXPECT().SaveAllChangesCompleted(entity.InstanceID("uuid-1"), false).Return().Once()
	f.snaps.EXPECT().Delete(mock.Anything, "main").Return(nil).Once()
	b.SaveAllChangesCompleted(f.ref(), "uuid-1", false)
	f.loop.Drain()
	assert.True(t, exited)
}

func TestHost_ExitWithoutRowIsImmediate(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)

	f.snaps.EXPECT().Delete(mock.Anything, "main").Return(nil).Once()
	exited := false
	f.host.RequestExit(func() { exited = true })
	f.loop.Drain()
	assert.True(t, exited)
}

func TestHost_SnapshotAndRestore(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	b := f.host.Bridge()
	b.SetInstanceID(f.ref(), "uuid-1")
	b.PushScreenState(f.ref(), "/s3", "{}")

	var saved *entity.HostSnapshot
	f.snaps.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.HostSnapshot")).
		Run(func(_ context.Context, snap *entity.HostSnapshot) { saved = snap }).
		Return(nil).Once()
	require.NoError(t, f.host.Snapshot(context.Background()))
	require.NotNil(t, saved)
	assert.Equal(t, intake, saved.Form)
	assert.Equal(t, entity.InstanceID("uuid-1"), saved.InstanceID)
	assert.Equal(t, "/s3", saved.ScreenPath)

	g := newFixture(t)
	g.snaps.EXPECT().Get(mock.Anything, "main").Return(saved, nil).Once()
	g.rows.EXPECT().Get(mock.Anything, "households", entity.InstanceID("uuid-1")).
		Return(&entity.Row{TableID: "households", InstanceID: "uuid-1"}, nil).Once()

	ok, err := g.host.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	g.loop.Drain()
	require.Len(t, g.loads, 1)
	assert.Contains(t, g.loads[0], "instanceId=uuid-1")
	assert.Contains(t, g.loads[0], "screenPath=%2Fs3")
}

// An instance interrupted before its first save has no row yet; the restored
// page must still bind it.
func TestHost_RestoreInstanceWithoutSavedRow(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	b := f.host.Bridge()
	b.SetInstanceID(f.ref(), "uuid-new")
	b.PushScreenState(f.ref(), "/s3", "{}")

	var saved *entity.HostSnapshot
	f.snaps.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.HostSnapshot")).
		Run(func(_ context.Context, snap *entity.HostSnapshot) { saved = snap }).
		Return(nil).Once()
	require.NoError(t, f.host.Snapshot(context.Background()))
	require.NotNil(t, saved)

	g := newFixture(t)
	g.snaps.EXPECT().Get(mock.Anything, "main").Return(saved, nil).Once()
	g.rows.EXPECT().Get(mock.Anything, "households", entity.InstanceID("uuid-new")).Return(nil, nil).Once()

	ok, err := g.host.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	g.loop.Drain()

	require.Len(t, g.loads, 1)
	assert.Contains(t, g.loads[0], "instanceId=uuid-new")
	assert.Contains(t, g.loads[0], "screenPath=%2Fs3")
	assert.Equal(t, control.DecisionFull, g.host.LastResult().Decision)
	assert.NoError(t, g.host.LastResult().Err)
	assert.False(t, g.host.Controller().Blocked())
}

func TestHost_CloseDropsBridgeCalls(t *testing.T) {
	f := newFixture(t)
	f.openAndLoad(t)
	ref := f.ref()

	f.host.Close()
	f.host.Bridge().PushScreenState(ref, "/x", "{}")
	assert.False(t, f.host.Bridge().IsAttached())
	assert.Zero(t, f.host.Session().View().ScreenDepth)
}
