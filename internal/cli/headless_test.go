package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/infrastructure/config"
	"github.com/bnema/formbridge/internal/infrastructure/tasks"
)

const testPage = `
function params() {
  var out = {};
  location.hash.substring(1).split("&").forEach(function (kv) {
    if (!kv) return;
    var p = kv.split("=");
    out[p[0]] = decodeURIComponent(p[1]);
  });
  return out;
}
var page = params();
var refId = page.refId;
shim.call("frameworkHasLoaded", refId, { success: true });
shim.call("pushScreenState", refId, { screenPath: page.screenPath || "0/0", state: "{}" });
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Forms.Root = filepath.Join(dir, "forms")
	cfg.Forms.AppName = "survey"
	cfg.Forms.Watch = false
	cfg.Database.Path = filepath.Join(dir, "formbridge.sqlite")
	cfg.Database.HealthIntervalMs = 100
	cfg.Logging.Level = "error"

	a, err := NewAppWithConfig(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func writeForm(t *testing.T, a *App, ref entity.FormReference, script string) {
	t.Helper()
	dir := filepath.Join(a.Config.Forms.Root, ref.AppName, filepath.FromSlash(ref.FormPath()))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	def := `{"specification":{"settings":{"form_id":{"value":"` + ref.FormID + `"},"table_id":{"value":"` + ref.TableID + `"},"survey":{"display":{"title":"Census"}}}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, entity.FormDefinitionFile), []byte(def), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, entity.FormEntryPage), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte(script), 0o644))
}

func TestRunHeadless_LoadsPageAndEvaluates(t *testing.T) {
	a := newTestApp(t)
	ref := entity.FormReference{AppName: "survey", TableID: "household", FormID: "census"}
	writeForm(t, a, ref, testPage)

	ctx, cancel := context.WithTimeout(a.Ctx(), 10*time.Second)
	defer cancel()

	report, results, err := a.RunHeadless(ctx, HeadlessOptions{
		Form:       ref,
		ScreenPath: "1/2",
		Evals:      []string{`shim.call("getScreenPath", refId)`, `shim.call("nope", refId)`},
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "1/2", results[0].Value)
	require.NoError(t, results[1].Err, "bridge errors never reach the page as exceptions")
	assert.Nil(t, results[1].Value)

	assert.Equal(t, "survey:household/census", report.Form)
	assert.Equal(t, string(entity.FrameworkLoaded), report.Framework)
	assert.Equal(t, 1, report.ScreenDepth)
	assert.Equal(t, "full", report.Decision)
	assert.NotEmpty(t, report.RefID)
	assert.Contains(t, report.Location, "screenPath=1%2F2")
	assert.NoError(t, report.PageError)
	assert.Contains(t, report.Events, "initialization-complete")
}

func TestRunHeadless_MissingForm(t *testing.T) {
	a := newTestApp(t)
	ref := entity.FormReference{AppName: "survey", TableID: "household", FormID: "missing"}

	ctx, cancel := context.WithTimeout(a.Ctx(), 10*time.Second)
	defer cancel()

	report, _, err := a.RunHeadless(ctx, HeadlessOptions{Form: ref})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFormNotFound)
	assert.Equal(t, string(entity.FrameworkUnknown), report.Framework)
	require.NotEmpty(t, report.Events)
	assert.Contains(t, report.Events[len(report.Events)-1], "resolution-failed")
}

func TestRunHeadless_PageNeverStarts(t *testing.T) {
	a := newTestApp(t)
	ref := entity.FormReference{AppName: "survey", TableID: "household", FormID: "silent"}
	writeForm(t, a, ref, `var quiet = true;`)

	ctx, cancel := context.WithTimeout(a.Ctx(), 300*time.Millisecond)
	defer cancel()

	_, _, err := a.RunHeadless(ctx, HeadlessOptions{Form: ref})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRuntime_RefreshForms(t *testing.T) {
	a := newTestApp(t)
	ref := entity.FormReference{AppName: "survey", TableID: "household", FormID: "census"}
	writeForm(t, a, ref, testPage)

	refreshed := make(chan tasks.Result[*usecase.RefreshFormsResult], 4)
	rt := a.NewRuntime(a.Ctx(), RuntimeOptions{
		View: nopView{},
		OnRefresh: func(res tasks.Result[*usecase.RefreshFormsResult]) {
			refreshed <- res
		},
	})
	defer func() { _ = rt.Close() }()

	ctx, cancel := context.WithTimeout(a.Ctx(), 10*time.Second)
	defer cancel()
	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- rt.Run(runCtx) }()

	rt.RefreshForms()
	select {
	case res := <-refreshed:
		require.NoError(t, res.Err)
		assert.Equal(t, 1, res.Value.Added)
	case <-ctx.Done():
		t.Fatal("refresh did not complete")
	}

	forms, err := a.Forms.List(ctx, "survey")
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, ref.Key(), forms[0].Reference.Key())

	require.NoError(t, rt.Sync(ctx))
	stop()
	require.NoError(t, <-done)
}

func TestRuntime_RunFailsBeforeStartingServices(t *testing.T) {
	a := newTestApp(t)
	a.Config.Forms.Watch = true
	require.NoError(t, os.MkdirAll(a.Config.Forms.Root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(a.Config.Forms.Root, "survey"), []byte("not a dir"), 0o644))

	rt := a.NewRuntime(a.Ctx(), RuntimeOptions{View: nopView{}})
	defer func() { _ = rt.Close() }()

	started := false
	err := rt.Run(a.Ctx(), func(context.Context) error {
		started = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create app forms dir")
	assert.False(t, started)
}

type nopView struct{}

func (nopView) LoadURL(context.Context, string) error { return nil }
func (nopView) SetHash(context.Context, string) error { return nil }
