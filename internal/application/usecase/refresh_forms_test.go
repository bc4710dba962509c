package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	repomocks "github.com/bnema/formbridge/internal/domain/repository/mocks"
	"github.com/bnema/formbridge/internal/infrastructure/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, root string, ref entity.FormReference, body string) {
	t.Helper()
	dir := filepath.Join(root, ref.AppName, filepath.FromSlash(ref.FormPath()))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, entity.FormDefinitionFile), []byte(body), 0o600))
}

func newRefresh(t *testing.T, root string) (*usecase.RefreshFormsUseCase, *repomocks.MockFormRepository) {
	t.Helper()
	forms := repomocks.NewMockFormRepository(t)
	fs := filesystem.New()
	resolver := usecase.NewResolveFormUseCase(fs, nil, usecase.PageURLConfig{FormsRoot: root, AppName: "survey"})
	return usecase.NewRefreshFormsUseCase(fs, forms, resolver), forms
}

func TestRefreshForms_RegistersNewAndRemovesVanished(t *testing.T) {
	ctx := testContext()
	root := t.TempDir()

	intake := entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}
	intakeV2 := intake
	intakeV2.Version = "2"
	writeDefinition(t, root, intake, `{"specification":{"settings":{
		"form_id":{"setting_name":"form_id","value":"intake"},
		"survey":{"display":{"title":{"default":"Household intake"}}}}}}`)
	writeDefinition(t, root, intakeV2, `{"specification":{"settings":{
		"form_id":{"value":"intake"},"form_version":{"value":2},
		"survey":{"display":{"title":"Household intake v2"}}}}}`)
	// media directories are never versions
	require.NoError(t, os.MkdirAll(filepath.Join(root, "survey", "tables", "households", "forms", "intake", entity.FormMediaDir), 0o755))

	uc, forms := newRefresh(t, root)

	var saved []*entity.Form
	forms.EXPECT().FindByReference(mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	forms.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Form")).
		Run(func(_ context.Context, f *entity.Form) { saved = append(saved, f) }).
		Return(nil).Times(2)

	stale := entity.FormReference{AppName: "survey", TableID: "visits", FormID: "old"}
	forms.EXPECT().List(mock.Anything, "survey").Return([]*entity.Form{
		{Reference: intake}, {Reference: intakeV2}, {Reference: stale},
	}, nil).Once()
	forms.EXPECT().Delete(mock.Anything, stale).Return(nil).Once()

	result, err := uc.Execute(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, saved, 2)
	assert.Equal(t, intake, saved[0].Reference)
	assert.Equal(t, "Household intake", saved[0].Title)
	assert.Equal(t, intakeV2, saved[1].Reference)
	assert.Equal(t, "Household intake v2", saved[1].Title)
}

func TestRefreshForms_UnchangedFormsAreNotRewritten(t *testing.T) {
	ctx := testContext()
	root := t.TempDir()
	intake := entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}
	writeDefinition(t, root, intake, `{"specification":{"settings":{}}}`)

	uc, forms := newRefresh(t, root)

	resolver := usecase.NewResolveFormUseCase(filesystem.New(), nil, usecase.PageURLConfig{FormsRoot: root, AppName: "survey"})
	loc, err := resolver.ResolveFormLocation(ctx, intake)
	require.NoError(t, err)

	registered := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	forms.EXPECT().FindByReference(mock.Anything, intake).Return(&entity.Form{
		Reference:    intake,
		LastModified: loc.LastModified,
		RegisteredAt: registered,
	}, nil).Once()
	forms.EXPECT().List(mock.Anything, "survey").Return([]*entity.Form{{Reference: intake}}, nil).Once()

	result, err := uc.Execute(ctx, "survey")
	require.NoError(t, err)
	assert.Zero(t, result.Added+result.Updated+result.Removed)
	require.Len(t, result.Forms, 1)
	assert.Equal(t, registered, result.Forms[0].RegisteredAt)
}

func TestRefreshForms_SkipsMismatchedDefinitions(t *testing.T) {
	ctx := testContext()
	root := t.TempDir()
	ref := entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}
	writeDefinition(t, root, ref, `{"specification":{"settings":{"form_id":{"value":"other"}}}}`)

	bad := entity.FormReference{AppName: "survey", TableID: "households", FormID: "broken"}
	writeDefinition(t, root, bad, `{not json`)

	uc, forms := newRefresh(t, root)
	forms.EXPECT().List(mock.Anything, "survey").Return(nil, nil).Once()

	result, err := uc.Execute(ctx, "survey")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, result.Forms)
}
