package entity_test

import (
	"testing"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormReference_Validate(t *testing.T) {
	require.NoError(t, entity.FormReference{TableID: "census", FormID: "household"}.Validate())
	require.NoError(t, entity.FormReference{AppName: "default", TableID: "census", FormID: "household", Version: "2"}.Validate())

	require.ErrorIs(t, entity.FormReference{FormID: "household"}.Validate(), entity.ErrInvalidReference)
	require.ErrorIs(t, entity.FormReference{TableID: "census"}.Validate(), entity.ErrInvalidReference)
	require.ErrorIs(t, entity.FormReference{TableID: "..", FormID: "household"}.Validate(), entity.ErrInvalidReference)
	require.ErrorIs(t, entity.FormReference{TableID: "census", FormID: "a/b"}.Validate(), entity.ErrInvalidReference)
	require.ErrorIs(t, entity.FormReference{TableID: "census", FormID: "household", Version: `..\x`}.Validate(), entity.ErrInvalidReference)
}

func TestFormReference_FormPath(t *testing.T) {
	ref := entity.FormReference{TableID: "census", FormID: "household"}
	assert.Equal(t, "tables/census/forms/household/", ref.FormPath())
	assert.Equal(t, "census/household", ref.Key())

	ref.Version = "3"
	assert.Equal(t, "tables/census/forms/household/3/", ref.FormPath())
	assert.Equal(t, "census/household/3", ref.Key())
}

func TestSaveOutcome_Classification(t *testing.T) {
	failed := entity.SaveOutcome{Kind: entity.OutcomeSaveFailed}
	assert.True(t, failed.IsFailure())
	assert.True(t, failed.IsSave())

	ignored := entity.SaveOutcome{Kind: entity.OutcomeIgnoreCompleted}
	assert.False(t, ignored.IsFailure())
	assert.False(t, ignored.IsSave())

	a := entity.SaveOutcome{Kind: entity.OutcomeSaveCompleted, RefID: "r1", InstanceID: "uuid-1", AsComplete: true}
	b := a
	b.AsComplete = false
	assert.NotEqual(t, a.DedupKey(), b.DedupKey())
	assert.Equal(t, a.DedupKey(), a.DedupKey())
}

func TestPageURL_Full(t *testing.T) {
	assert.Equal(t, "file:///f/index.html", entity.PageURL{BaseURL: "file:///f/index.html"}.Full())
	assert.Equal(t, "file:///f/index.html#refId=r", entity.PageURL{BaseURL: "file:///f/index.html", Hash: "refId=r"}.Full())
}

func TestRow_IsFinalized(t *testing.T) {
	var nilRow *entity.Row
	assert.False(t, nilRow.IsFinalized())
	assert.True(t, (&entity.Row{Savepoint: entity.SavepointFor(true)}).IsFinalized())
	assert.False(t, (&entity.Row{Savepoint: entity.SavepointFor(false)}).IsFinalized())
}

func TestParseFormKey(t *testing.T) {
	ref, err := entity.ParseFormKey("default", "census/household")
	require.NoError(t, err)
	assert.Equal(t, entity.FormReference{AppName: "default", TableID: "census", FormID: "household"}, ref)

	ref, err = entity.ParseFormKey("", "/census/household/2024/")
	require.NoError(t, err)
	assert.Equal(t, "2024", ref.Version)
	assert.Equal(t, "census/household/2024", ref.Key())

	for _, bad := range []string{"census", "a/b/c/d", "census/..", ""} {
		_, err := entity.ParseFormKey("default", bad)
		assert.ErrorIs(t, err, entity.ErrInvalidReference, bad)
	}
}
