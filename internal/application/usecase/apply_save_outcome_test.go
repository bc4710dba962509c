package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/formbridge/internal/application/port/mocks"
	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/domain/entity"
	repomocks "github.com/bnema/formbridge/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var householdsIntake = entity.FormReference{AppName: "survey", TableID: "households", FormID: "intake"}

func TestApplySaveOutcome_CompletedSaveMarksRow(t *testing.T) {
	ctx := testContext()
	rows := repomocks.NewMockRowRepository(t)
	listener := portmocks.NewMockHostListener(t)

	rows.EXPECT().MarkSaved(mock.Anything, "households", entity.InstanceID("uuid:1"), entity.SavepointComplete).
		Return(true, nil).Once()
	listener.EXPECT().SaveAllChangesCompleted(entity.InstanceID("uuid:1"), true).Return().Once()

	uc := usecase.NewApplySaveOutcomeUseCase(rows, listener)
	err := uc.Execute(ctx, householdsIntake, entity.SaveOutcome{
		Kind:       entity.OutcomeSaveCompleted,
		RefID:      "r1",
		InstanceID: "uuid:1",
		AsComplete: true,
	})
	require.NoError(t, err)
}

func TestApplySaveOutcome_IncompleteSave(t *testing.T) {
	ctx := testContext()
	rows := repomocks.NewMockRowRepository(t)
	listener := portmocks.NewMockHostListener(t)

	rows.EXPECT().MarkSaved(mock.Anything, "households", entity.InstanceID("uuid:1"), entity.SavepointIncomplete).
		Return(false, nil).Once()
	listener.EXPECT().SaveAllChangesCompleted(entity.InstanceID("uuid:1"), false).Return().Once()

	uc := usecase.NewApplySaveOutcomeUseCase(rows, listener)
	require.NoError(t, uc.Execute(ctx, householdsIntake, entity.SaveOutcome{
		Kind:       entity.OutcomeSaveCompleted,
		InstanceID: "uuid:1",
	}))
}

func TestApplySaveOutcome_RowWriteFailureReportsFailedSave(t *testing.T) {
	ctx := testContext()
	rows := repomocks.NewMockRowRepository(t)
	listener := portmocks.NewMockHostListener(t)

	rows.EXPECT().MarkSaved(mock.Anything, "households", entity.InstanceID("uuid:1"), entity.SavepointComplete).
		Return(false, errors.New("disk I/O error")).Once()
	listener.EXPECT().SaveAllChangesFailed(entity.InstanceID("uuid:1")).Return().Once()

	uc := usecase.NewApplySaveOutcomeUseCase(rows, listener)
	err := uc.Execute(ctx, householdsIntake, entity.SaveOutcome{
		Kind:       entity.OutcomeSaveCompleted,
		InstanceID: "uuid:1",
		AsComplete: true,
	})
	assert.Error(t, err)
}

func TestApplySaveOutcome_FailuresAndIgnoresNeverTouchRows(t *testing.T) {
	ctx := testContext()
	rows := repomocks.NewMockRowRepository(t)
	listener := portmocks.NewMockHostListener(t)

	listener.EXPECT().SaveAllChangesFailed(entity.InstanceID("uuid:1")).Return().Once()
	listener.EXPECT().IgnoreAllChangesCompleted(entity.InstanceID("uuid:2")).Return().Once()
	listener.EXPECT().IgnoreAllChangesFailed(entity.InstanceID("uuid:3")).Return().Once()

	uc := usecase.NewApplySaveOutcomeUseCase(rows, listener)
	require.NoError(t, uc.Execute(ctx, householdsIntake, entity.SaveOutcome{Kind: entity.OutcomeSaveFailed, InstanceID: "uuid:1"}))
	require.NoError(t, uc.Execute(ctx, householdsIntake, entity.SaveOutcome{Kind: entity.OutcomeIgnoreCompleted, InstanceID: "uuid:2"}))
	require.NoError(t, uc.Execute(ctx, householdsIntake, entity.SaveOutcome{Kind: entity.OutcomeIgnoreFailed, InstanceID: "uuid:3"}))
}

func TestApplySaveOutcome_UnknownKind(t *testing.T) {
	uc := usecase.NewApplySaveOutcomeUseCase(repomocks.NewMockRowRepository(t), nil)
	err := uc.Execute(testContext(), householdsIntake, entity.SaveOutcome{Kind: "bogus"})
	assert.Error(t, err)
}
