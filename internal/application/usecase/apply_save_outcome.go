package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/formbridge/internal/application/port"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/domain/repository"
	"github.com/bnema/formbridge/internal/logging"
)

// ApplySaveOutcomeUseCase records save outcomes on the host-side row and
// forwards them to the host listener.
type ApplySaveOutcomeUseCase struct {
	rows     repository.RowRepository
	listener port.HostListener
}

// NewApplySaveOutcomeUseCase creates the use case. A nil listener drops
// notifications.
func NewApplySaveOutcomeUseCase(rows repository.RowRepository, listener port.HostListener) *ApplySaveOutcomeUseCase {
	if listener == nil {
		listener = port.NopListener{}
	}
	return &ApplySaveOutcomeUseCase{rows: rows, listener: listener}
}

// Execute applies one outcome for the form identified by ref. Failures are
// always forwarded and never retried. A completed save whose row write fails
// is reported as a failed save.
func (uc *ApplySaveOutcomeUseCase) Execute(ctx context.Context, ref entity.FormReference, outcome entity.SaveOutcome) error {
	log := logging.FromContext(ctx).With().
		Str("outcome", string(outcome.Kind)).
		Str("instance_id", outcome.InstanceID.String()).
		Str("table_id", ref.TableID).
		Logger()

	switch outcome.Kind {
	case entity.OutcomeSaveCompleted:
		savepoint := entity.SavepointFor(outcome.AsComplete)
		changed, err := uc.rows.MarkSaved(ctx, ref.TableID, outcome.InstanceID, savepoint)
		if err != nil {
			log.Error().Err(err).Msg("failed to record save")
			uc.listener.SaveAllChangesFailed(outcome.InstanceID)
			return fmt.Errorf("record save of %s: %w", outcome.InstanceID, err)
		}
		log.Info().Bool("changed", changed).Str("savepoint", string(savepoint)).Msg("save recorded")
		uc.listener.SaveAllChangesCompleted(outcome.InstanceID, outcome.AsComplete)

	case entity.OutcomeSaveFailed:
		log.Warn().Msg("page reported save failure")
		uc.listener.SaveAllChangesFailed(outcome.InstanceID)

	case entity.OutcomeIgnoreCompleted:
		log.Info().Msg("changes discarded")
		uc.listener.IgnoreAllChangesCompleted(outcome.InstanceID)

	case entity.OutcomeIgnoreFailed:
		log.Warn().Msg("page reported discard failure")
		uc.listener.IgnoreAllChangesFailed(outcome.InstanceID)

	default:
		return fmt.Errorf("unknown outcome kind %q", outcome.Kind)
	}

	return nil
}
