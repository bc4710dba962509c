package entity

// OutcomeKind tags a SaveOutcome.
type OutcomeKind string

const (
	OutcomeSaveCompleted   OutcomeKind = "save_completed"
	OutcomeSaveFailed      OutcomeKind = "save_failed"
	OutcomeIgnoreCompleted OutcomeKind = "ignore_completed"
	OutcomeIgnoreFailed    OutcomeKind = "ignore_failed"
)

// SaveOutcome is the result of a save or ignore-changes workflow run by the
// page. The host consumes each one exactly once.
type SaveOutcome struct {
	Kind       OutcomeKind
	RefID      RefID
	InstanceID InstanceID
	AsComplete bool
}

// IsFailure reports whether the outcome must reach the user-visible error path.
func (o SaveOutcome) IsFailure() bool {
	return o.Kind == OutcomeSaveFailed || o.Kind == OutcomeIgnoreFailed
}

// IsSave reports whether the outcome belongs to the save workflow.
func (o SaveOutcome) IsSave() bool {
	return o.Kind == OutcomeSaveCompleted || o.Kind == OutcomeSaveFailed
}

// DedupKey identifies a completed outcome for duplicate suppression.
func (o SaveOutcome) DedupKey() string {
	complete := "0"
	if o.AsComplete {
		complete = "1"
	}
	return string(o.RefID) + "|" + string(o.Kind) + "|" + string(o.InstanceID) + "|" + complete
}
