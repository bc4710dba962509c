package entity

import "time"

// InstanceID identifies a filled-in row of a form. The empty value means no
// instance is bound ("new entry" mode).
type InstanceID string

// NoInstance is the absent InstanceID.
const NoInstance InstanceID = ""

// IsBound reports whether the id refers to a row.
func (id InstanceID) IsBound() bool {
	return id != NoInstance
}

func (id InstanceID) String() string {
	return string(id)
}

// Savepoint is the persisted save state of a row.
type Savepoint string

const (
	SavepointIncomplete Savepoint = "incomplete"
	SavepointComplete   Savepoint = "complete"
)

// SavepointFor maps the asComplete flag of a save onto a Savepoint.
func SavepointFor(asComplete bool) Savepoint {
	if asComplete {
		return SavepointComplete
	}
	return SavepointIncomplete
}

// Row is the host-side record of a form instance.
type Row struct {
	TableID    string
	InstanceID InstanceID
	Savepoint  Savepoint
	UpdatedAt  time.Time
}

// IsFinalized reports whether the row was saved as complete.
func (r *Row) IsFinalized() bool {
	return r != nil && r.Savepoint == SavepointComplete
}
