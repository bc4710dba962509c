package entity

import "time"

// HostSnapshotVersion is the serialization version of HostSnapshot.
const HostSnapshotVersion = 1

// HostSnapshot holds the host properties needed to rebuild the page after the
// process was interrupted. Stacks are not part of it: a restored host always
// starts with a full navigation.
type HostSnapshot struct {
	Version    int               `json:"version"`
	HostID     string            `json:"host_id"`
	Form       FormReference     `json:"form"`
	InstanceID InstanceID        `json:"instance_id,omitempty"`
	ScreenPath string            `json:"screen_path,omitempty"`
	AuxParams  map[string]string `json:"aux_params,omitempty"`
	SavedAt    time.Time         `json:"saved_at"`
}
