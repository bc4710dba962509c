package entity

// LoadPhase is the state of a page-load session.
type LoadPhase string

const (
	// PhaseFresh follows a full navigation: stacks empty, no instance bound.
	PhaseFresh LoadPhase = "fresh"
	// PhaseLoaded is entered when the page reports its framework finished loading.
	PhaseLoaded LoadPhase = "loaded"
	// PhaseNavigating covers push/pop cycles and hash-only transitions.
	PhaseNavigating LoadPhase = "navigating"
	// PhaseReloading is terminal for a session; a new RefId is being minted.
	PhaseReloading LoadPhase = "reloading"
)

// FrameworkStatus records what the page reported about its own startup.
type FrameworkStatus string

const (
	FrameworkUnknown FrameworkStatus = "unknown"
	FrameworkLoaded  FrameworkStatus = "loaded"
	FrameworkFailed  FrameworkStatus = "failed"
)

// PageURL is a resolved page address: the base URL identifying the entry page
// and the fragment the page reads its startup parameters from.
type PageURL struct {
	BaseURL string
	Hash    string
}

// Full returns BaseURL#Hash, or BaseURL alone when the hash is empty.
func (u PageURL) Full() string {
	if u.Hash == "" {
		return u.BaseURL
	}
	return u.BaseURL + "#" + u.Hash
}
