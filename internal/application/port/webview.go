// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (script VM, remote page, etc.).
package port

import "context"

// WebView is the rendering surface the host drives. Implementations only
// navigate; they never interpret bridge state.
type WebView interface {
	// LoadURL performs a full navigation. The page and its script state are
	// discarded and rebuilt from url (base URL plus fragment).
	LoadURL(ctx context.Context, url string) error

	// SetHash performs an in-page transition by replacing the fragment of
	// the currently loaded page.
	SetHash(ctx context.Context, hash string) error
}
