package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/formbridge/internal/domain/build"
)

func TestAboutRenderer_ShowsWireVersions(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(AboutInfo{
		Build:          build.Info{Version: "v0.4.0", Commit: "1a2b3c4d5e"},
		BridgeProtocol: 1,
		SnapshotFormat: 2,
	})

	assert.Contains(t, out, "formbridge v0.4.0 (1a2b3c4)")
	assert.Contains(t, out, "protocol v1")
	assert.Contains(t, out, "format v2")
	assert.Contains(t, out, "unknown", "missing build date is spelled out")
	assert.Contains(t, out, build.RepoURL())
}
