package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoShort(t *testing.T) {
	assert.Equal(t, "dev", Info{}.Short())
	assert.Equal(t, "v0.3.0", Info{Version: "v0.3.0", Commit: "unknown"}.Short())
	assert.Equal(t, "v0.3.0 (1a2b3c4)", Info{Version: "v0.3.0", Commit: "1a2b3c4d5e6f"}.Short())
}
