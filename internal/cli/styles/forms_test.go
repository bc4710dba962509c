package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/formbridge/internal/domain/entity"
)

func TestFormsRenderer_RenderList(t *testing.T) {
	r := NewFormsRenderer(NewTheme())
	out := r.RenderList("default", []*entity.Form{
		{Reference: entity.FormReference{AppName: "default", TableID: "households", FormID: "intake"}, Title: "Intake"},
		{Reference: entity.FormReference{AppName: "default", TableID: "households", FormID: "visit", Version: "2"}, Title: "Visit", LastModified: time.Now()},
	})

	assert.Contains(t, out, "households")
	assert.Contains(t, out, "Intake")
	assert.Contains(t, out, "2 forms")
}

func TestFormsRenderer_RenderListEmpty(t *testing.T) {
	out := NewFormsRenderer(NewTheme()).RenderList("default", nil)
	assert.Contains(t, out, "no forms registered")
}

func TestFormsRenderer_RenderRefresh(t *testing.T) {
	out := NewFormsRenderer(NewTheme()).RenderRefresh(RefreshSummary{AppName: "default", Added: 2, Skipped: 1})
	assert.Contains(t, out, "+2")
	assert.Contains(t, out, "1 skipped")
}
