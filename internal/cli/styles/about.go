package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/formbridge/internal/domain/build"
)

// AboutInfo is what 'formbridge version' prints.
type AboutInfo struct {
	Build build.Info
	// BridgeProtocol is the highest request version the bridge accepts.
	BridgeProtocol int
	// SnapshotFormat is the host snapshot version restores understand.
	SnapshotFormat int
}

// AboutRenderer renders build and protocol versions.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lays out the build stamp above the wire compatibility versions, so
// a page author can tell which hosts speak their bridge version.
func (r *AboutRenderer) Render(info AboutInfo) string {
	header := r.theme.BoxHeader.Render(IconForm + " formbridge " + info.Build.Short())

	buildRows := [][2]string{
		{"version", orUnknown(info.Build.Version)},
		{"commit", orUnknown(info.Build.Commit)},
		{"built", orUnknown(info.Build.BuildDate)},
		{"go", orUnknown(info.Build.GoVersion)},
	}
	wireRows := [][2]string{
		{"bridge", fmt.Sprintf("protocol v%d", info.BridgeProtocol)},
		{"snapshot", fmt.Sprintf("format v%d", info.SnapshotFormat)},
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		r.rows(IconVersion, buildRows),
		"",
		r.rows(IconLink, wireRows),
		"",
		r.theme.Subtle.Render(build.RepoURL()),
	)
	return r.theme.Box.Render(body)
}

func (r *AboutRenderer) rows(icon string, rows [][2]string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			iconStyle.Render(icon),
			r.theme.Subtle.Render(fmt.Sprintf("%-9s", row[0])),
			r.theme.Highlight.Render(row[1]),
		))
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
