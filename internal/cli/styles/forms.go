package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/formbridge/internal/domain/entity"
)

// FormsRenderer renders form registry output.
type FormsRenderer struct {
	theme *Theme
}

// NewFormsRenderer creates a renderer using theme.
func NewFormsRenderer(theme *Theme) *FormsRenderer {
	return &FormsRenderer{theme: theme}
}

// RenderList renders registered forms as a table.
func (r *FormsRenderer) RenderList(appName string, forms []*entity.Form) string {
	header := fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconFolder),
		r.theme.Title.Render(appName),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d forms", len(forms))),
	)
	if len(forms) == 0 {
		return header + "\n" + r.theme.Subtle.Render("  no forms registered, run 'formbridge forms refresh'")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("TABLE", "FORM", "VERSION", "TITLE", "MODIFIED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Highlight.Padding(0, 1)
			}
			return r.theme.Normal.Padding(0, 1)
		})
	for _, f := range forms {
		version := f.Reference.Version
		if version == "" {
			version = "-"
		}
		t.Row(f.Reference.TableID, f.Reference.FormID, version, f.Title, formatTime(f.LastModified))
	}
	return header + "\n" + t.Render()
}

// RefreshSummary is what a registry refresh reports.
type RefreshSummary struct {
	AppName                          string
	Added, Updated, Removed, Skipped int
}

// RenderRefresh renders a one-line refresh summary.
func (r *FormsRenderer) RenderRefresh(s RefreshSummary) string {
	parts := []string{
		r.theme.SuccessStyle.Render(fmt.Sprintf("+%d", s.Added)),
		r.theme.Highlight.Render(fmt.Sprintf("~%d", s.Updated)),
		r.theme.ErrorStyle.Render(fmt.Sprintf("-%d", s.Removed)),
	}
	line := fmt.Sprintf("%s %s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Title.Render(s.AppName), strings.Join(parts, " "))
	if s.Skipped > 0 {
		line += " " + r.theme.WarningStyle.Render(fmt.Sprintf("%s %d skipped", IconWarning, s.Skipped))
	}
	return line
}

// RenderResolved renders a resolved form location and page URL.
func (r *FormsRenderer) RenderResolved(loc *entity.FormLocation, page entity.PageURL) string {
	key := r.theme.Subtle
	lines := []string{
		r.theme.BoxHeader.Render(IconForm + " " + loc.Reference.String()),
		key.Render("directory  ") + r.theme.Normal.Render(loc.FormDir),
		key.Render("definition ") + r.theme.Normal.Render(loc.DefinitionPath),
		key.Render("form path  ") + r.theme.Normal.Render(loc.FormPath),
		key.Render("modified   ") + r.theme.Normal.Render(formatTime(loc.LastModified)),
		key.Render("base url   ") + r.theme.Highlight.Render(page.BaseURL),
		key.Render("hash       ") + r.theme.Normal.Render(page.Hash),
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
