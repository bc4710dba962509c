package styles

import (
	"fmt"
	"strings"
)

// RunReport describes the state of a headless page after a run.
type RunReport struct {
	Form         string
	Location     string
	RefID        string
	Framework    string
	InstanceID   string
	ScreenDepth  int
	SectionDepth int
	Decision     string
	Messages     []string
	PageError    error
	Events       []string
}

// RenderRun renders a run report in a box.
func RenderRun(theme *Theme, r RunReport) string {
	key := theme.Subtle
	status := theme.SuccessStyle.Render(IconCheck + " " + r.Framework)
	if r.Framework != "loaded" {
		status = theme.ErrorStyle.Render(IconX + " " + r.Framework)
	}
	instance := r.InstanceID
	if instance == "" {
		instance = "-"
	}

	lines := []string{
		theme.BoxHeader.Render(IconForm + " " + r.Form),
		key.Render("location  ") + theme.Normal.Render(r.Location),
		key.Render("ref id    ") + theme.Normal.Render(r.RefID),
		key.Render("decision  ") + theme.Highlight.Render(r.Decision),
		key.Render("framework ") + status,
		key.Render("instance  ") + theme.Normal.Render(instance),
		key.Render("stacks    ") + theme.Normal.Render(fmt.Sprintf("screens %d, sections %d", r.ScreenDepth, r.SectionDepth)),
	}
	for _, msg := range r.Messages {
		lines = append(lines, key.Render("message   ")+theme.Normal.Render(msg))
	}
	if r.PageError != nil {
		lines = append(lines, key.Render("page error ")+theme.ErrorStyle.Render(r.PageError.Error()))
	}
	if len(r.Events) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("events"))
		for _, ev := range r.Events {
			lines = append(lines, "  "+theme.Subtle.Render(IconArrow)+" "+theme.Normal.Render(ev))
		}
	}
	return theme.Box.Render(strings.Join(lines, "\n"))
}
