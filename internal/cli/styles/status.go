package styles

import (
	"fmt"
	"strings"
)

// StatusReport is what 'formbridge status' shows.
type StatusReport struct {
	ConfigFile    string
	FormsRoot     string
	AppName       string
	BaseURLMode   string
	DatabasePath  string
	SchemaVersion int64
	// MigrationsApplied and MigrationsPending count embedded migrations.
	MigrationsApplied int
	MigrationsPending int
	DatabaseErr       error
	Forms             int
	// SavedHost is the form a restore would reopen, empty when none.
	SavedHost string
}

// RenderStatus renders the status report in a box.
func RenderStatus(theme *Theme, s StatusReport) string {
	key := theme.Subtle
	db := theme.SuccessStyle.Render(fmt.Sprintf("%s schema v%d", IconCheck, s.SchemaVersion)) +
		key.Render(fmt.Sprintf(" (%d applied)", s.MigrationsApplied))
	if s.MigrationsPending > 0 {
		db = theme.WarningStyle.Render(fmt.Sprintf("%s schema v%d, %d pending", IconWarning, s.SchemaVersion, s.MigrationsPending))
	}
	if s.DatabaseErr != nil {
		db = theme.ErrorStyle.Render(IconX + " " + s.DatabaseErr.Error())
	}
	saved := s.SavedHost
	if saved == "" {
		saved = "-"
	}

	lines := []string{
		theme.BoxHeader.Render(IconForm + " formbridge"),
		key.Render("config    ") + theme.Normal.Render(s.ConfigFile),
		key.Render("forms     ") + theme.Normal.Render(s.FormsRoot),
		key.Render("app       ") + theme.Highlight.Render(s.AppName) + key.Render(fmt.Sprintf(" (%d registered)", s.Forms)),
		key.Render("base url  ") + theme.Normal.Render(s.BaseURLMode),
		key.Render("database  ") + theme.Normal.Render(s.DatabasePath),
		key.Render("          ") + db,
		key.Render("restore   ") + theme.Normal.Render(saved),
	}
	return theme.Box.Render(strings.Join(lines, "\n"))
}
