package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/infrastructure/persistence/sqlite"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, database and saved host state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	report := styles.StatusReport{
		FormsRoot:    a.Config.Forms.Root,
		AppName:      a.Config.Forms.AppName,
		BaseURLMode:  string(a.Config.Bridge.BaseURLMode),
		DatabasePath: a.Config.Database.Path,
	}
	if a.ConfigManager != nil {
		report.ConfigFile = a.ConfigManager.ConfigFile()
	}

	db, err := a.DB.DB(ctx)
	if err == nil {
		var schema sqlite.SchemaStatus
		schema, err = sqlite.ReadSchemaStatus(ctx, db)
		report.SchemaVersion = schema.Version
		report.MigrationsApplied = len(schema.Applied)
		report.MigrationsPending = len(schema.Pending)
	}
	if err != nil {
		report.DatabaseErr = err
		fmt.Println(styles.RenderStatus(a.Theme, report))
		return nil
	}

	if forms, listErr := a.Forms.List(ctx, a.Config.Forms.AppName); listErr == nil {
		report.Forms = len(forms)
	}
	if snap, snapErr := a.Snapshots.Get(ctx, serveHostID); snapErr == nil && snap != nil {
		report.SavedHost = snap.Form.String()
	}

	fmt.Println(styles.RenderStatus(a.Theme, report))
	return nil
}
