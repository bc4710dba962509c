package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/formbridge/internal/app/bridge"
	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/domain/entity"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if versionShort {
			fmt.Println(a.BuildInfo.Short())
			return nil
		}
		fmt.Println(styles.NewAboutRenderer(a.Theme).Render(styles.AboutInfo{
			Build:          a.BuildInfo,
			BridgeProtocol: bridge.ProtocolVersion,
			SnapshotFormat: entity.HostSnapshotVersion,
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the version only")
}
