package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/formbridge/internal/app/bridge"
	"github.com/bnema/formbridge/internal/infrastructure/config"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:       "schema [config|bridge]",
	Short:     "Print JSON schemas",
	Long:      `Print the JSON schema of config.toml or of the bridge wire envelope.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "bridge"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json next to config.toml")
}

func runSchema(_ *cobra.Command, args []string) error {
	kind := "config"
	if len(args) == 1 {
		kind = args[0]
	}

	switch kind {
	case "bridge":
		data, err := json.MarshalIndent(bridge.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal bridge schema: %w", err)
		}
		fmt.Println(string(data))
		return nil
	default:
		if schemaWrite {
			mgr, err := config.NewManager()
			if err != nil {
				return err
			}
			path, err := mgr.GenerateSchemaFile()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		}
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
}
