package commands

import (
	"fmt"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/config"
	"github.com/spf13/cobra"
)

var configValidateVerbose bool

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration file against its schema.

The file is checked as written; .env and REMOCODE_* overrides are then
applied and checked again.

This command checks:
- Required fields are present
- Start letters are single uppercase letters
- The lock timeout is a duration`,
	RunE: validateConfig,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configValidateCmd.Flags().BoolVarP(&configValidateVerbose, "verbose", "v", false, "Show detailed validation information")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	mgr := config.NewManager(projectRoot)

	// The file as written, before .env and REMOCODE_* overrides
	if err := config.ValidateFile(mgr.GetConfigPath()); err != nil {
		ui.Error("Configuration validation failed: %v", err)
		return fmt.Errorf("invalid configuration")
	}

	cfg, err := mgr.Load()
	if err != nil {
		ui.Error("Configuration validation failed: %v", err)
		return fmt.Errorf("invalid configuration")
	}

	ui.Success("Configuration is valid")

	if configValidateVerbose {
		ui.Info("Version: %s", cfg.Version)
		ui.Info("Records: %s", mgr.ResolveRecordsPath(cfg))
		ui.Info("Removal start: %s, contract start: %s", cfg.Formats.Removal.Start, cfg.Formats.Contract.Start)
	}

	return nil
}
