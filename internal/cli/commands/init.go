package commands

import (
	"fmt"
	"os"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize remocode in the current directory",
	Long:  "Write .remocode/config.yaml pointing at the dashboard's record snapshot",
	RunE:  runInit,
}

var forceInit bool

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force initialization, overwriting existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	mgr := config.NewManager(cwd)
	if mgr.IsInitialized() && !forceInit {
		return fmt.Errorf("remocode already initialized. Use --force to reinitialize")
	}

	cfg, err := mgr.Init(flagRecords, forceInit)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	ui.Success("Initialized remocode in %s", cwd)
	ui.OutputLine("   %s %s", ui.DimStyle.Render("Config:"), mgr.GetConfigPath())
	ui.OutputLine("   %s %s", ui.DimStyle.Render("Records:"), mgr.ResolveRecordsPath(cfg))
	return nil
}
