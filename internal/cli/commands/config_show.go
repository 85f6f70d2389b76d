package commands

import (
	"fmt"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showFormat string

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Long:  "Display the effective configuration, including environment overrides",
	Example: `  # Show configuration in YAML format (default)
  remocode config show

  # Show configuration in JSON format
  remocode config show --format json

  # Show configuration in pretty format
  remocode config show --format pretty`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVar(&showFormat, "format", "yaml", "Output format (yaml, json, pretty)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	mgr := config.NewManager(projectRoot)
	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch showFormat {
	case "json":
		return ui.NewJSONFormatter().Output(cfg)
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		ui.Output("%s", string(data))
		return nil
	case "pretty":
		showConfigPretty(mgr, cfg)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", showFormat)
	}
}

func showConfigPretty(mgr *config.Manager, cfg *config.Config) {
	ui.OutputLine("Project Configuration:")
	ui.OutputLine("  Root: %s", mgr.GetProjectRoot())
	ui.OutputLine("  Version: %s", cfg.Version)

	ui.OutputLine("\nRecords:")
	ui.OutputLine("  Snapshot: %s", mgr.ResolveRecordsPath(cfg))
	ui.OutputLine("  Lock timeout: %s", cfg.Records.LockTimeout)

	ui.OutputLine("\nFormats:")
	ui.OutputLine("  Removal start: %s", cfg.Formats.Removal.Start)
	ui.OutputLine("  Contract start: %s", cfg.Formats.Contract.Start)

	ui.OutputLine("\nOutput: %s", cfg.Output.Format)
}
