package commands

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage remocode configuration",
	Example: `  # View current configuration
  remocode config show

  # Validate configuration
  remocode config validate`,
}
