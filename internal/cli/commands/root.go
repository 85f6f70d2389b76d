// Package commands provides CLI command implementations for remocode.
package commands

import (
	"context"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/spf13/cobra"
)

var (
	flagRecords string
	flagFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "remocode",
	Short: "Next-code generator for the pet removal dashboard",
	Long: `remocode computes the next removal code, preventive contract code or contract
number from a snapshot of the dashboard's records.

It never writes records. The dashboard persists the code it receives, and must
serialize generation and persistence if two users can create records at once.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRecords, "records", "", "Record snapshot file (YAML or JSON); overrides the project configuration")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format (pretty, json); defaults to the project configuration")
	RegisterLoggerFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(sequenceCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// ExecuteContext runs the root command and reports any error through the active formatter
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_ = ui.GlobalFormatter.OutputError(err)
	}
	return err
}
