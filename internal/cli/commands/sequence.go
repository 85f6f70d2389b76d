package commands

import (
	"fmt"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/codegen"
	"github.com/spf13/cobra"
)

var sequenceCount int

var sequenceCmd = &cobra.Command{
	Use:   "sequence <removal|preventive|contract>",
	Short: "Preview the next N codes",
	Long: `Preview the codes that would be handed out if N records were created one after
another, each persisted before the next request. Prefix carries are shown as they happen.`,
	Example: `  remocode sequence removal -n 5`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSequence,
}

func init() {
	sequenceCmd.Flags().IntVarP(&sequenceCount, "count", "n", 10, "Number of codes to preview")
}

// sequenceResult is the JSON shape of 'sequence'
type sequenceResult struct {
	Kind  codegen.Kind `json:"kind"`
	Codes []string     `json:"codes"`
	Error string       `json:"error,omitempty"`
}

func runSequence(cmd *cobra.Command, args []string) error {
	kind, err := codegen.ParseKind(args[0])
	if err != nil {
		return err
	}
	if sequenceCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", sequenceCount)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	f, err := e.format(kind)
	if err != nil {
		return err
	}

	snap, err := e.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	codes, genErr := codegen.Sequence(f, snap.CodesFor(kind), sequenceCount)

	if ui.GlobalFormatter.IsJSON() {
		res := sequenceResult{Kind: kind, Codes: codes}
		if genErr != nil {
			res.Error = genErr.Error()
		}
		if err := ui.GlobalFormatter.Output(res); err != nil {
			return err
		}
	} else if len(codes) > 0 {
		tbl := ui.NewTable("#", "CODE")
		for i, c := range codes {
			tbl.AddRow(i+1, c)
		}
		ui.PrintSectionHeader(ui.CodeIcon, fmt.Sprintf("Next %s codes", kind), len(codes))
		tbl.Print()
	}

	if genErr != nil {
		return fmt.Errorf("sequence stopped after %d codes: %w", len(codes), genErr)
	}
	return nil
}
