package commands

import (
	"fmt"
	"time"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/codegen"
	"github.com/aki/remocode/internal/core/record"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var nextDraft bool

var nextCmd = &cobra.Command{
	Use:   "next <removal|preventive|contract>",
	Short: "Print the next code for a format",
	Long: `Print the code that follows the latest valid code in the record snapshot.

Records whose code is missing or malformed are ignored. The result is not
reserved: persist it before asking for another one.`,
	Example: `  # Next removal code
  remocode next removal --records records.yaml

  # Draft record carrying the next contract number
  remocode next contract --draft`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"removal", "preventive", "contract"},
	RunE:      runNext,
}

func init() {
	nextCmd.Flags().BoolVar(&nextDraft, "draft", false, "Print a draft record with a new id instead of the bare code")
}

// nextResult is the JSON shape of 'next'
type nextResult struct {
	Kind codegen.Kind `json:"kind"`
	Code string       `json:"code"`
}

func runNext(cmd *cobra.Command, args []string) error {
	kind, err := codegen.ParseKind(args[0])
	if err != nil {
		return err
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

	code, err := f.Next(snap.CodesFor(kind))
	if err != nil {
		return fmt.Errorf("failed to generate %s code: %w", kind, err)
	}
	e.log.Debug("generated code", "kind", kind, "code", code, "records", len(snap.Records))

	if nextDraft {
		draft, err := record.NewDraft(kind, code, time.Now())
		if err != nil {
			return err
		}
		return outputDraft(draft)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(nextResult{Kind: kind, Code: code})
	}
	ui.Code(code)
	return nil
}

func outputDraft(draft record.Removal) error {
	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(draft)
	}
	data, err := yaml.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	ui.Output("%s", string(data))
	return nil
}
