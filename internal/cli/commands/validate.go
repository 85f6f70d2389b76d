package commands

import (
	"fmt"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/codegen"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <removal|preventive|contract> <code>...",
	Short: "Check codes against a format",
	Example: `  remocode validate removal A000123 a000123
  remocode validate preventive PRE_00000042`,
	Args: cobra.MinimumNArgs(2),
	RunE: runValidate,
}

// validation is one row of 'validate' output
type validation struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, err := codegen.ParseKind(args[0])
	if err != nil {
		return err
	}
	f, err := codegen.FormatFor(kind)
	if err != nil {
		return err
	}

	// validate needs no snapshot, only the output format
	if flagFormat != "" {
		format, err := ui.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		if err := ui.SetGlobalFormatter(format); err != nil {
			return err
		}
	}

	results := make([]validation, 0, len(args)-1)
	invalid := 0
	for _, code := range args[1:] {
		ok := f.Valid(code)
		if !ok {
			invalid++
		}
		results = append(results, validation{Code: code, Valid: ok})
	}

	if ui.GlobalFormatter.IsJSON() {
		if err := ui.GlobalFormatter.Output(results); err != nil {
			return err
		}
	} else {
		tbl := ui.NewTable("CODE", "VALID")
		for _, r := range results {
			mark := ui.SuccessStyle.Render("yes")
			if !r.Valid {
				mark = ui.ErrorStyle.Render("no")
			}
			tbl.AddRow(r.Code, mark)
		}
		tbl.Print()
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d codes are not valid %s codes", invalid, len(results), kind)
	}
	return nil
}
