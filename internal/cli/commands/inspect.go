package commands

import (
	"fmt"

	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/record"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [removal|preventive|contract]...",
	Short: "Show how the snapshot looks to each code format",
	Long: `Show, per format, the latest valid code, the next code and how many records
carry a valid, malformed (ignored) or missing value.`,
	RunE: runInspect,
}

// inspectResult is the JSON shape of 'inspect'
type inspectResult struct {
	Path    string          `json:"path"`
	Missing bool            `json:"missing,omitempty"`
	Records int             `json:"records"`
	Formats []record.Report `json:"formats"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	snap, err := e.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	res := inspectResult{
		Path:    e.recordsPath,
		Missing: snap.Missing,
		Records: len(snap.Records),
	}
	for _, kind := range kinds {
		f, err := e.format(kind)
		if err != nil {
			return err
		}
		rep := snap.Report(f)
		if rep.Ignored > 0 {
			e.log.Info("ignored malformed values", "kind", kind, "count", rep.Ignored)
		}
		res.Formats = append(res.Formats, rep)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(res)
	}

	ui.OutputLine("%s %s", ui.DimStyle.Render("Snapshot:"), res.Path)
	if res.Missing {
		ui.Warning("snapshot file does not exist yet")
	}
	ui.OutputLine("%s %d", ui.DimStyle.Render("Records:"), res.Records)

	tbl := ui.NewTable("FORMAT", "LATEST", "NEXT", "VALID", "IGNORED", "MISSING")
	for _, rep := range res.Formats {
		next := rep.Next
		if rep.Error != "" {
			next = ui.ErrorStyle.Render("exhausted")
		}
		tbl.AddRow(rep.Kind, ui.Dash(rep.Latest), ui.Dash(next), rep.Valid, rep.Ignored, rep.Missing)
	}
	ui.PrintSectionHeader(ui.CodeIcon, "Formats", len(res.Formats))
	tbl.Print()

	for _, rep := range res.Formats {
		if rep.Error != "" {
			return fmt.Errorf("%s", rep.Error)
		}
	}
	return nil
}
