package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	var (
		format string
		file   string
		inputs []string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a GHG emissions report for the inventory",
		Long: `Builds a report from the inventory: company information, the emissions
summary with scope shares, intensity and per-employee figures, the latest
reduction target, per-scope breakdowns, equivalencies and recommendations.

The target is the one last projected with 'targets project' for the saved
session. Formats are text, markdown and json.`,
		Example: `  # Print a text report
  carbonfocus report

  # Write Markdown to a file
  carbonfocus report --format markdown --file ghg-report.md

  # Report straight from an activity file
  carbonfocus report --input activity.yaml --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, format, file, inputs)
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatText, "report format: text, markdown, json")
	cmd.Flags().StringVar(&file, "file", "", "write the report to this file instead of stdout")
	addInputFlag(cmd, &inputs)

	return cmd
}

func runReport(cmd *cobra.Command, format, file string, inputs []string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case report.FormatText, report.FormatMarkdown, "md", report.FormatJSON:
	default:
		return fmt.Errorf("%w: %q (use text, markdown, or json)", report.ErrUnknownFormat, format)
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	cur, err := loadCurrent(cmd, eng, inputs)
	if err != nil {
		return err
	}
	rep := report.Build(cur.Profile, cur.Snapshot, report.Options{Target: cur.Target})

	if file == "" {
		w := cmd.OutOrStdout()
		return report.Render(w, rep, format, isWriterTerminal(w))
	}

	if dir := filepath.Dir(file); dir != "." {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err = writeReport(f, rep, format); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	cmd.Printf("Report %s written to %s\n", rep.ID, file)
	return nil
}

func writeReport(w io.Writer, rep report.Report, format string) error {
	if err := report.Render(w, rep, format, false); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
