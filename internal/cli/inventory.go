package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/logging"
	"github.com/rshade/carbonfocus/internal/tui"
)

// defaultThresholdExitCode is used by --fail-above when --exit-code is not set.
const defaultThresholdExitCode = 2

// calculateOutput is the JSON shape of inventory calculate.
type calculateOutput struct {
	engine.Result
	Equivalencies greenops.Summary `json:"equivalencies"`
}

// breakdownRow is one NDJSON record of inventory calculate.
type breakdownRow struct {
	Scope     string  `json:"scope"`
	Category  string  `json:"category"`
	Label     string  `json:"label"`
	Emissions float64 `json:"emissions"`
	Share     float64 `json:"share"`
}

// NewInventoryCalculateCmd creates the inventory calculate command.
func NewInventoryCalculateCmd() *cobra.Command {
	var (
		interactive bool
		failAbove   float64
		exitCode    int
	)

	cmd := &cobra.Command{
		Use:   "calculate FILE...",
		Short: "Calculate a Scope 1/2/3 inventory from activity files",
		Long: `Reads one or more YAML or JSON activity files, validates them, and
aggregates their Scope 1, 2 and 3 emissions in tCO2e.

Multiple files are loaded concurrently and merged in argument order; the
organization profile comes from the first file. The result is saved as the
current session so that targets, benchmark, credits, strategies and report
can work from it without re-reading the files.`,
		Example: `  # Calculate from a single activity file
  carbonfocus inventory calculate activity.yaml

  # Merge several sites and emit JSON
  carbonfocus inventory calculate plant.yaml office.yaml --output json

  # Browse the breakdown interactively
  carbonfocus inventory calculate activity.yaml --interactive

  # Fail a pipeline when the total exceeds 500 tCO2e
  carbonfocus inventory calculate activity.yaml --fail-above 500 --exit-code 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventoryCalculate(cmd, args, interactive, failAbove, exitCode)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"browse the breakdown in an interactive viewer (requires a terminal)")
	cmd.Flags().Float64Var(&failAbove, "fail-above", 0,
		"exit with --exit-code when the total exceeds this many tCO2e (0 disables)")
	cmd.Flags().IntVar(&exitCode, "exit-code", defaultThresholdExitCode,
		"exit code used when --fail-above is exceeded (1-255)")

	return cmd
}

func runInventoryCalculate(
	cmd *cobra.Command,
	files []string,
	interactive bool,
	failAbove float64,
	exitCode int,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if failAbove < 0 {
		return fmt.Errorf("--fail-above must be >= 0, got %s", strconv.FormatFloat(failAbove, 'f', -1, 64))
	}
	if exitCode < 1 || exitCode > 255 {
		return fmt.Errorf("--exit-code must be between 1 and 255, got %d", exitCode)
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	res, err := eng.CalculateFiles(ctx, files)
	if err != nil {
		return err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "inventory_calculate").
		Int("files", len(files)).
		Float64("total", res.Snapshot.Total).
		Msg("inventory calculated")

	if interactive {
		if !isWriterTerminal(cmd.OutOrStdout()) {
			return errors.New("--interactive requires a terminal; use --output table, json or ndjson instead")
		}
		title := res.Organization.Name
		if title == "" {
			title = "Emissions inventory"
		}
		p := tea.NewProgram(tui.NewInventoryModel(ctx, title, res.Snapshot), tea.WithAltScreen())
		if _, err = p.Run(); err != nil {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
	} else if err = renderCalculate(cmd.OutOrStdout(), format, res); err != nil {
		return err
	}

	return checkThreshold(cmd, res.Snapshot.Total, failAbove, exitCode)
}

// checkThreshold returns a ThresholdExitError when total exceeds limit.
func checkThreshold(cmd *cobra.Command, total, limit float64, exitCode int) error {
	if limit <= 0 || total <= limit {
		return nil
	}
	reason := fmt.Sprintf("total emissions %s tCO2e exceed the limit of %s tCO2e",
		formatEmissions(total), formatEmissions(limit))
	if isWriterTerminal(cmd.ErrOrStderr()) {
		cmd.PrintErrln(warnStyle.Render(reason))
	}
	cmd.SilenceUsage = true
	return &ThresholdExitError{ExitCode: exitCode, Reason: reason}
}

func renderCalculate(w io.Writer, format string, res engine.Result) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, calculateOutput{Result: res, Equivalencies: greenops.FromSnapshot(res.Snapshot)})
	case config.FormatNDJSON:
		return writeNDJSON(w, breakdownRows(res.Snapshot))
	default:
		return renderCalculateTable(w, res)
	}
}

func breakdownRows(snap inventory.Snapshot) []breakdownRow {
	var rows []breakdownRow
	for _, scope := range factors.Scopes() {
		for _, line := range snap.ScopeBreakdown(scope) {
			share := 0.0
			if snap.Total != 0 {
				share = line.Emissions / snap.Total * 100
			}
			rows = append(rows, breakdownRow{
				Scope:     scope.String(),
				Category:  line.Category.String(),
				Label:     line.Label,
				Emissions: line.Emissions,
				Share:     share,
			})
		}
	}
	return rows
}

func renderCalculateTable(w io.Writer, res engine.Result) error {
	org := res.Organization
	title := "Emissions inventory"
	if org.Name != "" {
		title = fmt.Sprintf("Emissions inventory: %s", org.Name)
	}
	heading(w, title)
	if org.Industry != "" {
		fmt.Fprintf(w, "Industry: %s  Employees: %d  Reporting year: %d\n", org.Industry, org.Employees, org.Year)
	}
	if len(res.Files) > 1 {
		fmt.Fprintf(w, "Sources: %d files\n", len(res.Files))
	}
	fmt.Fprintln(w)

	snap := res.Snapshot
	t := newTable(w, "Scope", "Category", "Emissions (tCO2e)", "Share")
	for _, row := range breakdownRows(snap) {
		t.row(row.Scope, row.Label, formatEmissions(row.Emissions), formatPercent(row.Share))
	}
	if err := t.flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	totals := newTable(w, "Scope", "Emissions (tCO2e)", "Share")
	for _, scope := range factors.Scopes() {
		totals.row(scope.String(), formatEmissions(snap.ScopeTotal(scope)), formatPercent(snap.Share(scope)))
	}
	totals.row("TOTAL", formatEmissions(snap.Total), "")
	if err := totals.flush(); err != nil {
		return err
	}

	if eq := greenops.FromSnapshot(snap); !eq.IsEmpty {
		fmt.Fprintln(w)
		note(w, eq.DisplayText)
	}
	return nil
}

// factorRow is one JSON/NDJSON record of inventory factors.
type factorRow struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Scope       string  `json:"scope"`
	Unit        string  `json:"unit"`
	Factor      float64 `json:"factor"`
	PassThrough bool    `json:"pass_through,omitempty"`
}

type regionRow struct {
	Region string  `json:"region"`
	Factor float64 `json:"factor"`
}

// NewInventoryFactorsCmd creates the inventory factors command.
func NewInventoryFactorsCmd() *cobra.Command {
	var scope int

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List emission factors and activity category keys",
		Long: `Lists every activity category with its key, unit and emission factor in
tCO2e per unit, followed by the grid electricity factors per region.
Category keys are what activity files use under scope1, scope2 and scope3.`,
		Example: `  # All categories and regions
  carbonfocus inventory factors

  # Only Scope 3 categories, as JSON
  carbonfocus inventory factors --scope 3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInventoryFactors(cmd, scope)
		},
	}

	cmd.Flags().IntVar(&scope, "scope", 0, "only list categories of this scope (1, 2 or 3)")

	return cmd
}

func runInventoryFactors(cmd *cobra.Command, scope int) error {
	if scope < 0 || scope > 3 {
		return fmt.Errorf("--scope must be 1, 2 or 3, got %d", scope)
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	var rows []factorRow
	for _, d := range factors.All() {
		if scope != 0 && int(d.Scope) != scope {
			continue
		}
		rows = append(rows, factorRow{
			Key:         d.Key,
			Label:       d.Label,
			Scope:       d.Scope.String(),
			Unit:        d.Unit,
			Factor:      d.Factor,
			PassThrough: d.PassThrough,
		})
	}
	regions := make([]regionRow, 0, len(factors.Regions()))
	for _, r := range factors.Regions() {
		regions = append(regions, regionRow{Region: r.String(), Factor: factors.ElectricityFactorFor(r)})
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, map[string]any{"categories": rows, "electricity_regions": regions})
	case config.FormatNDJSON:
		return writeNDJSON(w, rows)
	}

	t := newTable(w, "Key", "Label", "Scope", "Unit", "Factor")
	for _, r := range rows {
		factor := strconv.FormatFloat(r.Factor, 'g', -1, 64)
		switch {
		case r.PassThrough:
			factor = "entered as tCO2e"
		case r.Factor == 0:
			factor = "by region"
		}
		t.row(r.Key, r.Label, r.Scope, r.Unit, factor)
	}
	if err = t.flush(); err != nil {
		return err
	}

	if scope == 0 || scope == int(factors.Scope2) {
		fmt.Fprintln(w)
		rt := newTable(w, "Region", "tCO2e per kWh")
		for _, r := range regions {
			rt.row(r.Region, strconv.FormatFloat(r.Factor, 'g', -1, 64))
		}
		return rt.flush()
	}
	return nil
}
