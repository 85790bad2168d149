package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
	"github.com/rshade/carbonfocus/internal/logging"
	"github.com/rshade/carbonfocus/internal/targets"
)

// projectOutput is the JSON shape of targets project.
type projectOutput struct {
	targets.Target
	Framework string `json:"framework,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Ambition  string `json:"ambition,omitempty"`
}

type projectFlags struct {
	baseEmissions float64
	reduction     float64
	framework     string
	baseYear      int
	targetYear    int
	inputs        []string
}

// NewTargetsProjectCmd creates the targets project command.
func NewTargetsProjectCmd() *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a compounding reduction target and its trajectory",
		Long: `Projects a reduction target from base emissions using a constant annual
compounding rate, and lists the year-by-year trajectory.

Base emissions default to the saved inventory total. The reduction comes from
--reduction, else the --framework preset, else targets.reduction_percentage
in the configuration. A preset's percentage is a 2030 milestone, so a preset
without --reduction always targets 2030. When the target year is 2030 the
ambition is compared with the industry average and best practice.`,
		Example: `  # Paris-aligned target from the saved inventory
  carbonfocus targets project --framework paris

  # Explicit base and percentage
  carbonfocus targets project --base-emissions 1000 --reduction 50 --base-year 2023 --target-year 2035`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTargetsProject(cmd, &flags)
		},
	}

	cmd.Flags().Float64Var(&flags.baseEmissions, "base-emissions", 0,
		"base-year emissions in tCO2e (default: saved inventory total)")
	cmd.Flags().Float64Var(&flags.reduction, "reduction", 0, "reduction percentage by the target year (0-100)")
	cmd.Flags().StringVar(&flags.framework, "framework", "",
		"target preset: paris, well-below-2c, 2c")
	cmd.Flags().IntVar(&flags.baseYear, "base-year", 0, "base year (default from config)")
	cmd.Flags().IntVar(&flags.targetYear, "target-year", 0, "target year (default from config)")
	addInputFlag(cmd, &flags.inputs)

	return cmd
}

func runTargetsProject(cmd *cobra.Command, flags *projectFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	policy := targets.Policy{
		ReductionPercentage: cfg.Targets.ReductionPercentage,
		BaseYear:            intOr(cmd, "base-year", flags.baseYear, cfg.Targets.BaseYear),
		TargetYear:          intOr(cmd, "target-year", flags.targetYear, cfg.Targets.TargetYear),
	}
	out := projectOutput{}
	if flags.framework != "" {
		fw, fwErr := targets.ParseFramework(flags.framework)
		if fwErr != nil {
			return fwErr
		}
		out.Framework = fw.Name
		if !cmd.Flags().Changed("reduction") {
			if cmd.Flags().Changed("target-year") && flags.targetYear != targets.MilestoneYear {
				return fmt.Errorf("%w: %s sets %.0f%% by %d, got --target-year %d (pass --reduction to choose a percentage)",
					targets.ErrMilestoneMismatch, fw.Name, fw.ReductionBy2030, targets.MilestoneYear, flags.targetYear)
			}
			policy.ReductionPercentage = fw.ReductionBy2030
			policy.TargetYear = targets.MilestoneYear
		}
	}
	if cmd.Flags().Changed("reduction") {
		policy.ReductionPercentage = flags.reduction
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	fromInventory := !cmd.Flags().Changed("base-emissions")
	if fromInventory {
		cur, loadErr := loadCurrent(cmd, eng, flags.inputs)
		if loadErr != nil {
			return loadErr
		}
		policy.BaseEmissions = cur.Snapshot.Total
		out.Industry = industryOr(cur.Profile, "")
	} else {
		policy.BaseEmissions = flags.baseEmissions
		out.Industry = configuredIndustry("")
	}

	t, err := targets.ProjectCompounding(policy)
	if err != nil {
		return err
	}
	out.Target = t
	if policy.TargetYear == targets.MilestoneYear {
		out.Ambition = targets.CompareAmbition(policy.ReductionPercentage, out.Industry)
	}

	if fromInventory {
		if recErr := eng.RecordTarget(ctx, t); recErr != nil {
			log := logging.FromContext(ctx)
			log.Warn().Ctx(ctx).Err(recErr).Msg("could not record target in session")
		}
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, out)
	case config.FormatNDJSON:
		return writeNDJSON(w, t.Trajectory)
	default:
		return renderProjectTable(w, out)
	}
}

func renderProjectTable(w io.Writer, out projectOutput) error {
	t := out.Target
	title := fmt.Sprintf("Reduction target %d → %d", t.BaseYear, t.TargetYear)
	if out.Framework != "" {
		title += " (" + out.Framework + ")"
	}
	heading(w, title)
	fmt.Fprintf(w, "Base emissions:     %s tCO2e\n", formatEmissions(t.BaseEmissions))
	fmt.Fprintf(w, "Target emissions:   %s tCO2e (-%s)\n",
		formatEmissions(t.TargetEmissions), formatPercent(t.ReductionPercentage))
	fmt.Fprintf(w, "Annual reduction:   %s per year (%s tCO2e in the first year)\n",
		greenops.FormatFloat(t.AnnualReductionPercentage, 2)+"%", formatEmissions(t.AnnualReductionAbsolute))
	if out.Ambition != "" {
		industry := out.Industry
		if industry == "" {
			industry = "Other"
		}
		fmt.Fprintf(w, "Ambition vs %s:  %s\n", industry, out.Ambition)
	}
	fmt.Fprintln(w)

	tbl := newTable(w, "Year", "Emissions (tCO2e)", "Reduction")
	for _, p := range t.Trajectory {
		tbl.row(strconv.Itoa(p.Year), formatEmissions(p.Emissions), formatPercent(p.ReductionFromBase))
	}
	return tbl.flush()
}

type pathwayFlags struct {
	baseEmissions float64
	annual        float64
	framework     string
	startYear     int
	endYear       int
	netZeroYear   int
	inputs        []string
}

// NewTargetsPathwayCmd creates the targets pathway command.
func NewTargetsPathwayCmd() *cobra.Command {
	var flags pathwayFlags

	cmd := &cobra.Command{
		Use:   "pathway",
		Short: "Project a linear net-zero pathway",
		Long: `Projects a linear pathway: each year removes a fixed percentage of the base
emissions until the net-zero year, after which emissions are zero.

The annual percentage and net-zero year come from the framework preset
(--framework, else targets.framework in the configuration). A Custom
framework requires --annual-reduction and --net-zero-year.`,
		Example: `  # Paris-aligned pathway to 2050 from the saved inventory
  carbonfocus targets pathway

  # Custom pathway
  carbonfocus targets pathway --framework custom --annual-reduction 5 --net-zero-year 2045 --base-emissions 800`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTargetsPathway(cmd, &flags)
		},
	}

	cmd.Flags().Float64Var(&flags.baseEmissions, "base-emissions", 0,
		"start-year emissions in tCO2e (default: saved inventory total)")
	cmd.Flags().Float64Var(&flags.annual, "annual-reduction", 0,
		"percentage of base emissions removed each year")
	cmd.Flags().StringVar(&flags.framework, "framework", "",
		"target preset: paris, well-below-2c, 2c, custom (default from config)")
	cmd.Flags().IntVar(&flags.startYear, "start-year", 0, "first year of the pathway (default: targets.base_year)")
	cmd.Flags().IntVar(&flags.endYear, "end-year", 0, "last year of the pathway (default: targets.end_year)")
	cmd.Flags().IntVar(&flags.netZeroYear, "net-zero-year", 0, "year emissions reach zero")
	addInputFlag(cmd, &flags.inputs)

	return cmd
}

func runTargetsPathway(cmd *cobra.Command, flags *pathwayFlags) error {
	cfg := config.GetGlobalConfig()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	name := flags.framework
	if name == "" {
		name = cfg.Targets.Framework
	}
	var policy targets.LinearPolicy
	if strings.EqualFold(name, targets.FrameworkCustom) {
		if !cmd.Flags().Changed("annual-reduction") || !cmd.Flags().Changed("net-zero-year") {
			return errors.New("a custom pathway needs --annual-reduction and --net-zero-year")
		}
	} else {
		fw, fwErr := targets.ParseFramework(name)
		if fwErr != nil {
			return fwErr
		}
		policy = fw.Pathway(0, 0)
	}
	policy.StartYear = intOr(cmd, "start-year", flags.startYear, cfg.Targets.BaseYear)
	policy.EndYear = intOr(cmd, "end-year", flags.endYear, cfg.Targets.EndYear)
	if cmd.Flags().Changed("annual-reduction") {
		policy.AnnualReductionPercentage = flags.annual
	}
	if cmd.Flags().Changed("net-zero-year") {
		policy.NetZeroYear = flags.netZeroYear
	}

	if cmd.Flags().Changed("base-emissions") {
		policy.BaseEmissions = flags.baseEmissions
	} else {
		eng, engErr := newEngine(cmd)
		if engErr != nil {
			return engErr
		}
		cur, loadErr := loadCurrent(cmd, eng, flags.inputs)
		if loadErr != nil {
			return loadErr
		}
		policy.BaseEmissions = cur.Snapshot.Total
	}

	points, err := targets.ProjectLinear(policy)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, points)
	case config.FormatNDJSON:
		return writeNDJSON(w, points)
	}

	heading(w, fmt.Sprintf("Net-zero pathway %d → %d (net zero in %d)",
		policy.StartYear, points[len(points)-1].Year, policy.NetZeroYear))
	fmt.Fprintln(w)
	tbl := newTable(w, "Year", "Emissions (tCO2e)", "Reduction")
	for _, p := range points {
		tbl.row(strconv.Itoa(p.Year), formatEmissions(p.Emissions), formatPercent(p.ReductionFromBase))
	}
	return tbl.flush()
}

// NewTargetsScopesCmd creates the targets scopes command.
func NewTargetsScopesCmd() *cobra.Command {
	var (
		pct    [3]float64
		inputs []string
	)

	cmd := &cobra.Command{
		Use:   "scopes",
		Short: "Set per-scope reduction targets and rank scopes by impact",
		Long: `Applies a reduction percentage to each scope subtotal of the inventory and
orders the scopes by absolute reduction, largest first. Percentages default to
targets.reduction_percentage in the configuration.`,
		Example: `  # Same percentage for every scope
  carbonfocus targets scopes

  # Different ambition per scope
  carbonfocus targets scopes --scope1 50 --scope2 80 --scope3 25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			byScope := make(map[factors.Scope]float64, len(pct))
			for i, scope := range factors.Scopes() {
				byScope[scope] = cfg.Targets.ReductionPercentage
				if cmd.Flags().Changed(scope.Key()) {
					byScope[scope] = pct[i]
				}
			}
			return runTargetsScopes(cmd, byScope, inputs)
		},
	}

	for i, scope := range factors.Scopes() {
		cmd.Flags().Float64Var(&pct[i], scope.Key(), 0,
			fmt.Sprintf("%s reduction percentage (default from config)", scope))
	}
	addInputFlag(cmd, &inputs)

	return cmd
}

func runTargetsScopes(cmd *cobra.Command, pct map[factors.Scope]float64, inputs []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	cur, err := loadCurrent(cmd, eng, inputs)
	if err != nil {
		return err
	}

	scopeTargets, err := targets.ScopeTargets(cur.Snapshot, pct)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(w, scopeTargets)
	case config.FormatNDJSON:
		return writeNDJSON(w, scopeTargets)
	}

	heading(w, "Scope targets (highest impact first)")
	fmt.Fprintln(w)
	tbl := newTable(w, "Priority", "Scope", "Current", "Reduction", "Target", "Avoided (tCO2e)")
	for i, st := range scopeTargets {
		tbl.row(strconv.Itoa(i+1), st.Name, formatEmissions(st.Current), formatPercent(st.ReductionPercentage),
			formatEmissions(st.Target), formatEmissions(st.Reduction))
	}
	return tbl.flush()
}

// NewTargetsFrameworksCmd creates the targets frameworks command.
func NewTargetsFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List science-based target presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, targets.Frameworks())
			case config.FormatNDJSON:
				return writeNDJSON(w, targets.Frameworks())
			}

			tbl := newTable(w, "Framework", "By 2030", "Annual", "Net zero")
			for _, f := range targets.Frameworks() {
				tbl.row(f.Name, formatPercent(f.ReductionBy2030), formatPercent(f.AnnualReductionPercentage),
					strconv.Itoa(f.NetZeroYear))
			}
			tbl.row(targets.FrameworkCustom, "-", "-", "-")
			return tbl.flush()
		},
	}
}

// intOr returns the flag value when it was set on the command line, else def.
func intOr(cmd *cobra.Command, name string, value, def int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return def
}
