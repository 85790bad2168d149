package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/benchmark"
	"github.com/rshade/carbonfocus/internal/config"
)

type benchmarkFlags struct {
	industry  string
	revenue   float64
	employees int
	list      bool
	inputs    []string
}

// NewBenchmarkCmd creates the benchmark command.
func NewBenchmarkCmd() *cobra.Command {
	var flags benchmarkFlags

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Compare the inventory with industry and national benchmarks",
		Long: `Computes emissions intensity (tCO2e per $M revenue) and emissions per
employee, classifies intensity against the industry benchmark, and compares
the company's scope distribution and per-employee figure with typical values.

Industry, revenue and employees default to the inventory's organization
profile. Unknown industries fall back to "Other".`,
		Example: `  # Benchmark the saved inventory
  carbonfocus benchmark

  # Benchmark against a different industry
  carbonfocus benchmark --industry "Financial Services"

  # List known industries
  carbonfocus benchmark --list-industries`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.industry, "industry", "", "industry to compare with (default: organization industry)")
	cmd.Flags().Float64Var(&flags.revenue, "revenue", 0, "annual revenue in $M (default: organization revenue)")
	cmd.Flags().IntVar(&flags.employees, "employees", 0, "employee count (default: organization employees)")
	cmd.Flags().BoolVar(&flags.list, "list-industries", false, "list the industries with benchmarks and exit")
	addInputFlag(cmd, &flags.inputs)

	return cmd
}

func runBenchmark(cmd *cobra.Command, flags *benchmarkFlags) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if flags.list {
		industries := benchmark.Industries()
		switch format {
		case config.FormatJSON:
			return writeJSON(w, industries)
		case config.FormatNDJSON:
			return writeNDJSON(w, industries)
		}
		tbl := newTable(w, "Industry", "Avg intensity", "Best", "Worst")
		for _, name := range industries {
			b := benchmark.IntensityFor(name)
			tbl.row(name, formatEmissions(b.Average), formatEmissions(b.Best), formatEmissions(b.Worst))
		}
		return tbl.flush()
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	cur, err := loadCurrent(cmd, eng, flags.inputs)
	if err != nil {
		return err
	}

	industry := flags.industry
	if industry == "" {
		industry = industryOr(cur.Profile, "Other")
	}
	revenue := cur.Profile.Revenue
	if cmd.Flags().Changed("revenue") {
		revenue = flags.revenue
	}
	employees := cur.Profile.Employees
	if cmd.Flags().Changed("employees") {
		employees = flags.employees
	}

	res := benchmark.Compare(cur.Snapshot, industry, revenue, employees)
	switch format {
	case config.FormatJSON:
		return writeJSON(w, res)
	case config.FormatNDJSON:
		return writeNDJSON(w, []benchmark.Result{res})
	default:
		return renderBenchmarkTable(w, res)
	}
}

func renderBenchmarkTable(w io.Writer, res benchmark.Result) error {
	heading(w, fmt.Sprintf("Benchmark: %s", res.Industry))
	fmt.Fprintf(w, "Emissions intensity:  %s tCO2e per $M revenue\n", formatEmissions(res.Intensity))
	fmt.Fprintf(w, "Industry average:     %s (best %s, worst %s)\n",
		formatEmissions(res.Benchmark.Average), formatEmissions(res.Benchmark.Best), formatEmissions(res.Benchmark.Worst))
	fmt.Fprintf(w, "Performance:          %s (%s vs average)\n", res.Class, signedPercent(res.GapToAverage))
	fmt.Fprintf(w, "Per employee:         %s tCO2e\n", formatEmissions(res.PerEmployee))
	fmt.Fprintln(w)

	dist := newTable(w, "Scope", "Company", "Industry typical")
	dist.row("Scope 1", formatPercent(res.Company.Scope1), formatPercent(res.IndustryTypical.Scope1))
	dist.row("Scope 2", formatPercent(res.Company.Scope2), formatPercent(res.IndustryTypical.Scope2))
	dist.row("Scope 3", formatPercent(res.Company.Scope3), formatPercent(res.IndustryTypical.Scope3))
	if err := dist.flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	countries := newTable(w, "Country", "Per capita (tCO2e)")
	for _, c := range res.CountryComparison {
		countries.row(c.Name, formatEmissions(c.PerCapita))
	}
	if err := countries.flush(); err != nil {
		return err
	}

	if res.NationalContext != "" {
		fmt.Fprintln(w)
		note(w, res.NationalContext)
	}
	return nil
}

func signedPercent(v float64) string {
	s := formatPercent(v)
	if v > 0 && !strings.HasPrefix(s, "+") {
		return "+" + s
	}
	return s
}
