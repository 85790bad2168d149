package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/credits"
)

// usd formats a dollar amount with cents.
func usd(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// NewCreditsTypesCmd creates the credits types command.
func NewCreditsTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List carbon credit types and their price ranges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, credits.Types())
			case config.FormatNDJSON:
				return writeNDJSON(w, credits.Types())
			}

			tbl := newTable(w, "Type", "Min", "Average", "Max")
			for _, t := range credits.Types() {
				tbl.row(t.Name, usd(t.MinPrice), usd(t.AvgPrice), usd(t.MaxPrice))
			}
			if err = tbl.flush(); err != nil {
				return err
			}
			note(w, "Prices are USD per tCO2e.")
			return nil
		},
	}
}

// NewCreditsProjectsCmd creates the credits projects command.
func NewCreditsProjectsCmd() *cobra.Command {
	var creditType string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List sample offset projects",
		Example: `  carbonfocus credits projects
  carbonfocus credits projects --type "Renewable Energy"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			projects := credits.Projects()
			if creditType != "" {
				t, typeErr := credits.TypeByName(creditType)
				if typeErr != nil {
					return typeErr
				}
				projects = credits.ProjectsOfType(t.Name)
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, projects)
			case config.FormatNDJSON:
				return writeNDJSON(w, projects)
			}

			tbl := newTable(w, "Project", "Type", "Location", "Price", "Available", "Certification")
			for _, p := range projects {
				tbl.row(p.Name, p.Type, p.Location, usd(p.PricePerCredit),
					strconv.FormatInt(p.AvailableCredits, 10), p.Certification)
			}
			return tbl.flush()
		},
	}

	cmd.Flags().StringVar(&creditType, "type", "", "only list projects of this credit type")

	return cmd
}

// estimateOutput is the JSON shape of credits estimate.
type estimateOutput struct {
	Amount  decimal.Decimal     `json:"amount"`
	Costs   []credits.CostRange `json:"costs"`
	Project string              `json:"project,omitempty"`
	Cost    *decimal.Decimal    `json:"cost,omitempty"`
}

// NewCreditsEstimateCmd creates the credits estimate command.
func NewCreditsEstimateCmd() *cobra.Command {
	var (
		amount     string
		percentage float64
		project    string
		inputs     []string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of offsetting emissions",
		Long: `Estimates the cost of offsetting an amount of tCO2e at the minimum, average
and maximum price of every credit type. The amount is given directly with
--amount, or as --percentage of the inventory total. With --project the cost
at that project's price is shown too.`,
		Example: `  # Offset a quarter of the saved inventory
  carbonfocus credits estimate --percentage 25

  # Price 120 tCO2e at a specific project
  carbonfocus credits estimate --amount 120 --project "Wind Farm Development"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			var qty decimal.Decimal
			switch {
			case amount != "" && cmd.Flags().Changed("percentage"):
				return errors.New("use either --amount or --percentage, not both")
			case amount != "":
				qty, err = decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("%w: %w", credits.ErrInvalidAmount, err)
				}
				if qty.IsNegative() {
					return fmt.Errorf("%w: %s", credits.ErrInvalidAmount, qty)
				}
			case cmd.Flags().Changed("percentage"):
				eng, engErr := newEngine(cmd)
				if engErr != nil {
					return engErr
				}
				cur, loadErr := loadCurrent(cmd, eng, inputs)
				if loadErr != nil {
					return loadErr
				}
				if qty, err = credits.OffsetAmount(cur.Snapshot.Total, percentage); err != nil {
					return err
				}
			default:
				return errors.New("one of --amount or --percentage is required")
			}

			out := estimateOutput{Amount: qty, Costs: credits.CompareCosts(qty)}
			if project != "" {
				p, projErr := credits.ProjectByName(project)
				if projErr != nil {
					return projErr
				}
				cost := credits.EstimateCost(qty, p.PricePerCredit)
				out.Project = p.Name
				out.Cost = &cost
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, out)
			case config.FormatNDJSON:
				return writeNDJSON(w, out.Costs)
			}

			heading(w, fmt.Sprintf("Offsetting %s tCO2e", qty.StringFixed(int32(precision()))))
			fmt.Fprintln(w)
			tbl := newTable(w, "Credit type", "Min", "Average", "Max")
			for _, c := range out.Costs {
				tbl.row(c.Type, usd(c.Min), usd(c.Avg), usd(c.Max))
			}
			if err = tbl.flush(); err != nil {
				return err
			}
			if out.Cost != nil {
				fmt.Fprintln(w)
				fmt.Fprintf(w, "At %s: %s\n", out.Project, usd(*out.Cost))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "tCO2e to offset")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "percentage of the inventory total to offset (0-100)")
	cmd.Flags().StringVar(&project, "project", "", "also price the amount at this project")
	addInputFlag(cmd, &inputs)

	return cmd
}

// NewCreditsPurchaseCmd creates the credits purchase command.
func NewCreditsPurchaseCmd() *cobra.Command {
	var (
		quantity string
		total    float64
		inputs   []string
	)

	cmd := &cobra.Command{
		Use:   "purchase PROJECT",
		Short: "Simulate buying credits from a sample project",
		Long: `Simulates a purchase of credits from one of the sample projects and reports
the cost, the share of total emissions offset, and the credits left. Nothing
is bought; the catalogue is static sample data.

The total used for the offset share comes from --total, else the inventory.`,
		Example: `  carbonfocus credits purchase "Wind Farm Development" --credits 100
  carbonfocus credits purchase "Landfill Methane Capture" --credits 50 --total 400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			p, err := credits.ProjectByName(args[0])
			if err != nil {
				return err
			}
			qty, err := decimal.NewFromString(strings.TrimSpace(quantity))
			if err != nil {
				return fmt.Errorf("%w: --credits %q: %w", credits.ErrInvalidAmount, quantity, err)
			}

			base := total
			if !cmd.Flags().Changed("total") {
				eng, engErr := newEngine(cmd)
				if engErr != nil {
					return engErr
				}
				cur, loadErr := loadCurrent(cmd, eng, inputs)
				switch {
				case loadErr == nil:
					base = cur.Snapshot.Total
				case errors.Is(loadErr, errNoInventory):
					base = 0
				default:
					return loadErr
				}
			}

			res, err := credits.Purchase(p, qty, base)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, res)
			case config.FormatNDJSON:
				return writeNDJSON(w, []credits.PurchaseResult{res})
			}

			heading(w, fmt.Sprintf("Purchase from %s", res.Project))
			fmt.Fprintf(w, "Credits:    %s tCO2e\n", res.Credits)
			fmt.Fprintf(w, "Cost:       %s\n", usd(res.Cost))
			if base > 0 {
				fmt.Fprintf(w, "Offsets:    %s of %s tCO2e\n", formatPercent(res.PercentOfTotal), formatEmissions(base))
			}
			fmt.Fprintf(w, "Remaining:  %s credits\n", res.RemainingCredits)
			return nil
		},
	}

	cmd.Flags().StringVar(&quantity, "credits", "", "number of credits (tCO2e) to buy")
	cmd.Flags().Float64Var(&total, "total", 0, "total emissions to measure the offset against (default: inventory)")
	addInputFlag(cmd, &inputs)
	_ = cmd.MarkFlagRequired("credits")

	return cmd
}
