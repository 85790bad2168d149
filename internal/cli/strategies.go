package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/strategies"
)

// strategiesOutput is the JSON shape of the strategies command.
type strategiesOutput struct {
	DominantScope   string                `json:"dominant_scope"`
	Strategies      []strategies.Strategy `json:"strategies"`
	Industry        string                `json:"industry"`
	IndustryActions []string              `json:"industry_actions"`
}

// NewStrategiesCmd creates the strategies command.
func NewStrategiesCmd() *cobra.Command {
	var (
		industry string
		inputs   []string
	)

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "Recommend reduction strategies for the inventory",
		Long: `Recommends reduction strategies, starting with the scope that contributes
most to the inventory, followed by the top strategies for the other scopes and
industry-specific actions.`,
		Example: `  carbonfocus strategies
  carbonfocus strategies --industry Retail --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			ind := industry
			if ind == "" {
				ind = industryOr(cur.Profile, "Other")
			}
			out := strategiesOutput{
				DominantScope:   strategies.DominantScope(cur.Snapshot).String(),
				Strategies:      strategies.Recommend(cur.Snapshot),
				Industry:        ind,
				IndustryActions: strategies.IndustryRecommendations(ind),
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, out)
			case config.FormatNDJSON:
				return writeNDJSON(w, out.Strategies)
			}

			heading(w, fmt.Sprintf("Reduction strategies (largest source: %s)", out.DominantScope))
			fmt.Fprintln(w)
			tbl := newTable(w, "Scope", "Strategy", "Potential", "Timeframe")
			for _, s := range out.Strategies {
				tbl.row(s.ScopeName, s.Name, s.Potential, s.Timeframe)
			}
			if err = tbl.flush(); err != nil {
				return err
			}
			fmt.Fprintln(w)
			heading(w, fmt.Sprintf("%s actions", out.Industry))
			for _, a := range out.IndustryActions {
				fmt.Fprintf(w, "  - %s\n", a)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry for sector actions (default: organization industry)")
	addInputFlag(cmd, &inputs)

	return cmd
}
