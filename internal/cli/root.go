package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonfocus CLI.
// It resolves the project directory, loads configuration, wires up logging and
// tracing, and registers every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "carbonfocus",
		Short: "GHG Protocol emissions inventory, targets and reporting",
		Long: `carbonfocus turns organizational activity data into a GHG Protocol
Scope 1/2/3 inventory, and derives reduction targets, industry benchmarks,
carbon credit estimates, reduction strategies and reports from it.`,
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			projectFlag, _ := cmd.Flags().GetString("project-dir")
			cwd, err := os.Getwd()
			if err != nil {
				cwd = ""
			}
			projectDir := config.ResolveProjectDir(cmd.Context(), projectFlag, cwd)
			config.SetResolvedProjectDir(projectDir)
			config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), projectDir))

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "",
		"project directory holding .carbonfocus/ (overrides discovery and "+config.EnvProjectDir+")")
	cmd.PersistentFlags().StringP("output", "o", "",
		"output format: table, json, ndjson (default from config)")
	cmd.PersistentFlags().Bool("no-session", false, "do not read or write the saved inventory session")

	cmd.AddCommand(
		newInventoryCmd(), newTargetsCmd(), NewBenchmarkCmd(), newCreditsCmd(),
		NewStrategiesCmd(), NewReportCmd(), NewServeCmd(), newSessionCmd(),
		newConfigCmd(), NewSetupCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Calculate an inventory from an activity file
  carbonfocus inventory calculate activity.yaml

  # Aggregate several sites into one inventory
  carbonfocus inventory calculate plant.yaml office.yaml

  # Project a Paris-aligned target from the saved inventory
  carbonfocus targets project --framework paris

  # Compare against the industry benchmark
  carbonfocus benchmark --industry Manufacturing

  # Estimate the cost of offsetting 25% of emissions
  carbonfocus credits estimate --percentage 25

  # Write a Markdown report
  carbonfocus report --format markdown --file report.md

  # Serve the JSON API locally
  carbonfocus serve --addr 127.0.0.1:8085

  # Set configuration values
  carbonfocus config set output.default_format json`

// newInventoryCmd creates the inventory command group.
func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "inventory", Short: "Emissions inventory commands"}
	cmd.AddCommand(NewInventoryCalculateCmd(), NewInventoryFactorsCmd())
	return cmd
}

// newTargetsCmd creates the targets command group.
func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "targets", Short: "Reduction target commands"}
	cmd.AddCommand(
		NewTargetsProjectCmd(), NewTargetsPathwayCmd(),
		NewTargetsScopesCmd(), NewTargetsFrameworksCmd(),
	)
	return cmd
}

// newCreditsCmd creates the carbon credit command group.
func newCreditsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "credits", Short: "Carbon credit marketplace commands"}
	cmd.AddCommand(
		NewCreditsTypesCmd(), NewCreditsProjectsCmd(),
		NewCreditsEstimateCmd(), NewCreditsPurchaseCmd(),
	)
	return cmd
}

// newSessionCmd creates the session command group.
func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "session", Short: "Saved inventory session commands"}
	cmd.AddCommand(NewSessionShowCmd(), NewSessionClearCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
