package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (global file, project overlay and
environment) for semantic correctness: output format and precision, log level
and format, target years and percentage, target framework, and session TTL.
Every problem is reported at once.`,
		Example: `  # Validate current configuration
  carbonfocus config validate

  # Validate and show detailed information
  carbonfocus config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if path := cfg.ConfigPath(); path != "" {
		cmd.Printf("  Config file: %s\n", path)
	}
	if project := config.GetResolvedProjectDir(); project != "" {
		cmd.Printf("  Project directory: %s\n", project)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Target: %.1f%% by %d from %d (%s)\n",
		cfg.Targets.ReductionPercentage, cfg.Targets.TargetYear, cfg.Targets.BaseYear, cfg.Targets.Framework)

	if cfg.Session.Enabled {
		cmd.Printf("  Session: enabled (TTL %ds)\n", cfg.Session.TTLSeconds)
	} else {
		cmd.Println("  Session: disabled")
	}
	cmd.Printf("  Server address: %s\n", cfg.Server.Addr)
}
