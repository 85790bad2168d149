package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/logging"
	"github.com/rshade/carbonfocus/internal/session"
	"github.com/rshade/carbonfocus/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipConfig     bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// dirPermBase is the permission mode for the carbonfocus directories.
const dirPermBase = 0o700

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the top-level setup command that bootstraps the carbonfocus environment.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the carbonfocus environment",
		Long: `Sets up carbonfocus by creating its directories, initializing the
configuration, checking that the session store is writable, and verifying the
emission factor table.

This command is idempotent. Existing configuration files are preserved.`,
		Example: `  # Full setup
  carbonfocus setup

  # CI/CD setup (no TTY-dependent output)
  carbonfocus setup --non-interactive

  # Directories only, keep configuration untouched
  carbonfocus setup --skip-config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols, color)")
	cmd.Flags().BoolVar(&opts.SkipConfig, "skip-config", false,
		"Skip configuration file initialization")

	return cmd
}

// runSetup runs every step in order using a collect-and-continue pattern.
// It returns an error only if a critical step fails.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	result := &SetupResult{}
	record := func(steps ...StepResult) {
		for _, s := range steps {
			printStep(cmd, s, opts.NonInteractive)
			result.Steps = append(result.Steps, s)
		}
	}

	record(stepDisplayVersion())
	record(stepCreateDirectories()...)
	if opts.SkipConfig {
		record(StepResult{
			Name:    "Config initialization",
			Status:  StepSkipped,
			Message: "Skipped configuration initialization",
		})
	} else {
		record(stepInitConfig())
	}
	record(stepCheckSession(ctx))
	record(stepVerifyFactors())

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "setup").
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'carbonfocus inventory calculate activity.yaml' to get started.")
	}
}

// stepDisplayVersion reports the carbonfocus version and Go runtime info.
func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("carbonfocus v%s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the config, logs and session directories.
// Returns one StepResult per directory.
func stepCreateDirectories() []StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return []StepResult{{
			Name:     "Directory creation",
			Status:   StepError,
			Message:  fmt.Sprintf("Cannot resolve config directory: %v\n  Try: export %s=/path/to/dir", err, config.EnvHome),
			Critical: true,
			Err:      err,
		}}
	}

	dirs := []string{
		baseDir,
		filepath.Join(baseDir, "logs"),
		filepath.Join(baseDir, "session"),
	}

	var results []StepResult
	for _, d := range dirs {
		info, statErr := os.Stat(d)
		if statErr == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", d),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(d, dirPermBase); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export %s=/path/to/writable/directory",
					d, mkErr, config.EnvHome,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", d),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig writes the default config file if one does not exist.
func stepInitConfig() StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to resolve config directory: %v", err),
			Critical: true,
			Err:      err,
		}
	}
	configPath := filepath.Join(baseDir, configFileName)

	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg := config.Default()
		cfg.SetConfigPath(configPath)
		if loadErr := cfg.Load(); loadErr != nil {
			return StepResult{
				Name:    "Config initialization",
				Status:  StepWarning,
				Message: fmt.Sprintf("Config exists but could not be read: %v", loadErr),
				Err:     loadErr,
			}
		}
		if valErr := cfg.Validate(); valErr != nil {
			return StepResult{
				Name:    "Config initialization",
				Status:  StepWarning,
				Message: fmt.Sprintf("Config exists but is invalid: %v\n  Try: carbonfocus config validate", valErr),
				Err:     valErr,
			}
		}
		return StepResult{
			Name:     "Config initialization",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Config already exists (%s)", configPath),
			Critical: true,
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err = cfg.Save(); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", configPath),
		Critical: true,
	}
}

// stepCheckSession opens the session store and reports whether a session exists.
func stepCheckSession(ctx context.Context) StepResult {
	cfg := config.New()
	if !cfg.Session.Enabled {
		return StepResult{
			Name:    "Session store",
			Status:  StepSkipped,
			Message: "Session storage is disabled (session.enabled: false)",
		}
	}

	dir, err := config.GetSessionDir()
	if err == nil {
		var store *session.Store
		store, err = session.NewStore(dir, true, cfg.Session.TTLSeconds)
		if err == nil {
			_, err = store.Load(ctx)
		}
	}

	switch {
	case err == nil:
		return StepResult{Name: "Session store", Status: StepSuccess,
			Message: fmt.Sprintf("Session store ready with a saved inventory (%s)", dir)}
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrSessionExpired):
		return StepResult{Name: "Session store", Status: StepSuccess,
			Message: fmt.Sprintf("Session store ready (%s)", dir)}
	default:
		return StepResult{
			Name:    "Session store",
			Status:  StepWarning,
			Message: fmt.Sprintf("Session store unavailable: %v\n  Commands still work with --input FILE", err),
			Err:     err,
		}
	}
}

// stepVerifyFactors checks that every category resolves to a factor.
func stepVerifyFactors() StepResult {
	defs := factors.All()
	for _, d := range defs {
		if _, err := factors.FactorFor(d.Category); err != nil {
			return StepResult{
				Name:     "Emission factors",
				Status:   StepError,
				Message:  fmt.Sprintf("Emission factor table is incomplete: %v", err),
				Critical: true,
				Err:      err,
			}
		}
	}
	return StepResult{
		Name:    "Emission factors",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Emission factors loaded (%d categories, %d grid regions)", len(defs), len(factors.Regions())),
	}
}
