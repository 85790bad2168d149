package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/session"
	"github.com/rshade/carbonfocus/internal/targets"
)

// errNoInventory is returned when a command needs an inventory and neither
// --input nor a saved session provides one.
var errNoInventory = errors.New(
	"no inventory available: run 'carbonfocus inventory calculate FILE' first or pass --input FILE")

// current is the inventory a derived command operates on.
type current struct {
	Profile  input.Profile
	Snapshot inventory.Snapshot
	Target   *targets.Target
	// FromSession is true when the data came from the saved session.
	FromSession bool
}

// openSessionStore builds the session store from configuration. --no-session
// yields a disabled store.
func openSessionStore(cmd *cobra.Command) (*session.Store, error) {
	cfg := config.GetGlobalConfig()
	noSession, _ := cmd.Flags().GetBool("no-session")
	enabled := cfg.Session.Enabled && !noSession
	if !enabled {
		return session.NewStore("", false, 0)
	}

	dir, err := config.GetSessionDir()
	if err != nil {
		return nil, fmt.Errorf("resolving session directory: %w", err)
	}
	return session.NewStore(dir, true, cfg.Session.TTLSeconds)
}

// newEngine returns an engine wired to the configured session store.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	store, err := openSessionStore(cmd)
	if err != nil {
		return nil, err
	}
	return engine.New(engine.WithSessionStore(store)), nil
}

// addInputFlag registers --input on commands that derive from an inventory.
func addInputFlag(cmd *cobra.Command, files *[]string) {
	cmd.Flags().StringSliceVar(files, "input", nil,
		"activity file(s) to calculate instead of using the saved session (repeatable)")
}

// loadCurrent returns the inventory from files when given, otherwise from the
// saved session.
func loadCurrent(cmd *cobra.Command, eng *engine.Engine, files []string) (current, error) {
	ctx := cmd.Context()
	if len(files) > 0 {
		res, err := eng.CalculateFiles(ctx, files)
		if err != nil {
			return current{}, err
		}
		return current{Profile: res.Organization, Snapshot: res.Snapshot}, nil
	}

	sess, err := eng.Session(ctx)
	switch {
	case err == nil:
		return current{
			Profile:     sess.Organization,
			Snapshot:    sess.Snapshot,
			Target:      sess.Target,
			FromSession: true,
		}, nil
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired),
		errors.Is(err, session.ErrSessionDisabled):
		return current{}, fmt.Errorf("%w (%w)", errNoInventory, err)
	default:
		return current{}, err
	}
}

// industryOr returns the profile industry, then the configured one, then def.
func industryOr(profile input.Profile, def string) string {
	if profile.Industry != "" {
		return profile.Industry
	}
	return configuredIndustry(def)
}

// configuredIndustry returns organization.industry from the configuration,
// or def when it is unset.
func configuredIndustry(def string) string {
	if cfg := config.GetGlobalConfig(); cfg.Organization.Industry != "" {
		return cfg.Organization.Industry
	}
	return def
}
