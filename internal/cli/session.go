package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/session"
)

// NewSessionShowCmd creates the session show command.
func NewSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved inventory session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd)
			if err != nil {
				return err
			}
			sess, err := eng.Session(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w (%w)", errNoInventory, err)
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return writeJSON(w, sess)
			case config.FormatNDJSON:
				return writeNDJSON(w, []*session.Session{sess})
			}

			heading(w, "Saved session "+sess.ID)
			fmt.Fprintf(w, "Organization:  %s (%s)\n", sess.Organization.Name, sess.Organization.Industry)
			for _, src := range sess.Sources {
				fmt.Fprintf(w, "Source:        %s\n", src)
			}
			fmt.Fprintf(w, "Total:         %s tCO2e\n", formatEmissions(sess.Snapshot.Total))
			if sess.Target != nil {
				fmt.Fprintf(w, "Target:        %s tCO2e by %d (-%s)\n",
					formatEmissions(sess.Target.TargetEmissions), sess.Target.TargetYear,
					formatPercent(sess.Target.ReductionPercentage))
			}
			return nil
		},
	}
}

// NewSessionClearCmd creates the session clear command.
func NewSessionClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved inventory session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openSessionStore(cmd)
			if err != nil {
				return err
			}
			if err = store.Clear(); err != nil {
				if errors.Is(err, session.ErrSessionDisabled) {
					cmd.Println("Session storage is disabled; nothing to clear")
					return nil
				}
				return err
			}
			cmd.Println("Session cleared")
			return nil
		},
	}
}
