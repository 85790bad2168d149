package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
)

// editableConfig loads the file config set writes to: the project config when
// a project is resolved, else the global one. Environment overrides are not
// applied so they never leak into the file.
func editableConfig(global bool) (*config.Config, error) {
	var path string
	if project := config.GetResolvedProjectDir(); project != "" && !global {
		path = filepath.Join(project, configFileName)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		path = filepath.Join(dir, configFileName)
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if _, err := os.Stat(path); err == nil {
		if err = cfg.Load(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Sets a configuration value using a dotted key and saves the file. Inside a
project the project config is updated unless --global is given.

Run 'carbonfocus config list' to see every key.`,
		Example: `  carbonfocus config set output.default_format json
  carbonfocus config set targets.framework "Well Below 2°C"
  carbonfocus config set session.ttl_seconds 3600 --global`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := editableConfig(global)
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			cmd.Printf("Set %s = %s in %s\n", args[0], args[1], cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration even inside a project")

	return cmd
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the effective value of a configuration key",
		Example: `  carbonfocus config get targets.base_year`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key with its effective value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			values := config.GetGlobalConfig().List()
			w := cmd.OutOrStdout()

			switch format {
			case config.FormatJSON:
				return writeJSON(w, values)
			case config.FormatNDJSON:
				type entry struct {
					Key   string `json:"key"`
					Value string `json:"value"`
				}
				entries := make([]entry, 0, len(values))
				for _, k := range config.Keys() {
					entries = append(entries, entry{Key: k, Value: values[k]})
				}
				return writeNDJSON(w, entries)
			}

			tbl := newTable(w, "Key", "Value")
			for _, k := range config.Keys() {
				tbl.row(k, values[k])
			}
			return tbl.flush()
		},
	}
}
