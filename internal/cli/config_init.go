package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfocus/internal/config"
)

// configFileName is the file name of both global and project configuration.
const configFileName = "config.yaml"

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (a resolved .carbonfocus/ directory) it writes project-local
// config and a .gitignore. Otherwise, or with --global, it writes the global
// ~/.carbonfocus/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project, creates project-local configuration at
$PROJECT/.carbonfocus/config.yaml with a .gitignore that keeps the saved
session out of version control. Use --global to initialize the global
configuration even inside a project.`,
		Example: `  # Create project-local configuration (inside a project)
  carbonfocus config init --project-dir .

  # Create global configuration
  carbonfocus config init --global

  # Create configuration, overwriting existing
  carbonfocus config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// checkWritable refuses to overwrite path unless force is set.
func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates project-local config at projectDir/config.yaml with .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, configFileName)
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	action, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	switch action {
	case config.IgnoreCreated:
		cmd.Printf("Created .gitignore to keep the saved session out of version control\n")
	case config.IgnoreAppended:
		cmd.Printf("Added %s/ to .gitignore to keep the saved session out of version control\n", config.SessionDirName)
	}

	return nil
}

// initGlobalConfig creates global config at ~/.carbonfocus/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}
	configPath := filepath.Join(dir, configFileName)
	if err = checkWritable(configPath, force); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
