package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/pkg/version"
)

// newTestSetupCmd creates a testable setup command with captured output.
func newTestSetupCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := NewSetupCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd, buf
}

// runTestSetup executes setup against a temporary CARBONFOCUS_HOME.
func runTestSetup(t *testing.T, flags ...string) (string, string, error) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv(config.EnvHome, tmpDir)
	t.Setenv(config.EnvProjectDir, "")
	t.Cleanup(func() { config.SetResolvedProjectDir("") })

	cmd, buf := newTestSetupCmd()
	cmd.SetArgs(append([]string{"--non-interactive"}, flags...))

	err := cmd.Execute()
	return buf.String(), tmpDir, err
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         StepStatus
		nonInteractive bool
		expected       string
	}{
		{"success_tty", StepSuccess, false, "✓"},
		{"warning_tty", StepWarning, false, "!"},
		{"skipped_tty", StepSkipped, false, "-"},
		{"error_tty", StepError, false, "✗"},
		{"success_non_interactive", StepSuccess, true, "[OK]"},
		{"warning_non_interactive", StepWarning, true, "[WARN]"},
		{"skipped_non_interactive", StepSkipped, true, "[SKIP]"},
		{"error_non_interactive", StepError, true, "[ERR]"},
		{"unknown_non_interactive", StepStatus(99), true, "[??]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatStatus(tt.status, tt.nonInteractive))
		})
	}
}

func TestSetup_FreshHome(t *testing.T) {
	out, home, err := runTestSetup(t)
	require.NoError(t, err)

	assert.Contains(t, out, "[OK] carbonfocus v"+version.GetVersion()+" ("+runtime.Version()+")")
	assert.Contains(t, out, "Created "+filepath.Join(home, "session"))
	assert.Contains(t, out, "Initialized config")
	assert.Contains(t, out, "Session store ready")
	assert.Contains(t, out, "Emission factors loaded (32 categories, 9 grid regions)")
	assert.Contains(t, out, "Setup complete!")

	assert.DirExists(t, filepath.Join(home, "logs"))
	assert.FileExists(t, filepath.Join(home, "config.yaml"))
}

func TestSetup_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(config.EnvHome, tmpDir)

	for range 2 {
		cmd, _ := newTestSetupCmd()
		cmd.SetArgs([]string{"--non-interactive"})
		require.NoError(t, cmd.Execute())
	}

	cmd, buf := newTestSetupCmd()
	cmd.SetArgs([]string{"--non-interactive"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Directory exists: "+tmpDir)
	assert.Contains(t, buf.String(), "Config already exists")
}

func TestSetup_SkipConfig(t *testing.T) {
	out, home, err := runTestSetup(t, "--skip-config")
	require.NoError(t, err)

	assert.Contains(t, out, "[SKIP] Skipped configuration initialization")
	assert.NoFileExists(t, filepath.Join(home, "config.yaml"))
}

func TestSetup_InvalidExistingConfigWarns(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(config.EnvHome, tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"),
		[]byte("output:\n  default_format: xml\n"), 0o600))

	cmd, buf := newTestSetupCmd()
	cmd.SetArgs([]string{"--non-interactive"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "[WARN] Config exists but is invalid")
}
