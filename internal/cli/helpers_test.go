package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rshade/carbonfocus/internal/cli"
	"github.com/rshade/carbonfocus/internal/config"
)

// cliEnv isolates a test from the user's configuration and session.
type cliEnv struct {
	home    string
	project string
}

// setupCLITest points CARBONFOCUS_HOME at a temp dir and registers cleanup
// for global state.
func setupCLITest(t *testing.T) cliEnv {
	t.Helper()
	env := cliEnv{home: t.TempDir(), project: t.TempDir()}
	t.Setenv(config.EnvHome, env.home)
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutput, "")
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return env
}

// run executes the root command inside the test project and returns its output.
func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--project-dir", e.project}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// projectConfigDir is the .carbonfocus directory of the test project.
func (e cliEnv) projectConfigDir() string {
	return filepath.Join(e.project, config.ProjectDirName)
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}
