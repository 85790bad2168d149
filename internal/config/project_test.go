package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/config"
)

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")
	assert.Equal(t, filepath.Join(flagDir, ".carbonfocus"), got)
}

func TestResolveProjectDir_EnvVar(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")
	assert.Equal(t, filepath.Join(envDir, ".carbonfocus"), got)
	assert.True(t, filepath.IsAbs(got))
}

func TestResolveProjectDir_NoDoubleAppend(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), ".carbonfocus")

	assert.Equal(t, dir, config.ResolveProjectDir(context.Background(), dir, ""))
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	projectDir := filepath.Join(root, ".carbonfocus")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	assert.Equal(t, projectDir, config.ResolveProjectDir(context.Background(), "", sub))
}

func TestResolveProjectDir_NotFound(t *testing.T) {
	isolate(t)
	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", t.TempDir()))
}

func TestResolveProjectDir_SkipsGlobalDir(t *testing.T) {
	root := t.TempDir()
	global := filepath.Join(root, ".carbonfocus")
	require.NoError(t, os.MkdirAll(global, 0o750))
	t.Setenv(config.EnvHome, global)
	t.Setenv(config.EnvProjectDir, "")

	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", filepath.Join(root, "work")))
}

func TestNewWithProjectDir(t *testing.T) {
	isolate(t)
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
targets:
  base_year: 2020
  target_year: 2035
  reduction_percentage: 50
  framework: wb2c
  end_year: 2060
`), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 2020, cfg.Targets.BaseYear)
	assert.Equal(t, "wb2c", cfg.Targets.Framework)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	assert.Equal(t, 2023, config.NewWithProjectDir(context.Background(), "").Targets.BaseYear)
	assert.Equal(t, 2023, config.NewWithProjectDir(context.Background(), t.TempDir()).Targets.BaseYear)
}

func TestNewWithProjectDir_BadOverlayFallsBack(t *testing.T) {
	isolate(t)
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte("targets: [1, 2"), 0o600))

	cfg := config.NewWithProjectDir(context.Background(), projectDir)
	assert.Equal(t, 2023, cfg.Targets.BaseYear)
}

func TestGetSessionDir(t *testing.T) {
	home := isolate(t)
	t.Cleanup(func() { config.SetResolvedProjectDir("") })

	config.SetResolvedProjectDir("")
	dir, err := config.GetSessionDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "session"), dir)

	config.SetResolvedProjectDir("/work/.carbonfocus")
	dir, err = config.GetSessionDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work/.carbonfocus", "session"), dir)
}
