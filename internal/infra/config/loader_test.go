package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_RepoConfigOnly(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[log]
level = "debug"
file = "/tmp/taskflow.log"

[seed]
file = "team.yaml"

[dashboard]
recent_tasks = 5

[gesture]
scroll_factor = 1

[notifications]
duration = "5s"
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/taskflow.log", cfg.Log.File)
	assert.Equal(t, "team.yaml", cfg.Seed.File)
	assert.Equal(t, 5, cfg.Dashboard.RecentTasks)
	assert.Equal(t, domain.DefaultTopEmployees, cfg.Dashboard.TopEmployees)
	assert.InDelta(t, 1.0, cfg.Gesture.ScrollFactor, 1e-9)
	assert.InDelta(t, domain.DefaultRotationFactor, cfg.Gesture.RotationFactor, 1e-9)
	assert.Equal(t, "5s", cfg.Notifications.Duration)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_MergeRepoOverridesGlobal(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"

[dashboard]
recent_tasks = 4
top_employees = 2
`)
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[dashboard]
recent_tasks = 6
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 6, cfg.Dashboard.RecentTasks)
	assert.Equal(t, 2, cfg.Dashboard.TopEmployees)
}

func TestLoader_Load_EmptyRepoRoot(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[dashboard]\ntop_employees = 1\n")

	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Dashboard.TopEmployees)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[log]
colour = "red"

[workers]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [log]: colour",
		"unknown section: workers",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidValuesFallBack(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[log]
level = "verbose"

[dashboard]
recent_tasks = -2

[notifications]
duration = "soon"
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.DefaultRecentTasks, cfg.Dashboard.RecentTasks)
	assert.Equal(t, domain.DefaultNotificationDuration, cfg.NotificationDuration())
	assert.Len(t, cfg.Warnings, 3)
}

func TestLoader_Load_WrongTypesWarn(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[log]
level = 3

[dashboard]
recent_tasks = "five"

[gesture]
scroll_factor = "fast"
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"[dashboard] recent_tasks must be an integer",
		"[gesture] scroll_factor must be a number",
		"[log] level must be a string",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.DefaultRecentTasks, cfg.Dashboard.RecentTasks)
	assert.InDelta(t, domain.DefaultScrollFactor, cfg.Gesture.ScrollFactor, 1e-9)
}

func TestLoader_Load_WrongTypeKeepsLowerLayer(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[dashboard]\nrecent_tasks = 7\n")
	writeFile(t, domain.RepoRootConfigPath(repoRoot), "[dashboard]\nrecent_tasks = 1.5\n")

	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Dashboard.RecentTasks)
	assert.Equal(t, []string{"[dashboard] recent_tasks must be an integer"}, cfg.Warnings)
}

func TestLoader_Load_ExplicitZeroOverrides(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
file = "global.log"

[gesture]
rotation_factor = 2.0
`)
	writeFile(t, domain.RepoRootConfigPath(repoRoot), `
[log]
file = ""

[gesture]
scroll_factor = 0
rotation_factor = 0
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Empty(t, cfg.Log.File)
	assert.Zero(t, cfg.Gesture.ScrollFactor)
	assert.Zero(t, cfg.Gesture.RotationFactor)
	assert.InDelta(t, domain.DefaultOffsetFactor, cfg.Gesture.OffsetFactor, 1e-9)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	repoRoot := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), "[log\nlevel = ")

	_, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.RootConfigFileName)
}

func TestMarshal_RoundTripsThroughLoader(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Dashboard.TopEmployees = 4

	data, err := Marshal(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal(data, &raw))
	got := convertRawToDomainConfig(raw)
	assert.Empty(t, got.cfg.Warnings)
	assert.Equal(t, 4, got.cfg.Dashboard.TopEmployees)
	assert.InDelta(t, domain.DefaultScrollFactor, got.cfg.Gesture.ScrollFactor, 1e-9)
	assert.True(t, got.set["notifications.duration"])
}
