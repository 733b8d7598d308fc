package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func TestManager_ConfigInfo(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, domain.RepoRootConfigPath(repoRoot), "[log]\nlevel = \"debug\"\n")
	m := NewManagerWithGlobalDir(repoRoot, globalDir)

	repo := m.GetRepoConfigInfo()
	assert.True(t, repo.Exists)
	assert.Contains(t, repo.Content, "debug")

	global := m.GetGlobalConfigInfo()
	assert.False(t, global.Exists)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), global.Path)
}

func TestManager_ConfigInfo_NoRepo(t *testing.T) {
	m := NewManagerWithGlobalDir("", t.TempDir())
	assert.Equal(t, domain.ConfigInfo{}, m.GetRepoConfigInfo())

	_, err := m.InitRepoConfig()
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "taskflow")
	m := NewManagerWithGlobalDir("", globalDir)

	path, err := m.InitGlobalConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	// The written file loads back to the defaults.
	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)

	_, err = m.InitGlobalConfig()
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitRepoConfig(t *testing.T) {
	repoRoot := t.TempDir()
	m := NewManagerWithGlobalDir(repoRoot, t.TempDir())

	path, err := m.InitRepoConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.RepoRootConfigPath(repoRoot), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recent_tasks = 3")
}
