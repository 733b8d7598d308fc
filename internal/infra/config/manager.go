package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates configuration files.
type Manager struct {
	repoRoot      string // Path to repository root (may be empty)
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskflow)
}

// NewManager creates a new Manager.
func NewManager(repoRoot string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(repoRoot, globalConfDir string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetRepoConfigInfo returns information about the repository config file (.taskflow.toml).
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	if m.repoRoot == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(domain.RepoRootConfigPath(m.repoRoot))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitRepoConfig writes the default configuration to .taskflow.toml.
func (m *Manager) InitRepoConfig() (string, error) {
	if m.repoRoot == "" {
		return "", domain.ErrNotGitRepository
	}
	path := domain.RepoRootConfigPath(m.repoRoot)
	return path, initConfig(path)
}

// InitGlobalConfig writes the default configuration to the global config file.
func (m *Manager) InitGlobalConfig() (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	return path, initConfig(path)
}

// initConfig creates a config file holding the defaults.
func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	data, err := Marshal(domain.NewDefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
