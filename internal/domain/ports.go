package domain

import "time"

// BoardRepository holds the current board value.
// Implementations hand out copies, so a loaded board can be changed
// freely without affecting the stored one.
type BoardRepository interface {
	// Load returns the current board.
	Load() (Board, error)

	// Update replaces the current board with fn's result, atomically.
	// The board is left unchanged when fn returns an error.
	Update(fn func(Board) (Board, error)) error
}

// SeedLoader provides the initial employees and tasks.
type SeedLoader interface {
	// LoadSeed returns the initial board.
	LoadSeed() (Board, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + repository).
	Load() (*Config, error)
}

// Logger writes leveled log entries.
// taskID 0 marks entries that are not about a specific task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigInfo describes one configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// GetRepoConfigInfo returns the repository config file.
	GetRepoConfigInfo() ConfigInfo
	// InitGlobalConfig writes defaults to the global config file and returns its path.
	InitGlobalConfig() (string, error)
	// InitRepoConfig writes defaults to the repository config file and returns its path.
	InitRepoConfig() (string, error)
}
