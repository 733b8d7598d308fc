// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/taskflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockBoardRepository is a test double for domain.BoardRepository.
// Fields are ordered to minimize memory padding.
type MockBoardRepository struct {
	LoadErr   error
	SaveErr   error
	Board     domain.Board
	SaveCount int
}

// NewMockBoardRepository creates a MockBoardRepository holding board.
func NewMockBoardRepository(board domain.Board) *MockBoardRepository {
	return &MockBoardRepository{Board: board.Clone()}
}

// Load returns a copy of the stored board.
func (m *MockBoardRepository) Load() (domain.Board, error) {
	if m.LoadErr != nil {
		return domain.Board{}, m.LoadErr
	}
	return m.Board.Clone(), nil
}

// store records board as the new current value.
func (m *MockBoardRepository) store(board domain.Board) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Board = board.Clone()
	m.SaveCount++
	return nil
}

// Update applies fn and saves its result.
func (m *MockBoardRepository) Update(fn func(domain.Board) (domain.Board, error)) error {
	board, err := m.Load()
	if err != nil {
		return err
	}
	next, err := fn(board)
	if err != nil {
		return err
	}
	return m.store(next)
}

// MockSeedLoader is a test double for domain.SeedLoader.
type MockSeedLoader struct {
	Err   error
	Board domain.Board
}

// LoadSeed returns the configured board or error.
func (m *MockSeedLoader) LoadSeed() (domain.Board, error) {
	if m.Err != nil {
		return domain.Board{}, m.Err
	}
	return m.Board.Clone(), nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning the defaults.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr      error
	GlobalConfig domain.ConfigInfo
	RepoConfig   domain.ConfigInfo
	InitGlobal   bool
	InitRepo     bool
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfig
}

// GetRepoConfigInfo returns the configured repository info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfig
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitGlobal = true
	return m.GlobalConfig.Path, nil
}

// InitRepoConfig records the call.
func (m *MockConfigManager) InitRepoConfig() (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitRepo = true
	return m.RepoConfig.Path, nil
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// String formats the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("%s task-%d [%s] %s", e.Level, e.TaskID, e.Category, e.Msg)
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.record("DEBUG", taskID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.record("INFO", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.record("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.record("ERROR", taskID, category, msg) }

// SampleBoard returns the four-person team used across tests.
func SampleBoard() domain.Board {
	employees := []domain.Employee{
		{ID: 1, Name: "Alexey Ivanov", Role: "Senior Developer", TasksCount: 5, CompletionRate: 85},
		{ID: 2, Name: "Maria Petrova", Role: "UI/UX Designer", TasksCount: 3, CompletionRate: 92},
		{ID: 3, Name: "Dmitry Smirnov", Role: "Frontend Developer", TasksCount: 4, CompletionRate: 78},
		{ID: 4, Name: "Elena Kozlova", Role: "QA Engineer", TasksCount: 6, CompletionRate: 88},
	}
	tasks := []domain.Task{
		{ID: 1, Title: "Build a new module", Assignee: "Alexey Ivanov", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, DueDate: "2024-01-15"},
		{ID: 2, Title: "Fix interface bugs", Assignee: "Maria Petrova", Status: domain.StatusCompleted, Priority: domain.PriorityMedium, DueDate: "2024-01-10"},
		{ID: 3, Title: "Update documentation", Assignee: "Dmitry Smirnov", Status: domain.StatusPending, Priority: domain.PriorityLow, DueDate: "2024-01-20"},
	}
	return domain.NewBoard(employees, tasks)
}
