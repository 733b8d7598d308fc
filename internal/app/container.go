// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/gesture"
	"github.com/runoshun/taskflow/internal/infra/config"
	"github.com/runoshun/taskflow/internal/infra/git"
	"github.com/runoshun/taskflow/internal/infra/logging"
	"github.com/runoshun/taskflow/internal/infra/memstore"
	"github.com/runoshun/taskflow/internal/infra/seed"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Config holds the application paths resolved at startup.
type Config struct {
	WorkDir  string // Directory taskflow was started from
	RepoRoot string // Root of the enclosing git repository (empty outside one)
	Branch   string // Checked out branch of that repository
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Board         domain.BoardRepository
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	closer    interface{ Close() error }

	// Configuration
	Config Config
}

// New creates a Container for the working directory dir.
// Configuration is loaded from the global file and, inside a git
// repository, from .taskflow.toml at its root. The board is filled from
// the configured seed file or the built-in sample data.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}
	cfg.RepoRoot, cfg.Branch = git.Locate(dir)

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(resolvePath(dir, appConfig.Log.File), logging.ParseLevel(appConfig.Log.Level))
	for _, w := range appConfig.Warnings {
		logger.Warn(0, "config", w)
	}

	board, err := seed.NewLoader(resolvePath(dir, appConfig.Seed.File)).LoadSeed()
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("load seed: %w", err)
	}
	logger.Info(0, "app", fmt.Sprintf("board loaded: %d employees, %d tasks", len(board.Employees), len(board.Tasks)))

	return &Container{
		Board:         memstore.New(board),
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, board domain.BoardRepository, clock domain.Clock, logger domain.Logger, appConfig *domain.Config) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Board:     board,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// resolvePath makes a configured path absolute relative to dir.
func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// GestureFactors returns the drag handle factors from configuration.
func (c *Container) GestureFactors() gesture.Factors {
	g := c.AppConfig.Gesture
	return gesture.Factors{
		Scroll:   g.ScrollFactor,
		Rotation: g.RotationFactor,
		Offset:   g.OffsetFactor,
	}
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Board, c.Logger)
}

// CycleStatusUseCase returns a new CycleStatus use case.
func (c *Container) CycleStatusUseCase() *usecase.CycleStatus {
	return usecase.NewCycleStatus(c.Board, c.Logger)
}

// ShowStatsUseCase returns a new ShowStats use case.
func (c *Container) ShowStatsUseCase() *usecase.ShowStats {
	return usecase.NewShowStats(c.Board)
}

// TopEmployeesUseCase returns a new TopEmployees use case.
func (c *Container) TopEmployeesUseCase() *usecase.TopEmployees {
	return usecase.NewTopEmployees(c.Board)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Board)
}

// ListEmployeesUseCase returns a new ListEmployees use case.
func (c *Container) ListEmployeesUseCase() *usecase.ListEmployees {
	return usecase.NewListEmployees(c.Board)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// CheckSeedUseCase returns a CheckSeed use case for the seed file at path.
func (c *Container) CheckSeedUseCase(path string) *usecase.CheckSeed {
	return usecase.NewCheckSeed(seed.NewLoader(resolvePath(c.Config.WorkDir, path)))
}
