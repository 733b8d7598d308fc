package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise repository config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a configuration file holding the defaults.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the configuration file. It fails with
// domain.ErrConfigExists rather than overwrite an existing file.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var (
		path string
		err  error
	)
	if in.Global {
		path, err = uc.configManager.InitGlobalConfig()
	} else {
		path, err = uc.configManager.InitRepoConfig()
	}
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
