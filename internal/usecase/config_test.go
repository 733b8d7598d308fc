package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalConfig: domain.ConfigInfo{Path: "/home/u/.config/taskflow/config.toml"},
		RepoConfig:   domain.ConfigInfo{Path: "/repo/.taskflow.toml", Content: "[log]\n", Exists: true},
	}
	loader := testutil.NewMockConfigLoader()
	uc := NewShowConfig(manager, loader)

	out, err := uc.Execute(context.Background(), ShowConfigInput{})

	require.NoError(t, err)
	assert.Same(t, loader.Config, out.Effective)
	assert.False(t, out.GlobalConfig.Exists)
	assert.True(t, out.RepoConfig.Exists)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := &testutil.MockConfigLoader{LoadErr: errors.New("bad toml")}
	uc := NewShowConfig(&testutil.MockConfigManager{}, loader)

	_, err := uc.Execute(context.Background(), ShowConfigInput{})

	assert.ErrorContains(t, err, "bad toml")
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalConfig: domain.ConfigInfo{Path: "/g/config.toml"},
		RepoConfig:   domain.ConfigInfo{Path: "/r/.taskflow.toml"},
	}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{})
	require.NoError(t, err)
	assert.Equal(t, "/r/.taskflow.toml", out.Path)
	assert.True(t, manager.InitRepo)

	out, err = uc.Execute(context.Background(), InitConfigInput{Global: true})
	require.NoError(t, err)
	assert.Equal(t, "/g/config.toml", out.Path)
	assert.True(t, manager.InitGlobal)
}

func TestInitConfig_Execute_Exists(t *testing.T) {
	uc := NewInitConfig(&testutil.MockConfigManager{InitErr: domain.ErrConfigExists})

	_, err := uc.Execute(context.Background(), InitConfigInput{})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestCheckSeed_Execute(t *testing.T) {
	uc := NewCheckSeed(&testutil.MockSeedLoader{Board: testutil.SampleBoard()})

	out, err := uc.Execute(context.Background(), CheckSeedInput{})

	require.NoError(t, err)
	assert.Equal(t, 4, out.Employees)
	assert.Equal(t, 3, out.Tasks)
}

func TestCheckSeed_Execute_Invalid(t *testing.T) {
	uc := NewCheckSeed(&testutil.MockSeedLoader{Err: domain.ErrInvalidSeed})

	_, err := uc.Execute(context.Background(), CheckSeedInput{})

	assert.ErrorIs(t, err, domain.ErrInvalidSeed)
}
