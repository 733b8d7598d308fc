package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "init")
}

func TestConfigShowCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n")
	assert.Contains(t, out, "- /home/user/.config/taskflow/config.toml\n")
	assert.Contains(t, out, "- /repo/.taskflow.toml (not found)\n")
	assert.Contains(t, out, "[Effective Config]\n")
	assert.Contains(t, out, "[dashboard]")
	assert.Contains(t, out, "recent_tasks = 3")
	assert.NotContains(t, out, "Warnings")
}

func TestConfigShowCommand_ShowsBranch(t *testing.T) {
	c, manager := newTestContainer(t)
	c.Config.Branch = "main"

	out, _, err := execute(t, c, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "- /repo/.taskflow.toml (not found, branch: main)\n")
	assert.Contains(t, out, "- /home/user/.config/taskflow/config.toml\n")

	manager.RepoConfig.Exists = true
	out, _, err = execute(t, c, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "- /repo/.taskflow.toml (branch: main)\n")
}

func TestConfigShowCommand_OutsideRepository(t *testing.T) {
	c, manager := newTestContainer(t)
	manager.RepoConfig = domain.ConfigInfo{}

	out, _, err := execute(t, c, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, out, ".taskflow.toml")
}

func TestConfigInitCommand(t *testing.T) {
	c, manager := newTestContainer(t)

	out, _, err := execute(t, c, "config", "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: /repo/.taskflow.toml\n", out)
	assert.True(t, manager.InitRepo)
	assert.False(t, manager.InitGlobal)
}

func TestConfigInitCommand_Global(t *testing.T) {
	c, manager := newTestContainer(t)

	out, _, err := execute(t, c, "config", "init", "--global")

	require.NoError(t, err)
	assert.Contains(t, out, "/home/user/.config/taskflow/config.toml")
	assert.True(t, manager.InitGlobal)
	assert.False(t, manager.InitRepo)
}

func TestConfigInitCommand_Exists(t *testing.T) {
	c, manager := newTestContainer(t)
	manager.InitErr = domain.ErrConfigExists

	_, _, err := execute(t, c, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
