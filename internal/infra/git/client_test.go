package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

// setupGitRepo creates a temporary git repository with one commit.
func setupGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestNewClient_Success(t *testing.T) {
	dir := setupGitRepo(t)

	client, err := NewClient(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, client.RepoRoot())
}

func TestNewClient_FromSubdirectory(t *testing.T) {
	dir := setupGitRepo(t)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	client, err := NewClient(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, client.RepoRoot())
}

func TestNewClient_NotGitRepo(t *testing.T) {
	client, err := NewClient(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	assert.Nil(t, client)
}

func TestClient_CurrentBranch(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestLocate(t *testing.T) {
	dir := setupGitRepo(t)
	root, branch := Locate(dir)
	assert.Equal(t, dir, root)
	assert.Equal(t, "master", branch)

	root, branch = Locate(t.TempDir())
	assert.Empty(t, root)
	assert.Empty(t, branch)
}
