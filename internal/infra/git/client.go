// Package git locates the repository that holds the project config file.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/taskflow/internal/domain"
)

// Client wraps an opened repository.
type Client struct {
	repo     *git.Repository
	repoRoot string // Worktree root (parent of .git)
}

// NewClient opens the repository containing dir, searching parent
// directories for .git. It returns domain.ErrNotGitRepository when none is found.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to hold a config file.
		return nil, domain.ErrNotGitRepository
	}

	return &Client{
		repo:     repo,
		repoRoot: filepath.Clean(wt.Filesystem.Root()),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// CurrentBranch returns the short name of the checked out branch.
// A detached HEAD yields the abbreviated commit hash.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:7], nil
}

// Locate returns the repository root containing dir and its checked out
// branch. Both are empty outside a repository, and branch is empty for a
// repository without commits.
func Locate(dir string) (root, branch string) {
	c, err := NewClient(dir)
	if err != nil {
		return "", ""
	}
	branch, err = c.CurrentBranch()
	if err != nil {
		branch = ""
	}
	return c.RepoRoot(), branch
}
