// Package cli provides the command-line interface for taskflow.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/tui"
)

// Command group IDs.
const (
	groupBoard = "board"
	groupSetup = "setup"
)

// errNoContainer is returned by commands that need a loaded board when
// startup failed.
var errNoContainer = errors.New("taskflow is not initialized")

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskflow.
// It receives the container for dependency injection and version for display.
// A nil container limits the tree to commands that need no board.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "Team task dashboard",
		Long: `taskflow is a terminal dashboard for a small team's tasks.

Running it without arguments opens the interactive board: statistics,
recent tasks, top performers, the full task list and the team roster.
The subcommands print the same information for scripts.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests or after a startup failure)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Board commands
	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupBoard

	tasksCmd := newTasksCommand(c)
	tasksCmd.GroupID = groupBoard

	employeesCmd := newEmployeesCommand(c)
	employeesCmd.GroupID = groupBoard

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	seedCmd := newSeedCommand(c)
	seedCmd.GroupID = groupSetup

	root.AddCommand(
		statsCmd,
		tasksCmd,
		employeesCmd,
		configCmd,
		seedCmd,
	)

	return root
}

// requireContainer guards commands that read the board or config.
func requireContainer(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}
	return nil
}

// launchTUI runs the interactive board until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
