package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/tui"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics and top performers",
		Long: `Show the dashboard overview: task counts per status, the completion
rate, the most recent tasks and the employees with the highest
completion rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}

			stats, err := c.ShowStatsUseCase().Execute(cmd.Context(), usecase.ShowStatsInput{
				RecentTasks: c.AppConfig.Dashboard.RecentTasks,
			})
			if err != nil {
				return err
			}
			top, err := c.TopEmployeesUseCase().Execute(cmd.Context(), usecase.TopEmployeesInput{
				Limit: c.AppConfig.Dashboard.TopEmployees,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			s := stats.Stats
			_, _ = fmt.Fprintf(w, "Total tasks:      %d\n", s.Total)
			_, _ = fmt.Fprintf(w, "Pending:          %d\n", s.Pending)
			_, _ = fmt.Fprintf(w, "In progress:      %d\n", s.InProgress)
			_, _ = fmt.Fprintf(w, "Completed:        %d\n", s.Completed)
			_, _ = fmt.Fprintf(w, "Completion rate:  %d%%\n", s.CompletionRate)

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "Recent tasks:")
			printTasks(w, stats.Recent, c.Clock.Now())

			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "Top performers:")
			printEmployees(w, top.Employees, true)
			return nil
		},
	}
}

// newTasksCommand creates the tasks command.
func newTasksCommand(c *app.Container) *cobra.Command {
	var (
		status     string
		byPriority bool
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		Long: `List tasks in creation order.

Use --status to show only tasks in one status: pending, in-progress (or
in_progress) or completed. Use --by-priority to list high priority tasks first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}

			in := usecase.ListTasksInput{ByPriority: byPriority}
			if status != "" {
				s, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				in.Status = s
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			printTasks(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending, in-progress, completed)")
	cmd.Flags().BoolVarP(&byPriority, "by-priority", "p", false, "Sort by priority, highest first")

	return cmd
}

// newEmployeesCommand creates the employees command.
func newEmployeesCommand(c *app.Container) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees",
		Long: `List the team roster in seed order.

With --top N, list the N employees with the highest completion rate instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}

			if cmd.Flags().Changed("top") {
				if top < 0 {
					return fmt.Errorf("--top must not be negative: %d", top)
				}
				out, err := c.TopEmployeesUseCase().Execute(cmd.Context(), usecase.TopEmployeesInput{Limit: top})
				if err != nil {
					return err
				}
				printEmployees(cmd.OutOrStdout(), out.Employees, true)
				return nil
			}

			out, err := c.ListEmployeesUseCase().Execute(cmd.Context(), usecase.ListEmployeesInput{})
			if err != nil {
				return err
			}
			printEmployees(cmd.OutOrStdout(), out.Employees, false)
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "Show only the N best performers")

	return cmd
}

// printTasks prints tasks in a table.
func printTasks(w io.Writer, tasks []domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tASSIGNEE\tDUE\tTITLE")

	// Rows
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Status,
			t.Priority,
			t.Assignee,
			tui.DueLabel(t, now),
			t.Title,
		)
	}
}

// printEmployees prints employees in a table. Ranked tables number the rows.
func printEmployees(w io.Writer, employees []domain.Employee, ranked bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	if ranked {
		_, _ = fmt.Fprintln(tw, "RANK\tNAME\tROLE\tTASKS\tCOMPLETION")
	} else {
		_, _ = fmt.Fprintln(tw, "ID\tNAME\tROLE\tTASKS\tCOMPLETION")
	}

	for i, e := range employees {
		first := e.ID
		if ranked {
			first = i + 1
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d%%\n", first, e.Name, e.Role, e.TasksCount, e.CompletionRate)
	}
}
