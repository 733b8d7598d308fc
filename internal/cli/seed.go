package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/infra/seed"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newSeedCommand creates the seed command.
func newSeedCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed data files",
		Long:  `Work with the YAML files that provide the initial employees and tasks.`,
	}

	cmd.AddCommand(newSeedCheckCommand(c))

	return cmd
}

// newSeedCheckCommand creates the seed check subcommand.
// It also runs without a container so a broken configured seed can be diagnosed.
func newSeedCheckCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a seed file",
		Long: `Validate a seed file without loading it.

Every problem found is reported: unknown fields, missing titles, unknown
statuses or priorities, malformed due dates, assignees that are not
employees, and completion rates outside 0-100.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewCheckSeed(seed.NewLoader(args[0]))
			if c != nil {
				uc = c.CheckSeedUseCase(args[0])
			}

			out, err := uc.Execute(cmd.Context(), usecase.CheckSeedInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d employees, %d tasks)\n", args[0], out.Employees, out.Tasks)
			return nil
		},
	}
}
