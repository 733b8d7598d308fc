package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/taskflow/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status     domain.Status // Empty = all statuses
	ByPriority bool          // Most urgent first, insertion order within a priority
}

// ListTasksOutput contains the listed tasks.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	board domain.BoardRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(board domain.BoardRepository) *ListTasks {
	return &ListTasks{board: board}
}

// Execute returns the tasks in insertion order, optionally filtered by status.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != "" && !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	b, err := uc.board.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}

	tasks := b.Tasks
	if in.Status != "" {
		tasks = b.TasksByStatus(in.Status)
	}
	if in.ByPriority {
		slices.SortStableFunc(tasks, func(x, y domain.Task) int {
			return cmp.Compare(y.Priority.Rank(), x.Priority.Rank())
		})
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
