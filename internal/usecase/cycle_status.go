package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// CycleStatusInput contains the parameters for advancing a task's status.
type CycleStatusInput struct {
	TaskID int
}

// CycleStatusOutput contains the result of CycleStatus.
// Fields are ordered to minimize memory padding.
type CycleStatusOutput struct {
	Task     domain.Task   // Task after the change (zero when not found)
	Previous domain.Status // Status before the change
	Found    bool          // False when no task has the ID; the board is unchanged
}

// CycleStatus advances a task through pending, in-progress, completed.
type CycleStatus struct {
	board  domain.BoardRepository
	logger domain.Logger
}

// NewCycleStatus creates a new CycleStatus use case.
func NewCycleStatus(board domain.BoardRepository, logger domain.Logger) *CycleStatus {
	return &CycleStatus{
		board:  board,
		logger: logger,
	}
}

// Execute cycles the task's status. Unknown IDs are a no-op.
func (uc *CycleStatus) Execute(_ context.Context, in CycleStatusInput) (*CycleStatusOutput, error) {
	out := &CycleStatusOutput{}
	err := uc.board.Update(func(b domain.Board) (domain.Board, error) {
		before, ok := b.Task(in.TaskID)
		if !ok {
			return b, nil
		}
		next := b.CycleStatus(in.TaskID)
		out.Found = true
		out.Previous = before.Status
		out.Task, _ = next.Task(in.TaskID)
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cycle status: %w", err)
	}

	if uc.logger != nil {
		if out.Found {
			uc.logger.Info(in.TaskID, "status", fmt.Sprintf("%s -> %s", out.Previous, out.Task.Status))
		} else {
			uc.logger.Debug(0, "status", fmt.Sprintf("task #%d not found, ignored", in.TaskID))
		}
	}
	return out, nil
}
