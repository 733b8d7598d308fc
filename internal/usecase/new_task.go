// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	Assignee    string          // Employee name (required)
	DueDate     string          // YYYY-MM-DD (required)
	Priority    domain.Priority // Empty = medium
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Notification domain.Notification
	Task         domain.Task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	board  domain.BoardRepository
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(board domain.BoardRepository, logger domain.Logger) *NewTask {
	return &NewTask{
		board:  board,
		logger: logger,
	}
}

// Execute validates the input and appends a pending task to the board.
// Nothing is saved when validation fails.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	draft := domain.TaskDraft{
		Title:       in.Title,
		Description: in.Description,
		Assignee:    in.Assignee,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}

	var created domain.Task
	err := uc.board.Update(func(b domain.Board) (domain.Board, error) {
		next, task, err := b.CreateTask(draft)
		if err != nil {
			return b, err
		}
		created = task
		return next, nil
	})
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn(0, "task", fmt.Sprintf("create rejected: %v", err))
		}
		return nil, fmt.Errorf("create task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(created.ID, "task", fmt.Sprintf("created: %q assigned to %s", created.Title, created.Assignee))
	}

	return &NewTaskOutput{
		Task:         created,
		Notification: domain.TaskCreatedNotification(),
	}, nil
}
