package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// ShowStatsInput contains the parameters for ShowStats.
type ShowStatsInput struct {
	RecentTasks int // Number of recent tasks to return
}

// ShowStatsOutput contains the dashboard overview.
type ShowStatsOutput struct {
	Recent []domain.Task
	Stats  domain.Statistics
}

// ShowStats computes the dashboard statistics.
type ShowStats struct {
	board domain.BoardRepository
}

// NewShowStats creates a new ShowStats use case.
func NewShowStats(board domain.BoardRepository) *ShowStats {
	return &ShowStats{board: board}
}

// Execute returns the statistics and the recent-task list.
func (uc *ShowStats) Execute(_ context.Context, in ShowStatsInput) (*ShowStatsOutput, error) {
	b, err := uc.board.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	return &ShowStatsOutput{
		Stats:  b.Statistics(),
		Recent: b.RecentTasks(in.RecentTasks),
	}, nil
}
