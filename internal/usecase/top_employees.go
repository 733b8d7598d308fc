package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// TopEmployeesInput contains the parameters for TopEmployees.
type TopEmployeesInput struct {
	Limit int
}

// TopEmployeesOutput contains the ranked employees.
type TopEmployeesOutput struct {
	Employees []domain.Employee // Highest completion rate first
}

// TopEmployees ranks employees by completion rate.
type TopEmployees struct {
	board domain.BoardRepository
}

// NewTopEmployees creates a new TopEmployees use case.
func NewTopEmployees(board domain.BoardRepository) *TopEmployees {
	return &TopEmployees{board: board}
}

// Execute returns up to in.Limit employees. The roster order is not changed.
func (uc *TopEmployees) Execute(_ context.Context, in TopEmployeesInput) (*TopEmployeesOutput, error) {
	b, err := uc.board.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	return &TopEmployeesOutput{Employees: b.TopEmployees(in.Limit)}, nil
}
