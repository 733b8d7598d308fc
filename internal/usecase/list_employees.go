package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// ListEmployeesInput contains the parameters for ListEmployees.
type ListEmployeesInput struct{}

// ListEmployeesOutput contains the roster.
type ListEmployeesOutput struct {
	Employees []domain.Employee
}

// ListEmployees returns the roster in seed order.
type ListEmployees struct {
	board domain.BoardRepository
}

// NewListEmployees creates a new ListEmployees use case.
func NewListEmployees(board domain.BoardRepository) *ListEmployees {
	return &ListEmployees{board: board}
}

// Execute returns every employee.
func (uc *ListEmployees) Execute(_ context.Context, _ ListEmployeesInput) (*ListEmployeesOutput, error) {
	b, err := uc.board.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	return &ListEmployeesOutput{Employees: b.Employees}, nil
}
