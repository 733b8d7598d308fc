package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
)

// CheckSeedInput contains the input for the CheckSeed use case.
type CheckSeedInput struct{}

// CheckSeedOutput summarizes a valid seed document.
type CheckSeedOutput struct {
	Employees int
	Tasks     int
}

// CheckSeed validates seed data without loading it into the board.
type CheckSeed struct {
	loader domain.SeedLoader
}

// NewCheckSeed creates a new CheckSeed use case.
func NewCheckSeed(loader domain.SeedLoader) *CheckSeed {
	return &CheckSeed{loader: loader}
}

// Execute loads and validates the seed.
func (uc *CheckSeed) Execute(_ context.Context, _ CheckSeedInput) (*CheckSeedOutput, error) {
	b, err := uc.loader.LoadSeed()
	if err != nil {
		return nil, err
	}
	return &CheckSeedOutput{
		Employees: len(b.Employees),
		Tasks:     len(b.Tasks),
	}, nil
}
