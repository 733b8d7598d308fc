package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrMissingRequiredFields = errors.New("fill in all required fields")
	ErrUnknownAssignee       = errors.New("assignee is not a known employee")
	ErrInvalidDueDate        = errors.New("due date must be in YYYY-MM-DD format")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidSeed           = errors.New("invalid seed data")
	ErrNotGitRepository      = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists          = errors.New("config file already exists")
)

// ValidationError reports the required task fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrMissingRequiredFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrMissingRequiredFields.
func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredFields
}
