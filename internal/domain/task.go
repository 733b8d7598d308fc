// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Task represents a unit of work assigned to an employee.
// Fields are ordered to minimize memory padding.
type Task struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Assignee    string   `yaml:"assignee"`
	Status      Status   `yaml:"status"`
	Priority    Priority `yaml:"priority"`
	DueDate     string   `yaml:"dueDate"` // YYYY-MM-DD
	ID          int      `yaml:"id"`
}

// Due parses the due date. The second result is false when the
// date is empty or malformed.
func (t *Task) Due() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsCompleted returns true if the task is done.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskDraft holds the create-form values before validation.
type TaskDraft struct {
	Title       string
	Description string
	Assignee    string
	Priority    Priority
	DueDate     string
}

// MissingFields returns the names of required fields that are blank.
func (d TaskDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Assignee) == "" {
		missing = append(missing, "assignee")
	}
	if strings.TrimSpace(d.DueDate) == "" {
		missing = append(missing, "due date")
	}
	return missing
}
