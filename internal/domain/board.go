package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Board is the complete dashboard state: the ordered task list and the
// read-only employee roster.
//
// Board is a value. Update methods never modify their receiver; they
// return the next board instead, so callers can keep or discard either.
type Board struct {
	Tasks     []Task
	Employees []Employee
}

// NewBoard creates a board that owns copies of the given slices.
func NewBoard(employees []Employee, tasks []Task) Board {
	return Board{
		Tasks:     slices.Clone(tasks),
		Employees: slices.Clone(employees),
	}
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	return NewBoard(b.Employees, b.Tasks)
}

// CreateTask validates the draft and appends a new pending task.
// On any validation failure the receiver is returned unchanged together
// with the error.
func (b Board) CreateTask(d TaskDraft) (Board, Task, error) {
	if missing := d.MissingFields(); len(missing) > 0 {
		return b, Task{}, &ValidationError{Fields: missing}
	}

	assignee := strings.TrimSpace(d.Assignee)
	if _, ok := b.Employee(assignee); !ok {
		return b, Task{}, fmt.Errorf("%w: %q", ErrUnknownAssignee, assignee)
	}

	due := strings.TrimSpace(d.DueDate)
	if _, err := time.Parse(DateLayout, due); err != nil {
		return b, Task{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, due)
	}

	priority := d.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	if !priority.IsValid() {
		return b, Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	task := Task{
		ID:          len(b.Tasks) + 1,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Assignee:    assignee,
		Status:      StatusPending,
		Priority:    priority,
		DueDate:     due,
	}

	next := b.Clone()
	next.Tasks = append(next.Tasks, task)
	return next, task, nil
}

// CycleStatus advances the status of the task with the given ID.
// It returns the receiver unchanged if no task matches.
func (b Board) CycleStatus(taskID int) Board {
	idx := b.indexOf(taskID)
	if idx < 0 {
		return b
	}
	next := b.Clone()
	next.Tasks[idx].Status = next.Tasks[idx].Status.Next()
	return next
}

// Task returns the task with the given ID.
func (b Board) Task(id int) (Task, bool) {
	idx := b.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return b.Tasks[idx], true
}

// Employee returns the employee with the given name.
func (b Board) Employee(name string) (Employee, bool) {
	for _, e := range b.Employees {
		if e.Name == name {
			return e, true
		}
	}
	return Employee{}, false
}

// RecentTasks returns the first n tasks in insertion order.
func (b Board) RecentTasks(n int) []Task {
	if n <= 0 {
		return []Task{}
	}
	if n > len(b.Tasks) {
		n = len(b.Tasks)
	}
	return slices.Clone(b.Tasks[:n])
}

// TopEmployees returns up to n employees ordered by completion rate,
// highest first. Employees with equal rates keep their roster order.
func (b Board) TopEmployees(n int) []Employee {
	if n <= 0 {
		return []Employee{}
	}
	sorted := slices.Clone(b.Employees)
	slices.SortStableFunc(sorted, func(x, y Employee) int {
		return y.CompletionRate - x.CompletionRate
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// TasksByStatus returns the tasks with the given status in list order.
func (b Board) TasksByStatus(s Status) []Task {
	out := []Task{}
	for _, t := range b.Tasks {
		if t.Status == s {
			out = append(out, t)
		}
	}
	return out
}

func (b Board) indexOf(id int) int {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
