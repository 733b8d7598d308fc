// Package seed loads the initial employees and tasks from YAML.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskflow/internal/domain"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Ensure Loader implements domain.SeedLoader.
var _ domain.SeedLoader = (*Loader)(nil)

// file is the YAML document layout.
type file struct {
	Employees []domain.Employee `yaml:"employees"`
	Tasks     []domain.Task     `yaml:"tasks"`
}

// Error lists every problem found in a seed document.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrInvalidSeed, strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match domain.ErrInvalidSeed.
func (e *Error) Unwrap() error {
	return domain.ErrInvalidSeed
}

// Loader reads seed data from a file, or the built-in sample when no
// path is set.
type Loader struct {
	path string
}

// NewLoader creates a Loader for path. An empty path selects the
// built-in sample data.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadSeed reads and validates the seed document.
func (l *Loader) LoadSeed() (domain.Board, error) {
	if l.path == "" {
		return Parse(defaultSeed)
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return domain.Board{}, fmt.Errorf("read seed file: %w", err)
	}
	board, err := Parse(data)
	if err != nil {
		return domain.Board{}, fmt.Errorf("%s: %w", l.path, err)
	}
	return board, nil
}

// Parse decodes and validates a seed document.
// Missing task statuses default to pending and missing priorities to medium.
func Parse(data []byte) (domain.Board, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return domain.Board{}, fmt.Errorf("%w: %w", domain.ErrInvalidSeed, err)
	}

	var problems []string
	problemf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	names := make(map[string]bool, len(f.Employees))
	for i, e := range f.Employees {
		if strings.TrimSpace(e.Name) == "" {
			problemf("employee %d: name is required", i+1)
			continue
		}
		if names[e.Name] {
			problemf("employee %q: duplicate name", e.Name)
		}
		names[e.Name] = true
		if e.CompletionRate < 0 || e.CompletionRate > 100 {
			problemf("employee %q: completionRate %d is outside 0-100", e.Name, e.CompletionRate)
		}
		if e.TasksCount < 0 {
			problemf("employee %q: tasksCount must not be negative", e.Name)
		}
		if e.ID == 0 {
			f.Employees[i].ID = i + 1
		}
	}

	// New tasks take len(tasks)+1 as their ID, so seeded IDs must run 1..n.
	for i := range f.Tasks {
		t := &f.Tasks[i]
		if t.ID == 0 {
			t.ID = i + 1
		}
		label := fmt.Sprintf("task %d", t.ID)
		if t.ID != i+1 {
			problemf("%s: id out of sequence, want %d", label, i+1)
		}

		if strings.TrimSpace(t.Title) == "" {
			problemf("%s: title is required", label)
		}
		switch {
		case strings.TrimSpace(t.Assignee) == "":
			problemf("%s: assignee is required", label)
		case !names[t.Assignee]:
			problemf("%s: assignee %q is not an employee", label, t.Assignee)
		}
		if _, err := time.Parse(domain.DateLayout, t.DueDate); err != nil {
			problemf("%s: dueDate %q is not YYYY-MM-DD", label, t.DueDate)
		}

		if t.Status == "" {
			t.Status = domain.StatusPending
		} else if st, err := domain.ParseStatus(string(t.Status)); err != nil {
			problemf("%s: %v", label, err)
		} else {
			t.Status = st
		}

		if t.Priority == "" {
			t.Priority = domain.DefaultPriority
		} else if !t.Priority.IsValid() {
			problemf("%s: %v: %q", label, domain.ErrInvalidPriority, t.Priority)
		}
	}

	if len(problems) > 0 {
		return domain.Board{}, &Error{Problems: problems}
	}
	return domain.NewBoard(f.Employees, f.Tasks), nil
}
