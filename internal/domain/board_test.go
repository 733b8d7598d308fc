package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployees() []Employee {
	return []Employee{
		{ID: 1, Name: "Alexey Ivanov", Role: "Senior Developer", TasksCount: 12, CompletionRate: 85},
		{ID: 2, Name: "Maria Petrova", Role: "UI/UX Designer", TasksCount: 8, CompletionRate: 92},
		{ID: 3, Name: "Dmitry Smirnov", Role: "Frontend Developer", TasksCount: 15, CompletionRate: 78},
		{ID: 4, Name: "Elena Kozlova", Role: "QA Engineer", TasksCount: 10, CompletionRate: 88},
	}
}

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Build analytics module", Assignee: "Alexey Ivanov", Status: StatusInProgress, Priority: PriorityHigh, DueDate: "2024-01-15"},
		{ID: 2, Title: "Fix UI bugs", Assignee: "Maria Petrova", Status: StatusCompleted, Priority: PriorityMedium, DueDate: "2024-01-10"},
		{ID: 3, Title: "Update documentation", Assignee: "Dmitry Smirnov", Status: StatusPending, Priority: PriorityLow, DueDate: "2024-01-20"},
	}
}

func validDraft() TaskDraft {
	return TaskDraft{
		Title:       "Write release notes",
		Description: "Summarize the sprint",
		Assignee:    "Elena Kozlova",
		Priority:    PriorityHigh,
		DueDate:     "2024-02-01",
	}
}

func TestBoard_CreateTask_Success(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	next, task, err := board.CreateTask(validDraft())

	require.NoError(t, err)
	assert.Len(t, next.Tasks, 4)
	assert.Len(t, board.Tasks, 3, "receiver must not change")

	assert.Equal(t, 4, task.ID)
	assert.Equal(t, "Write release notes", task.Title)
	assert.Equal(t, "Summarize the sprint", task.Description)
	assert.Equal(t, "Elena Kozlova", task.Assignee)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, "2024-02-01", task.DueDate)
	assert.Equal(t, task, next.Tasks[3])
}

func TestBoard_CreateTask_IDNotPreviouslyUsed(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)
	seen := map[int]bool{}

	for i := 0; i < 5; i++ {
		var task Task
		var err error
		board, task, err = board.CreateTask(validDraft())
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "ID %d reused", task.ID)
		seen[task.ID] = true
	}
	assert.Len(t, board.Tasks, 5)
}

func TestBoard_CreateTask_DefaultsPriority(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)
	draft := validDraft()
	draft.Priority = ""

	_, task, err := board.CreateTask(draft)

	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestBoard_CreateTask_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *TaskDraft)
		missing []string
	}{
		{"empty title", func(d *TaskDraft) { d.Title = "" }, []string{"title"}},
		{"blank title", func(d *TaskDraft) { d.Title = "   " }, []string{"title"}},
		{"empty assignee", func(d *TaskDraft) { d.Assignee = "" }, []string{"assignee"}},
		{"empty due date", func(d *TaskDraft) { d.DueDate = "" }, []string{"due date"}},
		{"everything empty", func(d *TaskDraft) { *d = TaskDraft{} }, []string{"title", "assignee", "due date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(sampleEmployees(), sampleTasks())
			draft := validDraft()
			tt.mutate(&draft)

			next, _, err := board.CreateTask(draft)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.missing, verr.Fields)
			assert.Equal(t, board.Tasks, next.Tasks, "task list must be unchanged")
		})
	}
}

func TestBoard_CreateTask_UnknownAssignee(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())
	draft := validDraft()
	draft.Assignee = "Nobody"

	next, _, err := board.CreateTask(draft)

	assert.ErrorIs(t, err, ErrUnknownAssignee)
	assert.Len(t, next.Tasks, 3)
}

func TestBoard_CreateTask_InvalidDueDate(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())
	draft := validDraft()
	draft.DueDate = "01/02/2024"

	next, _, err := board.CreateTask(draft)

	assert.ErrorIs(t, err, ErrInvalidDueDate)
	assert.Len(t, next.Tasks, 3)
}

func TestBoard_CreateTask_InvalidPriority(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)
	draft := validDraft()
	draft.Priority = "urgent"

	_, _, err := board.CreateTask(draft)

	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestBoard_CycleStatus(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	next := board.CycleStatus(3)

	got, ok := next.Task(3)
	require.True(t, ok)
	assert.Equal(t, StatusInProgress, got.Status)

	orig, _ := board.Task(3)
	assert.Equal(t, StatusPending, orig.Status, "receiver must not change")
}

func TestBoard_CycleStatus_ThreeTimesRestores(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	for _, task := range board.Tasks {
		next := board.CycleStatus(task.ID).CycleStatus(task.ID).CycleStatus(task.ID)
		got, ok := next.Task(task.ID)
		require.True(t, ok)
		assert.Equal(t, task.Status, got.Status, "task #%d", task.ID)
	}
}

func TestBoard_CycleStatus_UnknownIDIsNoop(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	next := board.CycleStatus(99)

	assert.Equal(t, board, next)
}

func TestBoard_TopEmployees(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)

	top := board.TopEmployees(2)

	require.Len(t, top, 2)
	assert.Equal(t, "Maria Petrova", top[0].Name)
	assert.Equal(t, 92, top[0].CompletionRate)
	assert.Equal(t, "Elena Kozlova", top[1].Name)
	assert.Equal(t, 88, top[1].CompletionRate)

	// Roster order is preserved.
	assert.Equal(t, "Alexey Ivanov", board.Employees[0].Name)
}

func TestBoard_TopEmployees_StableTies(t *testing.T) {
	board := NewBoard([]Employee{
		{ID: 1, Name: "A", CompletionRate: 50},
		{ID: 2, Name: "B", CompletionRate: 90},
		{ID: 3, Name: "C", CompletionRate: 50},
		{ID: 4, Name: "D", CompletionRate: 90},
	}, nil)

	top := board.TopEmployees(4)

	names := make([]string, 0, len(top))
	for _, e := range top {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
}

func TestBoard_TopEmployees_Bounds(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)

	assert.Empty(t, board.TopEmployees(0))
	assert.Empty(t, board.TopEmployees(-1))
	assert.Len(t, board.TopEmployees(10), 4)
}

func TestBoard_RecentTasks(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	recent := board.RecentTasks(2)

	require.Len(t, recent, 2)
	assert.Equal(t, 1, recent[0].ID)
	assert.Equal(t, 2, recent[1].ID)
	assert.Len(t, board.RecentTasks(10), 3)
	assert.Empty(t, board.RecentTasks(0))
}

func TestBoard_TasksByStatus(t *testing.T) {
	board := NewBoard(sampleEmployees(), sampleTasks())

	assert.Len(t, board.TasksByStatus(StatusPending), 1)
	assert.Len(t, board.TasksByStatus(StatusCompleted), 1)
	assert.Equal(t, 1, board.TasksByStatus(StatusInProgress)[0].ID)
}

func TestBoard_Employee(t *testing.T) {
	board := NewBoard(sampleEmployees(), nil)

	e, ok := board.Employee("Maria Petrova")
	require.True(t, ok)
	assert.Equal(t, 2, e.ID)

	_, ok = board.Employee("maria petrova")
	assert.False(t, ok)
}

func TestNewBoard_CopiesSlices(t *testing.T) {
	tasks := sampleTasks()
	board := NewBoard(sampleEmployees(), tasks)

	tasks[0].Title = "changed"

	assert.Equal(t, "Build analytics module", board.Tasks[0].Title)
}
