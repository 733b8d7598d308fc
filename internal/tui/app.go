package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/gesture"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	gesture   *gesture.Controller
	scroller  *viewportScroller
	toast     *domain.Notification

	// Board state
	tasks     []domain.Task
	employees []domain.Employee
	recent    []domain.Task
	top       []domain.Employee

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	viewport viewport.Model
	progress progress.Model

	// Create dialog inputs (large structs)
	titleInput textinput.Model
	descInput  textinput.Model
	dueInput   textinput.Model

	stats domain.Statistics

	// Numeric state (smaller types last)
	tab         Tab
	mode        Mode
	field       FormField
	cursor      int
	assigneeIdx int // -1 until an employee is picked
	priorityIdx int
	toastSeq    int
	width       int
	height      int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Details (optional)"
	di.CharLimit = 1000

	dd := textinput.New()
	dd.Placeholder = domain.DateLayout
	dd.CharLimit = len(domain.DateLayout)

	pb := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	m := &Model{
		container:   c,
		config:      c.AppConfig,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		viewport:    viewport.New(0, 0),
		progress:    pb,
		titleInput:  ti,
		descInput:   di,
		dueInput:    dd,
		tab:         TabDashboard,
		mode:        ModeNormal,
		assigneeIdx: -1,
		priorityIdx: defaultPriorityIndex(),
	}
	m.scroller = &viewportScroller{vp: &m.viewport}
	m.gesture = gesture.New(m.scroller, c.GestureFactors())
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadBoard()
}

// loadBoard returns a command that reads the board through the use cases.
func (m *Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := m.container.ShowStatsUseCase().Execute(ctx, usecase.ShowStatsInput{
			RecentTasks: m.config.Dashboard.RecentTasks,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		top, err := m.container.TopEmployeesUseCase().Execute(ctx, usecase.TopEmployeesInput{
			Limit: m.config.Dashboard.TopEmployees,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		tasks, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		employees, err := m.container.ListEmployeesUseCase().Execute(ctx, usecase.ListEmployeesInput{})
		if err != nil {
			return MsgError{Err: err}
		}

		return MsgBoardLoaded{
			Tasks:     tasks.Tasks,
			Employees: employees.Employees,
			Recent:    stats.Recent,
			Top:       top.Employees,
			Stats:     stats.Stats,
		}
	}
}

// cycleStatus returns a command that advances a task's status.
func (m *Model) cycleStatus(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CycleStatusUseCase().Execute(context.Background(), usecase.CycleStatusInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatusCycled{Task: out.Task, Found: out.Found}
	}
}

// createTask returns a command that submits the create dialog.
func (m *Model) createTask() tea.Cmd {
	in := usecase.NewTaskInput{
		Title:       m.titleInput.Value(),
		Description: m.descInput.Value(),
		DueDate:     m.dueInput.Value(),
		Priority:    domain.AllPriorities()[m.priorityIdx],
	}
	if emp, ok := m.selectedAssignee(); ok {
		in.Assignee = emp.Name
	}
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgCreateFailed{Err: err}
		}
		return MsgTaskCreated{Task: out.Task, Notification: out.Notification}
	}
}

// showToast displays n and schedules its expiry.
func (m *Model) showToast(n domain.Notification) tea.Cmd {
	m.toastSeq++
	m.toast = &n
	m.syncViewport()
	seq := m.toastSeq
	return tea.Tick(m.config.NotificationDuration(), func(time.Time) tea.Msg {
		return MsgClearToast{Seq: seq}
	})
}

// SelectedTask returns the task under the cursor on the Tasks tab.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// selectedAssignee returns the employee picked in the create dialog.
func (m *Model) selectedAssignee() (domain.Employee, bool) {
	if m.assigneeIdx < 0 || m.assigneeIdx >= len(m.employees) {
		return domain.Employee{}, false
	}
	return m.employees[m.assigneeIdx], true
}

// resetForm clears the create dialog.
func (m *Model) resetForm() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.assigneeIdx = -1
	m.priorityIdx = defaultPriorityIndex()
	m.field = FieldTitle
}

func defaultPriorityIndex() int {
	for i, p := range domain.AllPriorities() {
		if p == domain.DefaultPriority {
			return i
		}
	}
	return 0
}

// viewportScroller feeds gesture scroll output into the content viewport.
// Fractional rows accumulate until they add up to a whole row.
type viewportScroller struct {
	vp  *viewport.Model
	acc float64
}

// ScrollBy advances the viewport by delta rows.
func (s *viewportScroller) ScrollBy(delta float64) {
	s.acc += delta
	rows := int(s.acc)
	if rows <= 0 {
		return
	}
	s.acc -= float64(rows)
	s.vp.ScrollDown(rows)
}
