package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/gesture"
)

// Layout constants.
const (
	headerBaseRows = 3 // Title, tab bar and drag handle
	maxHandleDrop  = 4 // Rows the handle can be pulled down
	toastRows      = 4 // Bordered toast box
	footerRows     = 1
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(30, max(10, msg.Width/4))
		m.syncViewport()
		return m, nil

	case MsgBoardLoaded:
		m.tasks = msg.Tasks
		m.employees = msg.Employees
		m.recent = msg.Recent
		m.top = msg.Top
		m.stats = msg.Stats
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		m.syncViewport()
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.resetForm()
		m.blurInputs()
		return m, tea.Batch(m.showToast(msg.Notification), m.loadBoard())

	case MsgCreateFailed:
		// The dialog stays open so the user can correct the input.
		return m, m.showToast(domain.ErrorNotification(msg.Err))

	case MsgStatusCycled:
		return m, m.loadBoard()

	case MsgError:
		m.mode = ModeNormal
		return m, m.showToast(domain.Notification{
			Kind:    domain.NotifyError,
			Title:   "Error",
			Message: msg.Err.Error(),
		})

	case MsgClearToast:
		if msg.Seq == m.toastSeq {
			m.toast = nil
			m.syncViewport()
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeCreate:
		return m.handleCreateMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Dashboard):
		m.switchTab(TabDashboard)
		return m, nil

	case key.Matches(msg, m.keys.Tasks):
		m.switchTab(TabTasks)
		return m, nil

	case key.Matches(msg, m.keys.Team):
		m.switchTab(TabTeam)
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(m.tab.Next())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.tab == TabTasks {
			m.moveCursor(-1)
		} else {
			m.viewport.ScrollUp(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.tab == TabTasks {
			m.moveCursor(1)
		} else {
			m.viewport.ScrollDown(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.New):
		return m, m.openCreateDialog()

	case key.Matches(msg, m.keys.Cycle):
		if m.tab != TabTasks {
			return m, nil
		}
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.cycleStatus(task.ID)
	}

	return m, nil
}

// handleCreateMode handles keys while the create dialog is open.
func (m *Model) handleCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetForm()
		m.blurInputs()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.createTask()

	case msg.Type == tea.KeyEnter:
		if m.field == FieldDueDate {
			return m, m.createTask()
		}
		return m, m.focusField(m.field.Next())

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField(m.field.Next())

	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField(m.field.Prev())

	case !m.field.IsText() && key.Matches(msg, m.keys.Left):
		m.selectOption(-1)
		return m, nil

	case !m.field.IsText() && key.Matches(msg, m.keys.Right):
		m.selectOption(1)
		return m, nil
	}

	// Forward to current input field
	var cmd tea.Cmd
	switch m.field {
	case FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case FieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case FieldDueDate:
		m.dueInput, cmd = m.dueInput.Update(msg)
	case FieldAssignee, FieldPriority:
	}
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleMouseMsg routes mouse input to the drag gesture or the viewport.
// A drag starts only on the header rows, where the handle lives.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The form keeps the pointer unless a drag has to be finished.
	if m.mode.IsInputMode() && !m.gesture.Dragging() {
		return m, nil
	}
	y := float64(msg.Y)

	switch {
	case tea.MouseEvent(msg).IsWheel():
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < m.headerHeight() {
			m.gesture.Handle(gesture.PointerDown{Y: y})
			m.syncViewport()
		}

	case msg.Action == tea.MouseActionMotion:
		if m.gesture.Dragging() {
			m.gesture.Handle(gesture.PointerMove{Y: y})
			m.syncViewport()
		}

	case msg.Action == tea.MouseActionRelease:
		if m.gesture.Dragging() {
			m.gesture.Handle(gesture.PointerUp{})
			m.syncViewport()
		}
	}

	return m, nil
}

// openCreateDialog switches to create mode with an empty form.
func (m *Model) openCreateDialog() tea.Cmd {
	m.mode = ModeCreate
	m.resetForm()
	return m.focusField(FieldTitle)
}

// focusField moves the dialog focus to f.
func (m *Model) focusField(f FormField) tea.Cmd {
	m.field = f
	m.blurInputs()

	switch f {
	case FieldTitle:
		return m.titleInput.Focus()
	case FieldDesc:
		return m.descInput.Focus()
	case FieldDueDate:
		return m.dueInput.Focus()
	case FieldAssignee, FieldPriority:
	}
	return nil
}

func (m *Model) blurInputs() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
}

// selectOption steps the focused selector by delta.
func (m *Model) selectOption(delta int) {
	switch m.field {
	case FieldAssignee:
		n := len(m.employees)
		if n == 0 {
			return
		}
		if m.assigneeIdx < 0 {
			// Nothing picked yet; either arrow starts at an end of the roster.
			if delta > 0 {
				m.assigneeIdx = 0
			} else {
				m.assigneeIdx = n - 1
			}
			return
		}
		m.assigneeIdx = (m.assigneeIdx + delta + n) % n

	case FieldPriority:
		m.priorityIdx = min(max(m.priorityIdx+delta, 0), len(domain.AllPriorities())-1)

	case FieldTitle, FieldDesc, FieldDueDate:
	}
}

// switchTab shows tab t from the top.
func (m *Model) switchTab(t Tab) {
	m.tab = t
	m.syncViewport()
	m.viewport.GotoTop()
}

// moveCursor moves the task cursor and keeps it on screen.
func (m *Model) moveCursor(delta int) {
	if len(m.tasks) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.tasks)-1)
	m.syncViewport()

	top := m.cursor * taskRowHeight
	bottom := top + taskRowHeight - 1
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// handleDrop returns how many rows the handle is pushed down.
func (m *Model) handleDrop() int {
	drop := int(math.Round(m.gesture.Snapshot().Offset))
	return min(max(drop, 0), maxHandleDrop)
}

// headerHeight returns the rows above the content viewport.
func (m *Model) headerHeight() int {
	return headerBaseRows + m.handleDrop()
}

// syncViewport resizes the viewport to the free space and refreshes its content.
func (m *Model) syncViewport() {
	if m.width == 0 {
		return
	}
	bottom := footerRows
	if m.toast != nil {
		bottom += toastRows
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = max(1, m.height-m.headerHeight()-bottom)
	m.viewport.SetContent(m.viewContent())
}

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	return max(20, m.width-m.styles.App.GetHorizontalFrameSize())
}
