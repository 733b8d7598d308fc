package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/gesture"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case ModeHelp:
		body = m.viewHelp()
	case ModeCreate:
		body = m.viewCreateDialog()
	case ModeNormal:
		body = m.viewport.View()
	}

	parts := []string{m.viewHeader(), body}
	if m.toast != nil {
		parts = append(parts, m.viewToast())
	}
	parts = append(parts, m.viewFooter())

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// viewHeader renders the title line, the tab bar and the drag handle.
func (m *Model) viewHeader() string {
	width := m.contentWidth()

	title := m.styles.HeaderText.Render("TaskFlow")
	summary := fmt.Sprintf("%d tasks · %d%% complete", m.stats.Total, m.stats.CompletionRate)
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(summary)
	spacing := max(1, width-lipgloss.Width(title)-lipgloss.Width(rightText))
	titleLine := m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)

	tabs := make([]string, 0, tabCount)
	for t := TabDashboard; t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabNormal.Render(label))
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	// The handle sinks while pulled and returns to the top on release.
	snap := m.gesture.Snapshot()
	handle := m.handleStyle(snap).Render(strings.Repeat(handleGlyph(snap.Rotation), 9))
	handleLine := lipgloss.PlaceHorizontal(width, lipgloss.Center, handle)

	lines := []string{titleLine, tabLine}
	for range m.handleDrop() {
		lines = append(lines, "")
	}
	lines = append(lines, handleLine)
	return strings.Join(lines, "\n")
}

// handleStyle highlights the handle while it is held.
func (m *Model) handleStyle(snap gesture.Snapshot) lipgloss.Style {
	if snap.Settling() {
		return m.styles.Handle
	}
	return m.styles.HandleActive
}

// handleGlyph draws the handle tilted in the direction of rotation.
func handleGlyph(rotation float64) string {
	switch {
	case rotation >= 2:
		return "╲"
	case rotation <= -2:
		return "╱"
	default:
		return "━"
	}
}

// viewContent renders the scrollable body of the current tab.
func (m *Model) viewContent() string {
	switch m.tab {
	case TabTasks:
		return m.viewTasks()
	case TabTeam:
		return m.viewTeam()
	case TabDashboard, tabCount:
	}
	return m.viewDashboard()
}

// viewDashboard renders the statistics cards, recent tasks and top performers.
func (m *Model) viewDashboard() string {
	width := m.contentWidth()
	cardWidth := max(14, width/4-2)

	card := func(value, label string) string {
		return m.styles.Card.Width(cardWidth).Render(
			m.styles.CardValue.Render(value) + "\n" + m.styles.CardLabel.Render(label),
		)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card(fmt.Sprint(m.stats.Total), "Total tasks"),
		card(fmt.Sprint(m.stats.Completed), "Completed"),
		card(fmt.Sprint(m.stats.InProgress), "In progress"),
		card(fmt.Sprintf("%d%%", m.stats.CompletionRate), "Completion rate"),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Recent tasks"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(m.styles.TaskMeta.Render("  No tasks yet"))
		b.WriteString("\n")
	}
	for _, t := range m.recent {
		icon := m.styles.StatusStyle(t.Status).Render(StatusIcon(t.Status))
		badge := m.styles.PriorityStyle(t.Priority).Render(t.Priority.Display())
		title := truncate(escapeNewlines(t.Title), width/2)
		fmt.Fprintf(&b, "  %s %s  %s  %s\n", icon, m.styles.TaskTitle.Render(title), badge,
			m.styles.TaskMeta.Render(t.Assignee))
	}

	b.WriteString(m.styles.Section.Render("Top performers"))
	b.WriteString("\n")
	for i, e := range m.top {
		fmt.Fprintf(&b, "  %s %s %s  %s  %s %s  %s\n",
			m.styles.Rank.Render(fmt.Sprintf("#%d", i+1)),
			m.styles.Avatar.Render(e.Initials()),
			m.styles.TaskTitle.Render(e.Name),
			m.styles.TaskMeta.Render(e.Role),
			m.progress.ViewAs(float64(e.CompletionRate)/100),
			m.styles.CardValue.Render(fmt.Sprintf("%d%%", e.CompletionRate)),
			m.styles.TaskMeta.Render(fmt.Sprintf("%d tasks", e.TasksCount)),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

// viewTasks renders every task with the cursor row highlighted.
func (m *Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}

	width := m.contentWidth()
	rows := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		rows = append(rows, m.renderTaskRow(t, i == m.cursor, width))
	}
	// One blank spacer line between rows; see taskRowHeight.
	return strings.Join(rows, "\n\n")
}

// viewEmptyState renders the empty task list message.
func (m *Model) viewEmptyState() string {
	return m.styles.TaskMeta.Render("No tasks yet. Press ") +
		m.styles.HelpKey.Render("n") +
		m.styles.TaskMeta.Render(" to create one.")
}

// viewTeam renders one card per employee.
func (m *Model) viewTeam() string {
	if len(m.employees) == 0 {
		return m.styles.TaskMeta.Render("No employees")
	}

	width := m.contentWidth()
	cardWidth := max(30, width/2-2)
	cards := make([]string, 0, len(m.employees))
	for _, e := range m.employees {
		body := fmt.Sprintf("%s %s\n%s\n%s %s\n%s %s",
			m.styles.Avatar.Render(e.Initials()),
			m.styles.TaskTitle.Bold(true).Render(e.Name),
			m.styles.TaskMeta.Render(e.Role),
			m.styles.CardLabel.Render("Tasks:"),
			m.styles.CardValue.Render(fmt.Sprint(e.TasksCount)),
			m.progress.ViewAs(float64(e.CompletionRate)/100),
			m.styles.CardValue.Render(fmt.Sprintf("%d%%", e.CompletionRate)),
		)
		cards = append(cards, m.styles.Card.Width(cardWidth).Render(body))
	}

	// Two cards per row when there is room.
	perRow := 1
	if width >= 2*(cardWidth+2) {
		perRow = 2
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// viewCreateDialog renders the create task form.
func (m *Model) viewCreateDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("New task"))
	b.WriteString("\n")

	for f := FieldTitle; f < fieldCount; f++ {
		label := m.styles.FieldLabel.Render(f.Label())
		if f == m.field {
			label = m.styles.FieldFocused.Render(f.Label())
		}

		var value string
		switch f {
		case FieldTitle:
			value = m.titleInput.View()
		case FieldDesc:
			value = m.descInput.View()
		case FieldDueDate:
			value = m.dueInput.View()
		case FieldAssignee:
			value = m.viewAssigneeSelector()
		case FieldPriority:
			value = m.viewPrioritySelector()
		}
		b.WriteString(label + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Title, assignee and due date are required"))

	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewAssigneeSelector() string {
	emp, ok := m.selectedAssignee()
	if !ok {
		return m.styles.Option.Render("‹ Select employee ›")
	}
	return m.styles.OptionActive.Render("‹ " + emp.Name + " ›")
}

func (m *Model) viewPrioritySelector() string {
	opts := make([]string, 0, len(domain.AllPriorities()))
	for i, p := range domain.AllPriorities() {
		if i == m.priorityIdx {
			opts = append(opts, m.styles.PriorityStyle(p).Bold(true).Render("["+p.Display()+"]"))
		} else {
			opts = append(opts, m.styles.Option.Render(" "+p.Display()+" "))
		}
	}
	return strings.Join(opts, " ")
}

// viewToast renders the active notification.
func (m *Model) viewToast() string {
	n := m.toast
	return m.styles.ToastStyle(n.Kind).Render(lipgloss.NewStyle().Bold(true).Render(n.Title) + "\n" + n.Message)
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	if m.mode == ModeCreate {
		return m.help.View(formKeyMap(m.keys))
	}
	return m.help.View(m.keys)
}

// viewHelp renders the full keybinding reference.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Keybindings"))
	b.WriteString("\n")

	sections := []string{"Pages", "Navigation", "Task management", "Create dialog", "General"}
	for i, group := range m.keys.FullHelp() {
		b.WriteString(m.styles.Section.Render(sections[i]))
		b.WriteString("\n")
		for _, kb := range group {
			h := kb.Help()
			fmt.Fprintf(&b, "  %s %s\n",
				m.styles.HelpKey.Width(12).Render(h.Key),
				m.styles.HelpDesc.Render(h.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Drag the handle under the tabs to scroll"))

	return b.String()
}
