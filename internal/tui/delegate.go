package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/taskflow/internal/domain"
)

// taskRowHeight is the number of lines one task occupies in the list,
// including the blank spacer line.
const taskRowHeight = 3

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// DueLabel formats a due date with its distance from now,
// e.g. "2024-01-15 (3 days ago)".
func DueLabel(t domain.Task, now time.Time) string {
	due, ok := t.Due()
	if !ok {
		return t.DueDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due.Equal(today) {
		return t.DueDate + " (today)"
	}
	return fmt.Sprintf("%s (%s)", t.DueDate, humanize.RelTime(due, today, "ago", "from now"))
}

// renderTaskRow renders one task as two lines: the title line with the
// priority badge and status, then the description and assignment details.
func (m *Model) renderTaskRow(task domain.Task, selected bool, width int) string {
	indicator := " "
	titleStyle := m.styles.TaskTitle
	if selected {
		indicator = m.styles.Cursor.Render(">")
		titleStyle = m.styles.TaskTitleSelected
	}

	icon := m.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status))
	status := m.styles.StatusStyle(task.Status).Render(task.Status.Display())
	badge := m.styles.PriorityStyle(task.Priority).Render("[" + task.Priority.Display() + "]")

	// Fixed parts: indicator, icon, badge and status plus separators.
	fixed := 6 + runewidth.StringWidth(task.Priority.Display()) + 2 + runewidth.StringWidth(task.Status.Display())
	title := truncate(escapeNewlines(task.Title), width-fixed)

	line := fmt.Sprintf("%s %s %s %s  %s", indicator, icon, titleStyle.Render(title), badge, status)

	meta := fmt.Sprintf("%s · due %s", task.Assignee, DueLabel(task, m.container.Clock.Now()))
	details := meta
	if task.Description != "" {
		details = escapeNewlines(task.Description) + " · " + meta
	}
	details = "    " + truncate(details, width-4)

	return line + "\n" + m.styles.TaskDesc.Render(details)
}
