// Package tui provides the terminal user interface for taskflow.
package tui

// Tab is a top-level page of the dashboard.
type Tab int

const (
	TabDashboard Tab = iota // Statistics, recent tasks, top performers
	TabTasks                // Full task list
	TabTeam                 // Employee cards
	tabCount
)

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabTasks:
		return "Tasks"
	case TabTeam:
		return "Team"
	default:
		return "unknown"
	}
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Default navigation mode
	ModeCreate             // Create task dialog
	ModeHelp               // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCreate:
		return "create"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeCreate
}

// FormField is a field of the create task dialog.
type FormField int

const (
	FieldTitle FormField = iota
	FieldDesc
	FieldAssignee
	FieldPriority
	FieldDueDate
	fieldCount
)

// Next returns the next field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % fieldCount
}

// Prev returns the previous field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + fieldCount - 1) % fieldCount
}

// IsText reports whether the field is a free-text input.
func (f FormField) IsText() bool {
	return f == FieldTitle || f == FieldDesc || f == FieldDueDate
}

// Label returns the field caption shown in the dialog.
func (f FormField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDesc:
		return "Description"
	case FieldAssignee:
		return "Assignee"
	case FieldPriority:
		return "Priority"
	case FieldDueDate:
		return "Due date"
	default:
		return ""
	}
}
