package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Status colors
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color

	// Priority colors
	Low    lipgloss.Color
	Medium lipgloss.Color
	High   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Pending:    lipgloss.Color("#FDCB6E"), // Yellow
	InProgress: lipgloss.Color("#74B9FF"), // Light blue
	Completed:  lipgloss.Color("#00B894"), // Green

	Low:    lipgloss.Color("#00B894"), // Green
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	High:   lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header       lipgloss.Style
	HeaderText   lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
	TabActive    lipgloss.Style
	TabNormal    lipgloss.Style

	// Cards
	Card      lipgloss.Style
	CardValue lipgloss.Style
	CardLabel lipgloss.Style
	Section   lipgloss.Style

	// Task list
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskDesc          lipgloss.Style
	TaskMeta          lipgloss.Style
	Cursor            lipgloss.Style

	// Status badges
	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style

	// Priority badges
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Employees
	Avatar lipgloss.Style
	Rank   lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Handle: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		HandleActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Underline(true).
			Padding(0, 1),

		TabNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),

		CardLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			MarginTop(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High).
			Bold(true),

		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal).
			Background(Colors.Primary).
			Padding(0, 1),

		Rank: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(13),

		FieldFocused: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Width(13),

		Option: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		OptionActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		ToastSuccess: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Success).
			Foreground(Colors.Success).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Foreground(Colors.Error).
			Padding(0, 1),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.StatusPending
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityHigh:
		return s.PriorityHigh
	default:
		return s.PriorityMedium
	}
}

// ToastStyle returns the style for a notification kind.
func (s Styles) ToastStyle(kind domain.NotificationKind) lipgloss.Style {
	if kind == domain.NotifyError {
		return s.ToastError
	}
	return s.ToastSuccess
}

// StatusIcon returns the status dot for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusInProgress:
		return "◐"
	case domain.StatusCompleted:
		return "●"
	default:
		return "?"
	}
}
