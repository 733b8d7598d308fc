package domain

import "errors"

// NotificationKind distinguishes success notices from failures.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is a short, non-fatal message shown to the user.
type Notification struct {
	Title   string
	Message string
	Kind    NotificationKind
}

// TaskCreatedNotification is shown after a task is created.
func TaskCreatedNotification() Notification {
	return Notification{
		Kind:    NotifySuccess,
		Title:   "Success",
		Message: "Task created and assigned to employee",
	}
}

// ErrorNotification converts a task creation failure into a notice.
func ErrorNotification(err error) Notification {
	n := Notification{Kind: NotifyError, Title: "Error"}
	var verr *ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, ErrMissingRequiredFields):
		n.Message = "Fill in all required fields"
	case errors.Is(err, ErrUnknownAssignee):
		n.Message = "Select an employee from the team"
	case errors.Is(err, ErrInvalidDueDate):
		n.Message = "Enter the due date as YYYY-MM-DD"
	case err != nil:
		n.Message = err.Error()
	}
	return n
}
