package tui

import "github.com/runoshun/taskflow/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBoardLoaded carries a fresh read of the board.
type MsgBoardLoaded struct {
	Tasks     []domain.Task
	Employees []domain.Employee
	Recent    []domain.Task
	Top       []domain.Employee
	Stats     domain.Statistics
}

func (MsgBoardLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	Notification domain.Notification
	Task         domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgCreateFailed is sent when the create dialog input is rejected.
type MsgCreateFailed struct {
	Err error
}

func (MsgCreateFailed) sealed() {}

// MsgStatusCycled is sent after a status change attempt.
type MsgStatusCycled struct {
	Task  domain.Task
	Found bool
}

func (MsgStatusCycled) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearToast expires the toast with the matching sequence number.
type MsgClearToast struct {
	Seq int
}

func (MsgClearToast) sealed() {}
