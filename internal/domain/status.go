package domain

import "fmt"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusCompleted  Status = "completed"   // Done
)

// statusCycle is the fixed order used by Next.
// Flow: pending → in-progress → completed → pending
var statusCycle = []Status{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
}

// AllStatuses returns all valid status values in cycle order.
func AllStatuses() []Status {
	out := make([]Status, len(statusCycle))
	copy(out, statusCycle)
	return out
}

// Next returns the status that follows s in the cycle.
// Unknown values restart the cycle at pending.
func (s Status) Next() Status {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusPending
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseStatus converts a string into a Status.
// Both "in-progress" and "in_progress" are accepted.
func ParseStatus(s string) (Status, error) {
	if s == "in_progress" {
		return StatusInProgress, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}
