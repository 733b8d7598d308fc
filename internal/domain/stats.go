package domain

import "math"

// Statistics summarizes the task list for the dashboard cards.
type Statistics struct {
	Total          int
	Pending        int
	InProgress     int
	Completed      int
	CompletionRate int // Percentage of completed tasks, 0 when there are none
}

// Statistics counts tasks per status in a single pass.
func (b Board) Statistics() Statistics {
	var s Statistics
	for i := range b.Tasks {
		t := &b.Tasks[i]
		s.Total++
		if t.IsCompleted() {
			s.Completed++
			continue
		}
		switch t.Status {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.InProgress++
		}
	}
	s.CompletionRate = Percent(s.Completed, s.Total)
	return s
}

// Percent returns round(part/total*100), rounding half away from zero.
// A zero total yields 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
