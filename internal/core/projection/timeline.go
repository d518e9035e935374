package projection

import (
	"time"

	"tasktracker/internal/core/domain"
)

// TimelineEntry is a task with its resolved active interval.
type TimelineEntry struct {
	Task  domain.Task
	Start time.Time
	End   time.Time
}

// Timeline orders the user's tasks by due date. Start and End fall back to
// CreatedAt and DueDate when the task carries no explicit interval.
func Timeline(tasks []domain.Task, userID domain.UserID) []TimelineEntry {
	mine := owned(tasks, userID)
	SortTasks(mine, domain.SortByDueDate)

	entries := make([]TimelineEntry, 0, len(mine))
	for _, task := range mine {
		entries = append(entries, TimelineEntry{
			Task:  task,
			Start: task.Start(),
			End:   task.End(),
		})
	}
	return entries
}
