package projection

import (
	"time"

	"tasktracker/internal/core/domain"
)

type CalendarDay struct {
	Day   time.Time
	Tasks []domain.Task
}

// Calendar lays out every day of the month containing month, each with the
// user's tasks due that day in collection order. Days use month's location.
func Calendar(tasks []domain.Task, userID domain.UserID, month time.Time) []CalendarDay {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	mine := owned(tasks, userID)
	days := make([]CalendarDay, 0, 31)
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		entry := CalendarDay{Day: day, Tasks: make([]domain.Task, 0)}
		for _, task := range mine {
			if domain.SameDay(task.DueDate, day, loc) {
				entry.Tasks = append(entry.Tasks, task)
			}
		}
		days = append(days, entry)
	}
	return days
}
