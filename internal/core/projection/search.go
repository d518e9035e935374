package projection

import (
	"strings"
	"time"

	"tasktracker/internal/core/domain"
)

const week = 7 * 24 * time.Hour

// Search is the advanced search: query, exact priority, exact status and a due
// date range evaluated against now. Results keep collection order.
func Search(tasks []domain.Task, userID domain.UserID, criteria domain.SearchCriteria, now time.Time) []domain.Task {
	query := strings.ToLower(criteria.Query)

	result := make([]domain.Task, 0)
	for _, task := range owned(tasks, userID) {
		if !matchesQuery(task, query) {
			continue
		}
		if criteria.Priority != nil && task.Priority != *criteria.Priority {
			continue
		}
		if criteria.Status != nil && task.Status != *criteria.Status {
			continue
		}
		if !inRange(task.DueDate, criteria.DateRange, now) {
			continue
		}
		result = append(result, task)
	}
	return result
}

func inRange(due time.Time, dateRange domain.DateRange, now time.Time) bool {
	switch dateRange {
	case domain.DateRangeToday:
		return domain.SameDay(due, now, now.Location())
	case domain.DateRangeWeek:
		return !due.Before(now) && !due.After(now.Add(week))
	default:
		return true
	}
}
