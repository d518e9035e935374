// Package projection derives what a view displays from the task collection.
// Every function here is pure: it neither mutates its input nor keeps state.
package projection

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tasktracker/internal/core/domain"
)

// Project applies, in order, the ownership filter, the status filter, the
// search filter and a stable sort. An empty userID yields no tasks.
func Project(tasks []domain.Task, userID domain.UserID, view domain.ViewState) []domain.Task {
	result := make([]domain.Task, 0)
	if userID == "" {
		return result
	}

	query := strings.ToLower(view.SearchQuery)
	for _, task := range tasks {
		if task.UserID != userID {
			continue
		}
		if !view.Filter.Keep(task) {
			continue
		}
		if !matchesQuery(task, query) {
			continue
		}
		result = append(result, task.Clone())
	}

	SortTasks(result, view.SortBy)
	return result
}

// SortTasks sorts tasks in place by key. Equal keys keep their relative order.
// Unknown keys leave the slice untouched.
func SortTasks(tasks []domain.Task, key domain.SortKey) {
	switch key {
	case "", domain.SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})

	case domain.SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		})

	case domain.SortByTitle:
		// Collators keep scratch buffers, so each sort gets its own.
		c := collate.New(language.English)
		sort.SliceStable(tasks, func(i, j int) bool {
			return c.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})

	case domain.SortByStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Status.Rank() < tasks[j].Status.Rank()
		})
	}
}

// matchesQuery expects an already lower-cased query.
func matchesQuery(task domain.Task, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), query) ||
		strings.Contains(strings.ToLower(task.Description), query)
}

func owned(tasks []domain.Task, userID domain.UserID) []domain.Task {
	result := make([]domain.Task, 0)
	if userID == "" {
		return result
	}
	for _, task := range tasks {
		if task.UserID == userID {
			result = append(result, task.Clone())
		}
	}
	return result
}
