package domain

import (
	"fmt"
	"strings"
)

// Filter selects tasks by completion.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(value string) (Filter, error) {
	switch Filter(strings.TrimSpace(value)) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("%w: filter %q", ErrInvalidViewState, value)
}

// Keep reports whether a task passes the filter.
func (f Filter) Keep(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed()
	case FilterCompleted:
		return t.Completed()
	default:
		return true
	}
}

type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
	SortByStatus   SortKey = "status"
)

func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(value)) {
	case "", SortByDueDate:
		return SortByDueDate, nil
	case SortByPriority:
		return SortByPriority, nil
	case SortByTitle:
		return SortByTitle, nil
	case SortByStatus:
		return SortByStatus, nil
	}
	return "", fmt.Errorf("%w: sort %q", ErrInvalidViewState, value)
}

// ViewState is the ephemeral state a view passes to the projection on every render.
type ViewState struct {
	Filter      Filter
	SearchQuery string
	SortBy      SortKey
}

// DateRange narrows the advanced search by due date.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
)

func ParseDateRange(value string) (DateRange, error) {
	switch DateRange(strings.TrimSpace(value)) {
	case "", DateRangeAll:
		return DateRangeAll, nil
	case DateRangeToday:
		return DateRangeToday, nil
	case DateRangeWeek:
		return DateRangeWeek, nil
	}
	return "", fmt.Errorf("%w: date range %q", ErrInvalidViewState, value)
}

// SearchCriteria drives the advanced search. Nil Priority or Status means any.
type SearchCriteria struct {
	Query     string
	Priority  *Priority
	Status    *TaskStatus
	DateRange DateRange
}
