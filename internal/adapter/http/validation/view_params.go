package validation

import (
	"fmt"
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

const monthLayout = "2006-01"

func BuildViewState(query dto.ViewQuery) (domain.ViewState, error) {
	filter, err := domain.ParseFilter(query.Filter)
	if err != nil {
		return domain.ViewState{}, err
	}
	sortBy, err := domain.ParseSortKey(query.Sort)
	if err != nil {
		return domain.ViewState{}, err
	}
	return domain.ViewState{
		Filter:      filter,
		SearchQuery: query.Query,
		SortBy:      sortBy,
	}, nil
}

// BuildSearchCriteria maps the advanced search parameters. Empty or "all"
// priority and status match anything.
func BuildSearchCriteria(query dto.SearchQuery) (domain.SearchCriteria, error) {
	criteria := domain.SearchCriteria{Query: query.Query}

	if value := strings.TrimSpace(query.Priority); value != "" && value != "all" {
		priority, err := domain.ParsePriority(value)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		criteria.Priority = &priority
	}

	if value := strings.TrimSpace(query.Status); value != "" && value != "all" {
		status, err := domain.ParseTaskStatus(value)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		criteria.Status = &status
	}

	dateRange, err := domain.ParseDateRange(query.DateRange)
	if err != nil {
		return domain.SearchCriteria{}, err
	}
	criteria.DateRange = dateRange

	return criteria, nil
}

// ParseMonth reads a YYYY-MM value. An empty value is the month of now.
func ParseMonth(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	month, err := time.ParseInLocation(monthLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q", domain.ErrInvalidViewState, value)
	}
	return month, nil
}
