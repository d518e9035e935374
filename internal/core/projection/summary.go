package projection

import (
	"sort"
	"time"

	"tasktracker/internal/core/domain"
)

const activityDays = 7

type Summary struct {
	Total      int
	Completed  int
	Active     int
	InProgress int
	ByType     map[domain.TaskType]int
	Epics      []EpicProgress
	Workload   map[domain.UserID]int
	Activity   []DailyActivity
}

type EpicProgress struct {
	ID        domain.TaskID
	Title     string
	Completed bool
}

// DailyActivity counts tasks created on Day (midnight in the summary location).
type DailyActivity struct {
	Day   time.Time
	Count int
}

// Summarize builds dashboard statistics for the user's tasks. Days are
// computed in loc; Activity holds the most recent days that saw a task
// created, oldest first.
func Summarize(tasks []domain.Task, userID domain.UserID, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}

	summary := Summary{
		ByType:   make(map[domain.TaskType]int),
		Epics:    make([]EpicProgress, 0),
		Workload: make(map[domain.UserID]int),
		Activity: make([]DailyActivity, 0),
	}

	perDay := make(map[time.Time]int)
	for _, task := range owned(tasks, userID) {
		summary.Total++
		if task.Completed() {
			summary.Completed++
		}
		if task.Status == domain.TaskStatusInProgress {
			summary.InProgress++
		}
		if task.TaskType != nil {
			summary.ByType[*task.TaskType]++
			if *task.TaskType == domain.TaskTypeEpic {
				summary.Epics = append(summary.Epics, EpicProgress{
					ID:        task.ID,
					Title:     task.Title,
					Completed: task.Completed(),
				})
			}
		}
		if task.AssignedTo != "" {
			summary.Workload[task.AssignedTo]++
		}
		perDay[startOfDay(task.CreatedAt, loc)]++
	}
	summary.Active = summary.Total - summary.Completed

	for day, count := range perDay {
		summary.Activity = append(summary.Activity, DailyActivity{Day: day, Count: count})
	}
	sort.Slice(summary.Activity, func(i, j int) bool {
		return summary.Activity[i].Day.Before(summary.Activity[j].Day)
	})
	if len(summary.Activity) > activityDays {
		summary.Activity = summary.Activity[len(summary.Activity)-activityDays:]
	}

	return summary
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
