package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/projection"
)

func ToSummaryResponse(summary projection.Summary) dto.SummaryResponse {
	resp := dto.SummaryResponse{
		Total:      summary.Total,
		Completed:  summary.Completed,
		Active:     summary.Active,
		InProgress: summary.InProgress,
		ByType:     make(map[string]int, len(summary.ByType)),
		Epics:      make([]dto.EpicProgress, 0, len(summary.Epics)),
		Workload:   make(map[string]int, len(summary.Workload)),
		Activity:   make([]dto.DailyActivity, 0, len(summary.Activity)),
	}

	for taskType, count := range summary.ByType {
		resp.ByType[string(taskType)] = count
	}
	for userID, count := range summary.Workload {
		resp.Workload[string(userID)] = count
	}
	for _, epic := range summary.Epics {
		resp.Epics = append(resp.Epics, dto.EpicProgress{
			ID:        string(epic.ID),
			Title:     epic.Title,
			Completed: epic.Completed,
		})
	}
	for _, day := range summary.Activity {
		resp.Activity = append(resp.Activity, dto.DailyActivity{
			Day:   day.Day.Format(domain.DateLayout),
			Count: day.Count,
		})
	}

	return resp
}

func ToCalendarDays(days []projection.CalendarDay) []dto.CalendarDay {
	items := make([]dto.CalendarDay, 0, len(days))
	for _, day := range days {
		items = append(items, dto.CalendarDay{
			Day:   day.Day.Format(domain.DateLayout),
			Tasks: ToTaskItems(day.Tasks),
		})
	}
	return items
}

func ToTimelineEntries(entries []projection.TimelineEntry) []dto.TimelineEntry {
	items := make([]dto.TimelineEntry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.TimelineEntry{
			Task:  ToTaskItem(entry.Task),
			Start: formatTime(entry.Start),
			End:   formatTime(entry.End),
		})
	}
	return items
}
