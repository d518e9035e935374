package mapper

import (
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          string(task.ID),
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Completed:   task.Completed(),
		DueDate:     formatTime(task.DueDate),
		AssignedTo:  string(task.AssignedTo),
		UserID:      string(task.UserID),
		CreatedAt:   formatTime(task.CreatedAt),
	}

	if task.StartDate != nil {
		value := formatTime(*task.StartDate)
		item.StartDate = &value
	}

	if task.EndDate != nil {
		value := formatTime(*task.EndDate)
		item.EndDate = &value
	}

	if task.TaskType != nil {
		value := string(*task.TaskType)
		item.TaskType = &value
	}

	if task.Image != nil {
		value := *task.Image
		item.Image = &value
	}

	return item
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
