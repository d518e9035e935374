package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/core/domain"
)

// taskRecord is the persisted shape of a task under the "tasks" key. Dates are
// kept as strings so records written by older clients (datetime-local values
// without a zone) still load.
type taskRecord struct {
	ID          domain.TaskID     `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   *bool             `json:"completed,omitempty"`
	DueDate     string            `json:"dueDate,omitempty"`
	StartDate   *string           `json:"startDate,omitempty"`
	EndDate     *string           `json:"endDate,omitempty"`
	UserID      domain.UserID     `json:"userId"`
	Priority    domain.Priority   `json:"priority"`
	Status      domain.TaskStatus `json:"status"`
	AssignedTo  domain.UserID     `json:"assignedTo,omitempty"`
	TaskType    *string           `json:"taskType,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	Image       *string           `json:"image,omitempty"`
}

func encodeTasks(tasks []domain.Task) (string, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, mapTaskToRecord(task))
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func decodeTasks(payload string) ([]domain.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[domain.TaskID]struct{}, len(records))
	for i, record := range records {
		task, err := mapRecordToTask(record)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("task %d: duplicate id %q", i, task.ID)
		}
		seen[task.ID] = struct{}{}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func mapTaskToRecord(task domain.Task) taskRecord {
	completed := task.Completed()
	record := taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   &completed,
		DueDate:     formatTime(task.DueDate),
		UserID:      task.UserID,
		Priority:    task.Priority,
		Status:      task.Status,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   formatTime(task.CreatedAt),
	}

	if task.StartDate != nil {
		value := formatTime(*task.StartDate)
		record.StartDate = &value
	}

	if task.EndDate != nil {
		value := formatTime(*task.EndDate)
		record.EndDate = &value
	}

	if task.TaskType != nil {
		value := task.TaskType.String()
		record.TaskType = &value
	}

	if task.Image != nil {
		value := *task.Image
		record.Image = &value
	}

	return record
}

func mapRecordToTask(record taskRecord) (domain.Task, error) {
	if record.ID == "" {
		return domain.Task{}, errors.New("missing id")
	}

	createdAt, err := domain.ParseTimestamp(record.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("createdAt: %w", err)
	}

	task := domain.Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Priority:    record.Priority,
		Status:      record.Status,
		DueDate:     createdAt,
		UserID:      record.UserID,
		AssignedTo:  record.AssignedTo,
		CreatedAt:   createdAt,
	}

	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}

	// Older records carry both fields; when they disagree the completed flag
	// is what their views filtered on, so it wins.
	if record.Completed != nil && *record.Completed != task.Completed() {
		if *record.Completed {
			task.Status = domain.TaskStatusCompleted
		} else {
			task.Status = domain.TaskStatusTodo
		}
	}

	if record.DueDate != "" {
		task.DueDate, err = domain.ParseTimestamp(record.DueDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("dueDate: %w", err)
		}
	}

	if record.StartDate != nil {
		value, err := domain.ParseTimestamp(*record.StartDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("startDate: %w", err)
		}
		task.StartDate = &value
	}

	if record.EndDate != nil {
		value, err := domain.ParseTimestamp(*record.EndDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("endDate: %w", err)
		}
		task.EndDate = &value
	}

	if record.TaskType != nil && *record.TaskType != "" {
		value, err := domain.ParseTaskType(*record.TaskType)
		if err != nil {
			return domain.Task{}, err
		}
		task.TaskType = &value
	}

	if record.Image != nil {
		value := *record.Image
		task.Image = &value
	}

	return task, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
