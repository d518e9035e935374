package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput turns a bound request into a create input for owner.
// raw is the same body decoded as a map so explicit nulls can be told apart
// from missing fields.
func BuildCreateTaskInput(owner domain.UserID, req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	for _, field := range []string{"priority", "status", "due_date"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, domain.ErrEmptyTitle
	}

	input := domain.CreateTaskInput{
		UserID: owner,
		Title:  title,
	}

	if req.Description != nil {
		input.Description = *req.Description
	}

	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.Priority = priority
	}

	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.Status = status
	}

	var err error
	if input.DueDate, err = parseOptionalTime(req.DueDate); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if input.StartDate, err = parseOptionalTime(req.StartDate); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if input.EndDate, err = parseOptionalTime(req.EndDate); err != nil {
		return domain.CreateTaskInput{}, err
	}

	if req.AssignedTo != nil && strings.TrimSpace(*req.AssignedTo) != "" {
		assignee := domain.UserID(strings.TrimSpace(*req.AssignedTo))
		input.AssignedTo = &assignee
	}

	if req.TaskType != nil {
		taskType, err := domain.ParseTaskType(*req.TaskType)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.TaskType = &taskType
	}

	input.Image = req.Image

	return input, nil
}

// BuildUpdateTaskInput turns a bound request into a patch. A null on one of
// the optional fields (start_date, end_date, task_type, image) clears it.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	for _, field := range []string{"title", "description", "priority", "status", "due_date", "assigned_to"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	var input domain.UpdateTaskInput

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, domain.ErrEmptyTitle
		}
		input.Title = &title
	}

	input.Description = req.Description

	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.Priority = &priority
	}

	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.Status = &status
	}

	var err error
	if input.DueDate, err = parseOptionalTime(req.DueDate); err != nil {
		return domain.UpdateTaskInput{}, err
	}

	input.StartDateSet = hasJSONField(raw, "start_date")
	if input.StartDate, err = parseOptionalTime(req.StartDate); err != nil {
		return domain.UpdateTaskInput{}, err
	}

	input.EndDateSet = hasJSONField(raw, "end_date")
	if input.EndDate, err = parseOptionalTime(req.EndDate); err != nil {
		return domain.UpdateTaskInput{}, err
	}

	if req.AssignedTo != nil {
		assignee := domain.UserID(strings.TrimSpace(*req.AssignedTo))
		if assignee == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.AssignedTo = &assignee
	}

	input.TaskTypeSet = hasJSONField(raw, "task_type")
	if req.TaskType != nil {
		taskType, err := domain.ParseTaskType(*req.TaskType)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.TaskType = &taskType
	}

	input.ImageSet = hasJSONField(raw, "image")
	input.Image = req.Image

	return input, nil
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := domain.ParseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{
		"title", "description", "priority", "status", "due_date",
		"start_date", "end_date", "assigned_to", "task_type", "image",
	} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
