package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TaskID identifies a task for the lifetime of the collection.
type TaskID string

// UnmarshalJSON accepts both string ids and the numeric ids written by older clients.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	value, err := decodeLooseID(data)
	if err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(value)
	return nil
}

// UserID is a weak reference to a User.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	value, err := decodeLooseID(data)
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(value)
	return nil
}

func decodeLooseID(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus validates a raw status value. An empty value yields todo.
func ParseTaskStatus(value string) (TaskStatus, error) {
	switch TaskStatus(strings.TrimSpace(value)) {
	case "", TaskStatusTodo:
		return TaskStatusTodo, nil
	case TaskStatusInProgress:
		return TaskStatusInProgress, nil
	case TaskStatusCompleted:
		return TaskStatusCompleted, nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidEnum, value)
}

// Rank orders statuses for sorting: todo, in-progress, completed.
func (s TaskStatus) Rank() int {
	switch s {
	case TaskStatusTodo:
		return 0
	case TaskStatusInProgress:
		return 1
	case TaskStatusCompleted:
		return 2
	default:
		return 3
	}
}

func (s TaskStatus) String() string {
	return string(s)
}

func (s *TaskStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority validates a raw priority value. An empty value yields medium.
func ParsePriority(value string) (Priority, error) {
	switch Priority(strings.TrimSpace(value)) {
	case "", PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityLow:
		return PriorityLow, nil
	}
	return "", fmt.Errorf("%w: priority %q", ErrInvalidEnum, value)
}

// Rank orders priorities for sorting: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p Priority) String() string {
	return string(p)
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type TaskType string

const (
	TaskTypeFeature TaskType = "feature"
	TaskTypeBug     TaskType = "bug"
	TaskTypeEpic    TaskType = "epic"
	TaskTypeStory   TaskType = "story"
)

func ParseTaskType(value string) (TaskType, error) {
	switch t := TaskType(strings.TrimSpace(value)); t {
	case TaskTypeFeature, TaskTypeBug, TaskTypeEpic, TaskTypeStory:
		return t, nil
	}
	return "", fmt.Errorf("%w: task type %q", ErrInvalidEnum, value)
}

func (t TaskType) String() string {
	return string(t)
}

func (t *TaskType) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Task is a unit of trackable work owned by exactly one user.
type Task struct {
	ID          TaskID
	Title       string
	Description string
	Priority    Priority
	Status      TaskStatus
	DueDate     time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	AssignedTo  UserID
	UserID      UserID
	TaskType    *TaskType
	CreatedAt   time.Time
	Image       *string
}

// Completed is derived from Status so the two can never disagree.
func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	c.StartDate = cloneTime(t.StartDate)
	c.EndDate = cloneTime(t.EndDate)
	if t.TaskType != nil {
		v := *t.TaskType
		c.TaskType = &v
	}
	if t.Image != nil {
		v := *t.Image
		c.Image = &v
	}
	return c
}

// Start is the beginning of the task's active interval.
func (t Task) Start() time.Time {
	if t.StartDate != nil {
		return *t.StartDate
	}
	return t.CreatedAt
}

// End is the end of the task's active interval.
func (t Task) End() time.Time {
	if t.EndDate != nil {
		return *t.EndDate
	}
	return t.DueDate
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

type CreateTaskInput struct {
	UserID      UserID
	Title       string
	Description string
	Priority    Priority
	Status      TaskStatus
	DueDate     *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	AssignedTo  *UserID
	TaskType    *TaskType
	Image       *string
}

// UpdateTaskInput is a shallow patch. Nil pointers leave the field untouched;
// the XxxSet flags allow clearing optional fields. Owner, id and creation time
// are not part of the patch and therefore cannot change.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Priority     *Priority
	Status       *TaskStatus
	DueDate      *time.Time
	StartDate    *time.Time
	StartDateSet bool
	EndDate      *time.Time
	EndDateSet   bool
	AssignedTo   *UserID
	TaskType     *TaskType
	TaskTypeSet  bool
	Image        *string
	ImageSet     bool
}

// Apply merges the patch into a copy of task.
func (in UpdateTaskInput) Apply(task Task) Task {
	out := task.Clone()
	if in.Title != nil {
		out.Title = *in.Title
	}
	if in.Description != nil {
		out.Description = *in.Description
	}
	if in.Priority != nil {
		out.Priority = *in.Priority
	}
	if in.Status != nil {
		out.Status = *in.Status
	}
	if in.DueDate != nil {
		out.DueDate = *in.DueDate
	}
	if in.StartDateSet || in.StartDate != nil {
		out.StartDate = cloneTime(in.StartDate)
	}
	if in.EndDateSet || in.EndDate != nil {
		out.EndDate = cloneTime(in.EndDate)
	}
	if in.AssignedTo != nil {
		out.AssignedTo = *in.AssignedTo
	}
	if in.TaskTypeSet || in.TaskType != nil {
		out.TaskType = nil
		if in.TaskType != nil {
			v := *in.TaskType
			out.TaskType = &v
		}
	}
	if in.ImageSet || in.Image != nil {
		out.Image = nil
		if in.Image != nil {
			v := *in.Image
			out.Image = &v
		}
	}
	return out
}
