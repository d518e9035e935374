package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/core/domain"
)

func TestEncodeTasks_WritesCamelCaseRecords(t *testing.T) {
	epic := domain.TaskTypeEpic
	task := domain.Task{
		ID:        "t-1",
		Title:     "Plan release",
		Priority:  domain.PriorityHigh,
		Status:    domain.TaskStatusCompleted,
		DueDate:   time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		UserID:    "u-1",
		TaskType:  &epic,
		CreatedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}

	payload, err := encodeTasks([]domain.Task{task})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "t-1", raw[0]["id"])
	assert.Equal(t, true, raw[0]["completed"])
	assert.Equal(t, "2026-11-02T00:00:00Z", raw[0]["dueDate"])
	assert.Equal(t, "u-1", raw[0]["userId"])
	assert.Equal(t, "epic", raw[0]["taskType"])
	assert.Equal(t, "", raw[0]["description"])
	assert.NotContains(t, raw[0], "startDate")
	assert.NotContains(t, raw[0], "image")
}

func TestEncodeTasks_EmptyCollection(t *testing.T) {
	payload, err := encodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", payload)
}

func TestDecodeTasks_LegacyRecords(t *testing.T) {
	tests := []struct {
		name   string
		record string
		check  func(t *testing.T, task domain.Task)
	}{
		{
			name:   "missing due date falls back to creation time",
			record: `{"id":"a","title":"x","userId":"u","createdAt":"2024-04-30T08:00:00Z"}`,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, task.CreatedAt, task.DueDate)
				assert.Equal(t, domain.PriorityMedium, task.Priority)
				assert.Equal(t, domain.TaskStatusTodo, task.Status)
			},
		},
		{
			name:   "completed flag overrides status",
			record: `{"id":"a","title":"x","userId":"u","completed":false,"status":"completed","createdAt":"2024-04-30"}`,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, domain.TaskStatusTodo, task.Status)
			},
		},
		{
			name:   "numeric ids",
			record: `{"id":1714464000000,"title":"x","userId":42,"assignedTo":7,"createdAt":"2024-04-30"}`,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, domain.TaskID("1714464000000"), task.ID)
				assert.Equal(t, domain.UserID("42"), task.UserID)
				assert.Equal(t, domain.UserID("7"), task.AssignedTo)
			},
		},
		{
			name:   "zoneless dates read as UTC",
			record: `{"id":"a","title":"x","userId":"u","createdAt":"2024-04-30","dueDate":"2024-05-01T10:30","endDate":"2024-05-02T18:00:00"}`,
			check: func(t *testing.T, task domain.Task) {
				assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), task.DueDate)
				require.NotNil(t, task.EndDate)
				assert.Equal(t, time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC), *task.EndDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := decodeTasks("[" + tt.record + "]")
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			tt.check(t, tasks[0])
		})
	}
}

func TestDecodeTasks_RejectsInvalidRecords(t *testing.T) {
	tests := map[string]string{
		"missing id":        `[{"title":"x","createdAt":"2024-04-30"}]`,
		"bad created date":  `[{"id":"a","createdAt":"yesterday"}]`,
		"bad start date":    `[{"id":"a","createdAt":"2024-04-30","startDate":"soon"}]`,
		"unknown task type": `[{"id":"a","createdAt":"2024-04-30","taskType":"chore"}]`,
		"unknown priority":  `[{"id":"a","createdAt":"2024-04-30","priority":"urgent"}]`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeTasks(payload)
			require.Error(t, err)
		})
	}
}
