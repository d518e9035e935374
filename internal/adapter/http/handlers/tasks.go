package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/internal/core/projection"
	"tasktracker/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	clock       func() time.Time
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService, clock: time.Now}
}

// ListTasks renders the session user's tasks through the view pipeline. With
// no session the list is empty.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ViewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidViewParams)
		return
	}

	view, err := validation.BuildViewState(query)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidViewParams)
		return
	}

	tasks := projection.Project(h.taskService.List(c.Request.Context()), middleware.GetUserID(c), view)
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTaskInput(middleware.GetUserID(c), req, raw)
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailCreateTask, zap.String("task_id", string(task.ID)))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	current, ok := h.ownedTask(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), current.ID, input)
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailUpdateTask, zap.String("task_id", string(current.ID)))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	current, ok := h.ownedTask(c)
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(c.Request.Context(), current.ID)
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailUpdateTask, zap.String("task_id", string(current.ID)))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	current, ok := h.ownedTask(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), current.ID); err != nil {
		writeTaskError(c, err, apierrors.MsgFailDeleteTask, zap.String("task_id", string(current.ID)))
		return
	}

	c.Status(http.StatusNoContent)
}

// ownedTask loads the task named by :id. Tasks of other users answer 404 so
// their ids are not disclosed.
func (h *TaskHandler) ownedTask(c *gin.Context) (domain.Task, bool) {
	task, err := h.taskService.Get(c.Request.Context(), domain.TaskID(c.Param("id")))
	if err != nil {
		writeTaskError(c, err, apierrors.MsgFailListTask)
		return domain.Task{}, false
	}
	if task.UserID != middleware.GetUserID(c) {
		abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return domain.Task{}, false
	}
	return task, true
}

// bindJSON binds the body into req and also returns it as a raw field map.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return nil, false
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return nil, false
	}

	return raw, true
}
