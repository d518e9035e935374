package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/projection"
	"tasktracker/pkg/apierrors"
)

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	var query dto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidViewParams)
		return
	}

	criteria, err := validation.BuildSearchCriteria(query)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidViewParams)
		return
	}

	tasks := projection.Search(h.taskService.List(c.Request.Context()), middleware.GetUserID(c), criteria, h.clock())
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) TaskStats(c *gin.Context) {
	now := h.clock()
	summary := projection.Summarize(h.taskService.List(c.Request.Context()), middleware.GetUserID(c), now.Location())
	c.JSON(http.StatusOK, mapper.ToSummaryResponse(summary))
}

func (h *TaskHandler) TaskCalendar(c *gin.Context) {
	month, err := validation.ParseMonth(c.Query("month"), h.clock())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidViewParams)
		return
	}

	days := projection.Calendar(h.taskService.List(c.Request.Context()), middleware.GetUserID(c), month)
	c.JSON(http.StatusOK, mapper.ToCalendarDays(days))
}

func (h *TaskHandler) TaskTimeline(c *gin.Context) {
	entries := projection.Timeline(h.taskService.List(c.Request.Context()), middleware.GetUserID(c))
	c.JSON(http.StatusOK, mapper.ToTimelineEntries(entries))
}
