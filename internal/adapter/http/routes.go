package http

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/ports"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Tasks       *handlers.TaskHandler
	Session     *handlers.SessionHandler
	Preferences *handlers.PreferenceHandler
}

func RegisterRoutes(r *gin.Engine, session ports.SessionProvider, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/users", h.Session.Signup)
		api.GET("/session", h.Session.Current)
		api.POST("/session", h.Session.Login)
		api.DELETE("/session", h.Session.Logout)
		api.PUT("/session/password", h.Session.ChangePassword)

		api.GET("/preferences/theme", h.Preferences.GetTheme)
		api.PUT("/preferences/theme", h.Preferences.SetTheme)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.SessionMiddleware(session))
	{
		tasks.GET("", h.Tasks.ListTasks)
		tasks.GET("/search", h.Tasks.SearchTasks)
		tasks.GET("/stats", h.Tasks.TaskStats)
		tasks.GET("/calendar", h.Tasks.TaskCalendar)
		tasks.GET("/timeline", h.Tasks.TaskTimeline)

		owned := tasks.Group("", middleware.RequireUser())
		owned.POST("", h.Tasks.CreateTask)
		owned.PATCH("/:id", h.Tasks.UpdateTask)
		owned.POST("/:id/toggle", h.Tasks.ToggleTask)
		owned.DELETE("/:id", h.Tasks.DeleteTask)
	}
}
