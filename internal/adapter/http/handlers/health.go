package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/ports"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"

	storePingTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName    string `json:"app_name"`
	AppVersion string `json:"app_version"`
	Time       string `json:"time"`
	Message    string `json:"message"`
}

// StoreHealth is the outcome of pinging the durable store.
type StoreHealth struct {
	Backend   string `json:"backend"`
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
}

type HealthReport struct {
	AppName    string      `json:"app_name"`
	AppVersion string      `json:"app_version"`
	Time       string      `json:"time"`
	Uptime     string      `json:"uptime"`
	Language   string      `json:"language"`
	Store      StoreHealth `json:"store"`
}

type HealthHandler struct {
	store     ports.Pinger
	backend   string
	appName   string
	version   string
	startedAt time.Time
}

func NewHealthHandler(store ports.Pinger, backend string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		backend:   backend,
		appName:   envOr("APP_NAME", "tasktracker"),
		version:   envOr("APP_VERSION", "dev"),
		startedAt: time.Now(),
	}
}

// CheckHealth answers 500 when the store does not respond.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	store := h.pingStore(c.Request.Context())

	code := http.StatusOK
	if store.Status != StatusOk {
		code = http.StatusInternalServerError
	}
	c.JSON(code, HealthBasic{
		AppName:    h.appName,
		AppVersion: h.version,
		Time:       time.Now().Format(time.RFC3339),
		Message:    store.Status,
	})
}

// CheckHealthReport always answers 200 and describes each dependency.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthReport{
		AppName:    h.appName,
		AppVersion: h.version,
		Time:       time.Now().Format(time.RFC3339),
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Language:   middleware.GetLang(c),
		Store:      h.pingStore(c.Request.Context()),
	})
}

func (h *HealthHandler) pingStore(ctx context.Context) StoreHealth {
	result := StoreHealth{Backend: h.backend, Status: StatusDown}
	if h.store == nil {
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	result.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		zap.L().Warn("store ping failed", zap.String("backend", h.backend), zap.Error(err))
		return result
	}
	result.Status = StatusOk
	return result
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
