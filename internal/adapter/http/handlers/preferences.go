package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type PreferenceHandler struct {
	preferences ports.PreferenceService
}

func NewPreferenceHandler(preferences ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	theme, err := h.preferences.Theme(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to read theme", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailTheme)
		return
	}

	c.JSON(http.StatusOK, dto.ThemeItem{Theme: string(theme)})
}

func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req dto.ThemeItem
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTheme)
		return
	}

	theme, err := domain.ParseTheme(req.Theme)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTheme)
		return
	}

	if err := h.preferences.SetTheme(c.Request.Context(), theme); err != nil {
		if errors.Is(err, domain.ErrInvalidTheme) {
			abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTheme)
			return
		}
		zap.L().Error("failed to save theme", zap.String("theme", string(theme)), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailTheme)
		return
	}

	c.JSON(http.StatusOK, dto.ThemeItem{Theme: string(theme)})
}
