package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
)

func abortWithError(c *gin.Context, code int, msgKey string) {
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// writeTaskError maps task store and payload errors to a response. failMsg is
// used for anything unexpected.
func writeTaskError(c *gin.Context, err error, failMsg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		abortWithError(c, http.StatusBadRequest, apierrors.MsgEmptyTaskTitle)
	case errors.Is(err, domain.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidDate)
	case errors.Is(err, domain.ErrInvalidEnum), errors.Is(err, validation.ErrInvalidTaskPayload):
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
	case errors.Is(err, domain.ErrTaskNotFound):
		abortWithError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrNoSession):
		abortWithError(c, http.StatusUnauthorized, apierrors.MsgNoSession)
	case errors.Is(err, domain.ErrWriteFailed):
		zap.L().Error("task change not persisted", append(fields, zap.Error(err))...)
		abortWithError(c, http.StatusInternalServerError, apierrors.MsgFailPersistTask)
	default:
		zap.L().Error("task operation failed", append(fields, zap.Error(err))...)
		abortWithError(c, http.StatusInternalServerError, failMsg)
	}
}

func writeUserError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidUser):
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
	case errors.Is(err, domain.ErrEmailTaken):
		abortWithError(c, http.StatusConflict, apierrors.MsgEmailTaken)
	case errors.Is(err, domain.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, apierrors.MsgInvalidCredentials)
	case errors.Is(err, domain.ErrNoSession):
		abortWithError(c, http.StatusUnauthorized, apierrors.MsgNoSession)
	case errors.Is(err, domain.ErrPasswordMismatch):
		abortWithError(c, http.StatusBadRequest, apierrors.MsgPasswordMismatch)
	default:
		zap.L().Error("user operation failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, failMsg)
	}
}
