package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type SessionHandler struct {
	userService ports.UserService
}

func NewSessionHandler(userService ports.UserService) *SessionHandler {
	return &SessionHandler{userService: userService}
}

func (h *SessionHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), domain.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeUserError(c, err, apierrors.MsgFailSignup)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidCredentials)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeUserError(c, err, apierrors.MsgFailSession)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *SessionHandler) Current(c *gin.Context) {
	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		writeUserError(c, err, apierrors.MsgFailSession)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context()); err != nil {
		writeUserError(c, err, apierrors.MsgFailSession)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeUserError(c, err, apierrors.MsgFailSession)
		return
	}

	c.Status(http.StatusNoContent)
}
