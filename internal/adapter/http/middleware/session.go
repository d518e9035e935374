package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

const userIDKey = "userID"

// SessionMiddleware resolves the signed-in user once per request. A missing
// session is not an error here; handlers that need a user call RequireUser.
func SessionMiddleware(session ports.SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok, err := session.CurrentUserID(c.Request.Context())
		if err != nil {
			zap.L().Error("failed to resolve session", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSession, GetLang(c)),
			)
			return
		}
		if ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID returns the session user resolved by SessionMiddleware, or "".
func GetUserID(c *gin.Context) domain.UserID {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(domain.UserID); ok {
			return id
		}
	}
	return ""
}

// RequireUser answers 401 when nobody is signed in.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNoSession, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}
