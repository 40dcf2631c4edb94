package middleware

import (
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware - проверка вызывающего по Bearer токену или сессионной cookie.
// Любой успешно определенный пользователь допускается к изменяющим операциям.
func AuthMiddleware(resolver auth.IdentityResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenStr := extractToken(c, cookieName)
		if tokenStr == "" {
			logger.CtxWarn(ctx, "Request without credentials", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrMissingCredentials)
			return
		}

		identity, err := resolver.Resolve(ctx, tokenStr)
		if err != nil {
			logger.CtxWarn(ctx, "Token rejected", "path", c.Request.URL.Path, "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextEmail, identity.Email)
		c.Set(ContextRole, identity.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, identity.UserID))
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
