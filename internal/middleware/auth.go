package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/service"
	"github.com/ashwinyue/next-support/internal/service/auth"
)

// ContextKeyAdmin 管理员校验通过后写入 gin.Context 的键
const ContextKeyAdmin = "admin"

// RequireAdmin 要求有效管理员令牌的中间件
// 令牌取自 Cookie 或 Authorization: Bearer，签名和会话都有效才放行，否则返回 403
func RequireAdmin(svc *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AdminToken(c, svc.Config.Admin.CookieName)

		err := svc.Auth.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrSessionNotFound) {
				logger.Ctx(c.Request.Context()).Error().Err(err).Msg("admin session check failed")
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextKeyAdmin, true)
		c.Next()
	}
}

// AdminToken 从请求中取管理员令牌，Bearer 优先于 Cookie
func AdminToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if token, err := c.Cookie(cookieName); err == nil {
		return token
	}
	return ""
}

// IsAdmin 当前请求是否已通过管理员校验
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextKeyAdmin)
}
