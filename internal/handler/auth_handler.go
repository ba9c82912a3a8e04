package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/middleware"
	"github.com/ashwinyue/next-support/internal/service"
	"github.com/ashwinyue/next-support/internal/service/auth"
)

// AuthHandler 管理员认证处理器
type AuthHandler struct {
	svc *service.Services
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *service.Services) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login 管理员登录，成功时写入令牌 Cookie
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, msgInvalidBody)
		return
	}

	token, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.Ctx(c.Request.Context()).Warn().Str("username", req.Username).Msg("admin login rejected")
			Status(c, http.StatusUnauthorized, "fail")
			return
		}
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg("admin login failed")
		InternalServerError(c)
		return
	}

	h.setCookie(c, token, int(h.svc.Auth.TTL().Seconds()))
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Token: token})
}

// Logout 注销管理员会话并清除 Cookie
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.AdminToken(c, h.svc.Config.Admin.CookieName)
	if err := h.svc.Auth.Logout(c.Request.Context(), token); err != nil {
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg("admin logout failed")
		InternalServerError(c)
		return
	}

	h.setCookie(c, "", -1)
	Status(c, http.StatusOK, "logged_out")
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	cfg := h.svc.Config.Admin
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, value, maxAge, "/", "", cfg.SecureCookie, true)
}
