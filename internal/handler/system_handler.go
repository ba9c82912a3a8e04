package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/logger"
)

// SystemHandler 系统处理器
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health 健康检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("database ping failed")
			Status(c, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	Status(c, http.StatusOK, "ok")
}
