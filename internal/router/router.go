package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/handler"
	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/middleware"
	"github.com/ashwinyue/next-support/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.LoggingMiddleware(logger.L()))
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", h.System.Health)

	// 页面
	r.GET("/", h.Page.Index)
	r.GET("/admin", h.Page.Admin)
	r.GET("/static/script.js", h.Page.Script)

	// 聊天
	r.POST("/chat", h.Chat.Chat)

	// 管理员认证
	r.POST("/login", h.Auth.Login)
	r.GET("/logout", h.Auth.Logout)

	// 意图管理，需要管理员令牌
	admin := r.Group("/", middleware.RequireAdmin(svc))
	{
		admin.POST("/add_intent", h.Intent.AddIntent)
		admin.GET("/get_intents", h.Intent.GetIntents)
	}

	return r
}
