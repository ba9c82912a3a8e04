package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/web"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJS   = "application/javascript; charset=utf-8"
)

// PageHandler 页面处理器
type PageHandler struct{}

// NewPageHandler 创建页面处理器
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index 聊天页面
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, web.IndexHTML)
}

// Admin 管理页面，页面本身不需要登录
// GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, web.AdminHTML)
}

// Script 聊天页面脚本
// GET /static/script.js
func (h *PageHandler) Script(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeJS, web.ScriptJS)
}
