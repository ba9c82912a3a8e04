package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/service"
	"github.com/ashwinyue/next-support/internal/service/chat"
)

// 聊天失败时返回给调用方的固定回复
const chatServerError = "Server error: internal error"

// ChatHandler 聊天处理器
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat 处理一轮对话
// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chat.Request
	// 请求体解析失败与流程失败返回同一种响应
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("invalid chat request body")
		c.JSON(http.StatusInternalServerError, chat.Response{Response: chatServerError})
		return
	}

	resp, err := h.svc.Chat.Chat(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("user", req.UserID).
			Msg("chat failed")
		c.JSON(http.StatusInternalServerError, chat.Response{Response: chatServerError})
		return
	}

	Success(c, resp)
}
