package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/service"
	"github.com/ashwinyue/next-support/internal/service/intent"
)

// IntentHandler 意图管理处理器
type IntentHandler struct {
	svc *service.Services
}

// NewIntentHandler 创建意图管理处理器
func NewIntentHandler(svc *service.Services) *IntentHandler {
	return &IntentHandler{svc: svc}
}

// AddIntent 新增意图
// POST /add_intent
func (h *IntentHandler) AddIntent(c *gin.Context) {
	var req intent.AddIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, msgInvalidBody)
		return
	}

	created, err := h.svc.Intent.AddIntent(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error().Err(err).Str("tag", req.Tag).Msg("add intent failed")
		InternalServerError(c)
		return
	}

	logger.Ctx(c.Request.Context()).Info().
		Uint("intent_id", created.ID).
		Str("tag", created.Tag).
		Int("patterns", len(created.Patterns)).
		Msg("intent added")
	Status(c, http.StatusOK, "intent_added")
}

// GetIntents 列出全部意图
// GET /get_intents
func (h *IntentHandler) GetIntents(c *gin.Context) {
	intents, err := h.svc.Intent.ListIntents(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg("list intents failed")
		InternalServerError(c)
		return
	}

	Success(c, intents)
}
