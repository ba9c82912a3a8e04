package handler

import (
	"context"

	"github.com/ashwinyue/next-support/internal/service"
)

// Pinger 数据库连通性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers 处理器集合
type Handlers struct {
	Chat   *ChatHandler
	Auth   *AuthHandler
	Intent *IntentHandler
	Page   *PageHandler
	System *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services, db Pinger) *Handlers {
	return &Handlers{
		Chat:   NewChatHandler(svc),
		Auth:   NewAuthHandler(svc),
		Intent: NewIntentHandler(svc),
		Page:   NewPageHandler(),
		System: NewSystemHandler(db),
	}
}
