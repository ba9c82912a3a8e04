package service

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/next-support/internal/config"
	"github.com/ashwinyue/next-support/internal/repository"
	"github.com/ashwinyue/next-support/internal/service/auth"
	"github.com/ashwinyue/next-support/internal/service/chat"
	"github.com/ashwinyue/next-support/internal/service/intent"
	"github.com/ashwinyue/next-support/internal/service/session"
)

// Services 服务集合
type Services struct {
	Chat   *chat.Service
	Intent *intent.Service
	Auth   *auth.Service

	Config   *config.Config
	Sessions session.Store
}

// NewServices 创建所有服务
// redisClient 为 nil 时管理员会话保存在进程内存中
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client, fallback *intent.FallbackSet) (*Services, error) {
	sessions := session.NewStore(redisClient)

	authSvc, err := auth.NewService(&cfg.Admin, sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	resolver := intent.NewResolver(repo.Intent, fallback, cfg.Intents.FuzzyCutoff)

	return &Services{
		Chat:   chat.NewService(repo.User, repo.Chat, resolver),
		Intent: intent.NewService(repo.Intent),
		Auth:   authSvc,

		Config:   cfg,
		Sessions: sessions,
	}, nil
}
