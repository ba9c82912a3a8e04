// Package chat 聊天流程：登记用户与会话，记录双方消息，解析回复
package chat

import (
	"context"

	"github.com/ashwinyue/next-support/internal/logger"
	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/repository"
)

// Resolver 根据消息给出回复
type Resolver interface {
	Resolve(ctx context.Context, message string) (string, error)
}

// Service 聊天服务
type Service struct {
	registrar *Registrar
	logger    *Logger
	resolver  Resolver
}

// NewService 创建聊天服务
func NewService(users repository.UserStore, chats repository.ChatStore, resolver Resolver) *Service {
	return &Service{
		registrar: NewRegistrar(users, chats),
		logger:    NewLogger(chats),
		resolver:  resolver,
	}
}

// Request 聊天请求
type Request struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Response 聊天响应
type Response struct {
	Response string `json:"response"`
}

// Chat 处理一轮对话
// 每轮新建一个会话并写入两条记录：用户消息和机器人回复
// 各步骤独立提交，中途失败时已写入的数据保留
func (s *Service) Chat(ctx context.Context, req *Request) (*Response, error) {
	userID, err := s.registrar.ResolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.registrar.OpenSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.logger.Log(ctx, userID, sessionID, model.SenderUser, req.Message); err != nil {
		return nil, err
	}

	reply, err := s.resolver.Resolve(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.logger.Log(ctx, userID, sessionID, model.SenderBot, reply); err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Debug().
		Uint("user_id", userID).
		Uint("session_id", sessionID).
		Msg("chat turn recorded")

	return &Response{Response: reply}, nil
}
