package chat

import (
	"context"
	"fmt"

	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/repository"
)

// DefaultUser 未提供用户名时使用的名字
const DefaultUser = "guest"

// Registrar 用户与会话登记
type Registrar struct {
	users repository.UserStore
	chats repository.ChatStore
}

// NewRegistrar 创建登记器
func NewRegistrar(users repository.UserStore, chats repository.ChatStore) *Registrar {
	return &Registrar{users: users, chats: chats}
}

// ResolveUser 按名字获取用户 ID，不存在则创建
// 空名字按 DefaultUser 处理
func (r *Registrar) ResolveUser(ctx context.Context, name string) (uint, error) {
	if name == "" {
		name = DefaultUser
	}
	user, err := r.users.FirstOrCreate(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user %q: %w", name, err)
	}
	return user.ID, nil
}

// OpenSession 为用户新建会话，从不复用已有会话
func (r *Registrar) OpenSession(ctx context.Context, userID uint) (uint, error) {
	session := &model.Session{UserID: userID}
	if err := r.chats.CreateSession(ctx, session); err != nil {
		return 0, fmt.Errorf("failed to open session: %w", err)
	}
	return session.ID, nil
}
