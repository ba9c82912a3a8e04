// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import (
	"context"

	"github.com/ashwinyue/next-support/internal/model"
)

// UserStore 用户数据访问接口
type UserStore interface {
	FirstOrCreate(ctx context.Context, username string) (*model.User, error)
}

// ChatStore 会话与聊天记录数据访问接口
type ChatStore interface {
	CreateSession(ctx context.Context, session *model.Session) error
	CreateLog(ctx context.Context, log *model.ChatLog) error
}

// IntentStore 意图数据访问接口
type IntentStore interface {
	Create(ctx context.Context, intent *model.Intent) error
	List(ctx context.Context) ([]*model.Intent, error)
}

// 确保实现了接口
var (
	_ UserStore   = (*UserRepository)(nil)
	_ ChatStore   = (*ChatRepository)(nil)
	_ IntentStore = (*IntentRepository)(nil)
)
