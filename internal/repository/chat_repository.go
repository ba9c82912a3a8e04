package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashwinyue/next-support/internal/model"
)

// ChatRepository 会话与聊天记录数据访问
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository 创建聊天仓库
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateSession 创建会话
func (r *ChatRepository) CreateSession(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

// CreateLog 写入一条聊天记录
func (r *ChatRepository) CreateLog(ctx context.Context, log *model.ChatLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

// ListLogsBySession 获取会话的聊天记录，按写入顺序
func (r *ChatRepository) ListLogsBySession(ctx context.Context, sessionID uint) ([]*model.ChatLog, error) {
	var logs []*model.ChatLog
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id ASC").Find(&logs).Error
	return logs, err
}

// CountSessions 会话总数，userID 为 0 时统计全部
func (r *ChatRepository) CountSessions(ctx context.Context, userID uint) (int64, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&model.Session{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Count(&n).Error
	return n, err
}

// CountLogs 聊天记录总数
func (r *ChatRepository) CountLogs(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ChatLog{}).Count(&n).Error
	return n, err
}
