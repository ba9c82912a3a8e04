package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashwinyue/next-support/internal/model"
	"github.com/ashwinyue/next-support/internal/repository"
)

// ErrInvalidSender 发送方不是 user 或 bot
var ErrInvalidSender = errors.New("invalid sender")

// Logger 聊天记录写入器，只追加不修改
type Logger struct {
	chats repository.ChatStore
}

// NewLogger 创建聊天记录写入器
func NewLogger(chats repository.ChatStore) *Logger {
	return &Logger{chats: chats}
}

// Log 追加一条聊天记录
func (l *Logger) Log(ctx context.Context, userID, sessionID uint, sender model.Sender, message string) error {
	if !sender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSender, sender)
	}

	entry := &model.ChatLog{
		UserID:    userID,
		SessionID: sessionID,
		Sender:    sender,
		Message:   message,
	}
	if err := l.chats.CreateLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to log %s message: %w", sender, err)
	}
	return nil
}
