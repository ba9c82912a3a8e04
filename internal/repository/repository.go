// Package repository 数据访问层
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Repositories 仓库集合，用于统一管理所有仓库
type Repositories struct {
	DB     *gorm.DB // 直接访问数据库
	User   *UserRepository
	Chat   *ChatRepository
	Intent *IntentRepository
}

// NewRepositories 创建所有仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:     db,
		User:   NewUserRepository(db),
		Chat:   NewChatRepository(db),
		Intent: NewIntentRepository(db),
	}
}

// translate 把 gorm 的未找到错误转换为仓库层错误
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
